package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/FoyBuors17/stats-tracker/internal/db"
	"github.com/FoyBuors17/stats-tracker/internal/store"
)

const demoSeason = "2023-24"

type demoPlayer struct {
	first    string
	last     string
	born     string
	jersey   int
	position string
	goals    int
	assists  int
	games    int
	minutes  int
}

var demoTeams = []struct {
	city    string
	name    string
	level   string
	players []demoPlayer
}{
	{
		city: "Calgary", name: "Northern Lights", level: "AA",
		players: []demoPlayer{
			{"Emma", "Tremblay", "2009-03-14", 9, store.PositionForward, 18, 12, 20, 900},
			{"Olivia", "Chen", "2009-07-02", 4, store.PositionDefence, 3, 9, 20, 880},
			{"Sophie", "Martin", "2010-01-25", 31, store.PositionGoalie, 0, 1, 19, 855},
			{"Ava", "Kowalski", "2009-11-08", 17, store.PositionForward, 11, 15, 18, 790},
		},
	},
	{
		city: "Red Deer", name: "River Hawks", level: "A",
		players: []demoPlayer{
			{"Liam", "Singh", "2009-05-19", 7, store.PositionForward, 14, 8, 20, 860},
			{"Noah", "Dubois", "2009-09-30", 2, store.PositionDefence, 1, 6, 20, 900},
			{"Lucas", "Berg", "2010-02-11", 30, store.PositionGoalie, 0, 0, 18, 810},
		},
	},
}

var demoGames = []struct {
	team     int // index into demoTeams
	date     string
	location string
	gameType string
	opponent string
	goalsFor int
	goalsAgn int
}{
	{0, "2024-01-13", store.LocationHome, "League", "Lethbridge Storm", 4, 2},
	{0, "2024-01-20", store.LocationAway, "League", "Medicine Hat Blaze", 1, 3},
	{0, "2024-02-03", store.LocationTournament, "Tournament", "Saskatoon Selects", 5, 5},
	{1, "2024-01-14", store.LocationHome, "League", "Lethbridge Storm", 2, 2},
	{1, "2024-01-27", store.LocationAway, "Exhibition", "Camrose Cyclones", 3, 1},
}

// Demo loads a small two-team league with rosters, games, dressings, and a
// season of stats. Safe to run only against an empty database; duplicate rows
// are reported as errors rather than skipped.
func Demo(ctx context.Context, pool *db.Pool, logger *slog.Logger) Result {
	var result Result

	teams := store.NewTeamStore(pool.Pool)
	players := store.NewPlayerStore(pool.Pool)
	roster := store.NewRosterStore(pool.Pool)
	lookups := store.NewLookupStore(pool.Pool)
	games := store.NewGameStore(pool.Pool, lookups)
	dressings := store.NewDressingStore(pool.Pool)
	stats := store.NewStatStore(pool.Pool)

	type rosteredPlayer struct {
		id       int
		position string
	}
	teamIDs := make([]int, len(demoTeams))
	rosters := make([][]rosteredPlayer, len(demoTeams))

	for i, dt := range demoTeams {
		level := dt.level
		team, err := teams.Create(ctx, dt.city, dt.name, &level, demoSeason, "Hockey")
		if err != nil {
			result.AddErrorf("create team %s: %v", dt.name, err)
			continue
		}
		result.Teams++
		teamIDs[i] = team.ID

		for _, dp := range dt.players {
			born, err := time.Parse("2006-01-02", dp.born)
			if err != nil {
				result.AddErrorf("parse birth date for %s %s: %v", dp.first, dp.last, err)
				continue
			}
			player, err := players.Create(ctx, dp.first, dp.last, born)
			if err != nil {
				result.AddErrorf("create player %s %s: %v", dp.first, dp.last, err)
				continue
			}
			result.Players++
			rosters[i] = append(rosters[i], rosteredPlayer{id: player.ID, position: dp.position})

			if _, err := roster.Assign(ctx, player.ID, team.ID, dp.jersey, dp.position); err != nil {
				result.AddErrorf("assign %s %s to %s: %v", dp.first, dp.last, dt.name, err)
				continue
			}
			result.Assignments++

			if _, err := stats.Create(ctx, player.ID, demoSeason, store.StatCounters{
				GamesPlayed:   dp.games,
				Goals:         dp.goals,
				Assists:       dp.assists,
				MinutesPlayed: dp.minutes,
			}); err != nil {
				result.AddErrorf("create stats for %s %s: %v", dp.first, dp.last, err)
				continue
			}
			result.Stats++
		}
		logger.Info("Seeded team", "team", dt.name, "players", len(rosters[i]))
	}

	for _, dg := range demoGames {
		if teamIDs[dg.team] == 0 {
			continue
		}
		date, err := time.Parse("2006-01-02", dg.date)
		if err != nil {
			result.AddErrorf("parse game date %s: %v", dg.date, err)
			continue
		}
		game, err := games.Create(ctx, store.GameParams{
			TeamID:         teamIDs[dg.team],
			GameDate:       date,
			Location:       dg.location,
			GameTypeName:   dg.gameType,
			OpponentName:   dg.opponent,
			GoalsFor:       dg.goalsFor,
			GoalsAgainst:   dg.goalsAgn,
			Period1Minutes: 15,
			Period2Minutes: 15,
			Period3Minutes: 15,
		})
		if err != nil {
			result.AddErrorf("create game on %s: %v", dg.date, err)
			continue
		}
		result.Games++

		// Dress the whole roster; the goalie starts.
		for _, rp := range rosters[dg.team] {
			goalie := rp.position == store.PositionGoalie
			if _, err := dressings.Dress(ctx, game.ID, rp.id, goalie); err != nil {
				result.AddErrorf("dress player %d for game %d: %v", rp.id, game.ID, err)
				continue
			}
			result.Dressings++
		}
	}

	logger.Info("Demo seed complete", "summary", result.Summary())
	return result
}
