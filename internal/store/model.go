package store

import "time"

// Positions a roster assignment may carry.
const (
	PositionForward = "Forward"
	PositionDefence = "Defence"
	PositionGoalie  = "Goalie"
)

// ValidPosition reports whether p is in the closed position set.
func ValidPosition(p string) bool {
	switch p {
	case PositionForward, PositionDefence, PositionGoalie:
		return true
	}
	return false
}

// Location qualifiers a game may carry.
const (
	LocationHome       = "Home"
	LocationAway       = "Away"
	LocationTournament = "Tournament"
)

// ValidLocation reports whether l is in the closed location set.
func ValidLocation(l string) bool {
	switch l {
	case LocationHome, LocationAway, LocationTournament:
		return true
	}
	return false
}

// Team is a club entry for one season. (name, season) is unique.
type Team struct {
	ID        int       `json:"id"`
	City      string    `json:"city"`
	Name      string    `json:"name"`
	Level     *string   `json:"level"`
	Season    string    `json:"season"`
	Sport     string    `json:"sport"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Player carries global identity only; team membership lives on the
// roster assignment.
type Player struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	FullName    string    `json:"full_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RosterAssignment binds a player to a team with a jersey number and
// position.
type RosterAssignment struct {
	ID           int       `json:"id"`
	PlayerID     int       `json:"player_id"`
	TeamID       int       `json:"team_id"`
	JerseyNumber int       `json:"jersey_number"`
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeamRosterEntry is an assignment projected with player identity, ordered
// by jersey number when listed per team.
type TeamRosterEntry struct {
	RosterAssignment
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	FullName    string    `json:"full_name"`
}

// PlayerTeamEntry is an assignment projected with team identity, ordered by
// team name when listed per player.
type PlayerTeamEntry struct {
	RosterAssignment
	City     string  `json:"city"`
	TeamName string  `json:"team_name"`
	Level    *string `json:"level"`
	Season   string  `json:"season"`
	Sport    string  `json:"sport"`
}

// AssignmentListEntry is the full-roster projection carrying both sides.
type AssignmentListEntry struct {
	RosterAssignment
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	City       string `json:"city"`
}

// TeamWithRoster is a team aggregate with its roster entries.
type TeamWithRoster struct {
	Team
	Players []TeamRosterEntry `json:"players"`
}

// Opponent is a name-unique lookup entry created on demand.
type Opponent struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GameType is a name-unique lookup entry ("Regular Season", "Playoff", ...).
type GameType struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Game is one scheduled or played game owned by a team. Period lengths are
// minutes.
type Game struct {
	ID              int       `json:"id"`
	TeamID          int       `json:"team_id"`
	GameDate        time.Time `json:"game_date"`
	Location        string    `json:"location"`
	GameTypeID      int       `json:"game_type_id"`
	OpponentID      int       `json:"opponent_id"`
	GoalsFor        int       `json:"goals_for"`
	GoalsAgainst    int       `json:"goals_against"`
	Period1Minutes  int       `json:"period1_minutes"`
	Period2Minutes  int       `json:"period2_minutes"`
	Period3Minutes  int       `json:"period3_minutes"`
	OvertimeMinutes int       `json:"overtime_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GameListEntry is a game projected with its lookup names.
type GameListEntry struct {
	Game
	GameTypeName string `json:"game_type_name"`
	OpponentName string `json:"opponent_name"`
}

// GameDressing binds a player to a game. At most one dressing per game may
// carry the starting-goalie flag; the store enforces this with a partial
// unique index.
type GameDressing struct {
	ID               int       `json:"id"`
	GameID           int       `json:"game_id"`
	PlayerID         int       `json:"player_id"`
	IsStartingGoalie bool      `json:"is_starting_goalie"`
	CreatedAt        time.Time `json:"created_at"`
}

// DressedPlayer is a dressing projected with player identity and, when the
// player is on the owning team's roster, jersey number and position.
type DressedPlayer struct {
	GameDressing
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	JerseyNumber *int   `json:"jersey_number"`
	Position     *string `json:"position"`
}

// GameWithPlayers is a game aggregate with its dress list.
type GameWithPlayers struct {
	GameListEntry
	Players []DressedPlayer `json:"players"`
}

// PlayerSeasonStat is the per-(player, season) counter row. Updates replace
// all counters wholesale.
type PlayerSeasonStat struct {
	ID            int       `json:"id"`
	PlayerID      int       `json:"player_id"`
	Season        string    `json:"season"`
	GamesPlayed   int       `json:"games_played"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	YellowCards   int       `json:"yellow_cards"`
	RedCards      int       `json:"red_cards"`
	MinutesPlayed int       `json:"minutes_played"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StatListEntry is a stat row projected with the player's name.
type StatListEntry struct {
	PlayerSeasonStat
	PlayerName string `json:"player_name"`
}

// TopScorer is one row of the goals-then-assists leaderboard.
type TopScorer struct {
	PlayerID    int    `json:"player_id"`
	PlayerName  string `json:"player_name"`
	Season      string `json:"season"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	GamesPlayed int    `json:"games_played"`
}

// PlayerWithStats is a player aggregate with all season stat rows.
type PlayerWithStats struct {
	Player
	Stats []PlayerSeasonStat `json:"stats"`
}
