package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatCounters carries the per-season counter fields. Updates replace all
// counters wholesale; nothing is incremented in place.
type StatCounters struct {
	GamesPlayed   int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

func (c *StatCounters) validate() error {
	for _, n := range []int{c.GamesPlayed, c.Goals, c.Assists, c.YellowCards, c.RedCards, c.MinutesPlayed} {
		if n < 0 {
			return NewValidationError("Stat counters must be non-negative integers")
		}
	}
	return nil
}

// StatStore manages the per-(player, season) counter ledger.
type StatStore struct {
	pool *pgxpool.Pool
}

func NewStatStore(pool *pgxpool.Pool) *StatStore {
	return &StatStore{pool: pool}
}

func scanStat(row pgx.Row) (*PlayerSeasonStat, error) {
	var st PlayerSeasonStat
	err := row.Scan(
		&st.ID, &st.PlayerID, &st.Season,
		&st.GamesPlayed, &st.Goals, &st.Assists,
		&st.YellowCards, &st.RedCards, &st.MinutesPlayed,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts the first stat row for a (player, season).
func (s *StatStore) Create(ctx context.Context, playerID int, season string, c StatCounters) (*PlayerSeasonStat, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	st, err := scanStat(s.pool.QueryRow(ctx, "stat_create",
		playerID, season, c.GamesPlayed, c.Goals, c.Assists, c.YellowCards, c.RedCards, c.MinutesPlayed))
	if err != nil {
		return nil, translateError(err, "Player stats")
	}
	return st, nil
}

// Update replaces all counters for an existing (player, season) row.
func (s *StatStore) Update(ctx context.Context, playerID int, season string, c StatCounters) (*PlayerSeasonStat, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	st, err := scanStat(s.pool.QueryRow(ctx, "stat_update",
		playerID, season, c.GamesPlayed, c.Goals, c.Assists, c.YellowCards, c.RedCards, c.MinutesPlayed))
	if err != nil {
		return nil, translateError(err, "Player stats")
	}
	return st, nil
}

// List returns all stat rows with player names, newest entry first.
func (s *StatStore) List(ctx context.Context) ([]StatListEntry, error) {
	rows, err := s.pool.Query(ctx, "stat_list")
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	defer rows.Close()

	stats := []StatListEntry{}
	for rows.Next() {
		var e StatListEntry
		err := rows.Scan(
			&e.ID, &e.PlayerID, &e.Season,
			&e.GamesPlayed, &e.Goals, &e.Assists,
			&e.YellowCards, &e.RedCards, &e.MinutesPlayed,
			&e.CreatedAt, &e.UpdatedAt,
			&e.PlayerName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats = append(stats, e)
	}
	return stats, rows.Err()
}

// ListByPlayer returns a player's stat rows, newest season first.
func (s *StatStore) ListByPlayer(ctx context.Context, playerID int) ([]PlayerSeasonStat, error) {
	rows, err := s.pool.Query(ctx, "stat_list_by_player", playerID)
	if err != nil {
		return nil, fmt.Errorf("list stats for player %d: %w", playerID, err)
	}
	defer rows.Close()

	stats := []PlayerSeasonStat{}
	for rows.Next() {
		st, err := scanStat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats = append(stats, *st)
	}
	return stats, rows.Err()
}

// TopScorers returns up to limit rows for a season, ordered by goals then
// assists, both descending. An unknown season yields an empty list.
func (s *StatStore) TopScorers(ctx context.Context, season string, limit int) ([]TopScorer, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, "stat_top_scorers", season, limit)
	if err != nil {
		return nil, fmt.Errorf("top scorers for %s: %w", season, err)
	}
	defer rows.Close()

	scorers := []TopScorer{}
	for rows.Next() {
		var t TopScorer
		if err := rows.Scan(&t.PlayerID, &t.PlayerName, &t.Season, &t.Goals, &t.Assists, &t.GamesPlayed); err != nil {
			return nil, fmt.Errorf("scan top scorer: %w", err)
		}
		scorers = append(scorers, t)
	}
	return scorers, rows.Err()
}
