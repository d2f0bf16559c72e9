package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TeamStore manages team rows. (name, season) uniqueness is enforced by the
// schema; deleting a team cascades to its roster assignments and games.
type TeamStore struct {
	pool *pgxpool.Pool
}

func NewTeamStore(pool *pgxpool.Pool) *TeamStore {
	return &TeamStore{pool: pool}
}

func scanTeam(row pgx.Row) (*Team, error) {
	var t Team
	err := row.Scan(&t.ID, &t.City, &t.Name, &t.Level, &t.Season, &t.Sport, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a team and returns the stored row.
func (s *TeamStore) Create(ctx context.Context, city, name string, level *string, season, sport string) (*Team, error) {
	t, err := scanTeam(s.pool.QueryRow(ctx, "team_create", city, name, level, season, sport))
	if err != nil {
		return nil, translateError(err, "Team")
	}
	return t, nil
}

// List returns all teams ordered by season descending, then name.
func (s *TeamStore) List(ctx context.Context) ([]Team, error) {
	rows, err := s.pool.Query(ctx, "team_list")
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

// Get returns one team by id.
func (s *TeamStore) Get(ctx context.Context, id int) (*Team, error) {
	t, err := scanTeam(s.pool.QueryRow(ctx, "team_get", id))
	if err != nil {
		return nil, translateError(err, "Team")
	}
	return t, nil
}

// Update replaces all mutable team fields.
func (s *TeamStore) Update(ctx context.Context, id int, city, name string, level *string, season, sport string) (*Team, error) {
	t, err := scanTeam(s.pool.QueryRow(ctx, "team_update", id, city, name, level, season, sport))
	if err != nil {
		return nil, translateError(err, "Team")
	}
	return t, nil
}

// Delete removes a team; roster assignments and games go with it via
// ON DELETE CASCADE.
func (s *TeamStore) Delete(ctx context.Context, id int) (*Team, error) {
	t, err := scanTeam(s.pool.QueryRow(ctx, "team_delete", id))
	if err != nil {
		return nil, translateError(err, "Team")
	}
	return t, nil
}
