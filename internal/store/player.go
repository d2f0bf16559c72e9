package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlayerStore manages player identity rows. Team membership, jersey and
// position live on the roster assignment, not here.
type PlayerStore struct {
	pool *pgxpool.Pool
}

func NewPlayerStore(pool *pgxpool.Pool) *PlayerStore {
	return &PlayerStore{pool: pool}
}

func scanPlayer(row pgx.Row) (*Player, error) {
	var p Player
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.FullName = p.FirstName + " " + p.LastName
	return &p, nil
}

func scanPlayerWithName(row pgx.Row) (*Player, error) {
	var p Player
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt, &p.FullName)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a player and returns the stored row.
func (s *PlayerStore) Create(ctx context.Context, firstName, lastName string, dateOfBirth time.Time) (*Player, error) {
	p, err := scanPlayer(s.pool.QueryRow(ctx, "player_create", firstName, lastName, dateOfBirth))
	if err != nil {
		return nil, translateError(err, "Player")
	}
	return p, nil
}

// List returns all players ordered by last name, then first name.
func (s *PlayerStore) List(ctx context.Context) ([]Player, error) {
	rows, err := s.pool.Query(ctx, "player_list")
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayerWithName(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// Get returns one player by id.
func (s *PlayerStore) Get(ctx context.Context, id int) (*Player, error) {
	p, err := scanPlayerWithName(s.pool.QueryRow(ctx, "player_get", id))
	if err != nil {
		return nil, translateError(err, "Player")
	}
	return p, nil
}

// Update replaces all mutable player fields.
func (s *PlayerStore) Update(ctx context.Context, id int, firstName, lastName string, dateOfBirth time.Time) (*Player, error) {
	p, err := scanPlayer(s.pool.QueryRow(ctx, "player_update", id, firstName, lastName, dateOfBirth))
	if err != nil {
		return nil, translateError(err, "Player")
	}
	return p, nil
}

// Delete removes a player and, via cascade, their assignments, dressings and
// stat rows.
func (s *PlayerStore) Delete(ctx context.Context, id int) (*Player, error) {
	p, err := scanPlayer(s.pool.QueryRow(ctx, "player_delete", id))
	if err != nil {
		return nil, translateError(err, "Player")
	}
	return p, nil
}
