package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LookupStore manages the two append-only, name-unique reference lists:
// opponents and game types. Entries are also created on demand when a game
// references a name not yet registered.
type LookupStore struct {
	pool *pgxpool.Pool
}

func NewLookupStore(pool *pgxpool.Pool) *LookupStore {
	return &LookupStore{pool: pool}
}

func scanOpponent(row pgx.Row) (*Opponent, error) {
	var o Opponent
	if err := row.Scan(&o.ID, &o.Name, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanGameType(row pgx.Row) (*GameType, error) {
	var gt GameType
	if err := row.Scan(&gt.ID, &gt.Name, &gt.CreatedAt); err != nil {
		return nil, err
	}
	return &gt, nil
}

// CreateOpponent registers a new opponent name.
func (s *LookupStore) CreateOpponent(ctx context.Context, name string) (*Opponent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("Opponent name is required")
	}
	o, err := scanOpponent(s.pool.QueryRow(ctx, "opponent_create", name))
	if err != nil {
		return nil, translateError(err, "Opponent")
	}
	return o, nil
}

// EnsureOpponent returns the opponent with the given name, creating it if
// absent.
func (s *LookupStore) EnsureOpponent(ctx context.Context, name string) (*Opponent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("Opponent name is required")
	}
	o, err := scanOpponent(s.pool.QueryRow(ctx, "opponent_ensure", name))
	if err != nil {
		return nil, translateError(err, "Opponent")
	}
	return o, nil
}

// ListOpponents returns all opponents ordered by name.
func (s *LookupStore) ListOpponents(ctx context.Context) ([]Opponent, error) {
	rows, err := s.pool.Query(ctx, "opponent_list")
	if err != nil {
		return nil, fmt.Errorf("list opponents: %w", err)
	}
	defer rows.Close()

	opponents := []Opponent{}
	for rows.Next() {
		o, err := scanOpponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opponent: %w", err)
		}
		opponents = append(opponents, *o)
	}
	return opponents, rows.Err()
}

// CreateGameType registers a new game type name.
func (s *LookupStore) CreateGameType(ctx context.Context, name string) (*GameType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("Game type name is required")
	}
	gt, err := scanGameType(s.pool.QueryRow(ctx, "game_type_create", name))
	if err != nil {
		return nil, translateError(err, "Game type")
	}
	return gt, nil
}

// EnsureGameType returns the game type with the given name, creating it if
// absent.
func (s *LookupStore) EnsureGameType(ctx context.Context, name string) (*GameType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("Game type name is required")
	}
	gt, err := scanGameType(s.pool.QueryRow(ctx, "game_type_ensure", name))
	if err != nil {
		return nil, translateError(err, "Game type")
	}
	return gt, nil
}

// ListGameTypes returns all game types ordered by name.
func (s *LookupStore) ListGameTypes(ctx context.Context) ([]GameType, error) {
	rows, err := s.pool.Query(ctx, "game_type_list")
	if err != nil {
		return nil, fmt.Errorf("list game types: %w", err)
	}
	defer rows.Close()

	gameTypes := []GameType{}
	for rows.Next() {
		gt, err := scanGameType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game type: %w", err)
		}
		gameTypes = append(gameTypes, *gt)
	}
	return gameTypes, rows.Err()
}
