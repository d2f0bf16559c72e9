package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DressingStore manages which players are dressed for a game and the
// starting-goalie flag. The at-most-one-starting-goalie invariant is held
// two ways: SetStartingGoalie runs clear-then-set inside a single
// transaction, and the schema carries a partial unique index on
// (game_id) WHERE is_starting_goalie as a backstop.
type DressingStore struct {
	pool *pgxpool.Pool
}

func NewDressingStore(pool *pgxpool.Pool) *DressingStore {
	return &DressingStore{pool: pool}
}

func scanDressing(row pgx.Row) (*GameDressing, error) {
	var d GameDressing
	err := row.Scan(&d.ID, &d.GameID, &d.PlayerID, &d.IsStartingGoalie, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDressedPlayer(row pgx.Row) (*DressedPlayer, error) {
	var d DressedPlayer
	err := row.Scan(
		&d.ID, &d.GameID, &d.PlayerID, &d.IsStartingGoalie, &d.CreatedAt,
		&d.FirstName, &d.LastName, &d.FullName,
		&d.JerseyNumber, &d.Position,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Dress adds a player to a game's dress list. Position eligibility for the
// starting-goalie flag is the caller's responsibility, not a store
// invariant.
func (s *DressingStore) Dress(ctx context.Context, gameID, playerID int, isStartingGoalie bool) (*GameDressing, error) {
	d, err := scanDressing(s.pool.QueryRow(ctx, "dressing_create", gameID, playerID, isStartingGoalie))
	if err != nil {
		return nil, translateError(err, "Game player")
	}
	return d, nil
}

// Undress removes a player from a game's dress list.
func (s *DressingStore) Undress(ctx context.Context, gameID, playerID int) (*GameDressing, error) {
	d, err := scanDressing(s.pool.QueryRow(ctx, "dressing_delete", gameID, playerID))
	if err != nil {
		return nil, translateError(err, "Game player")
	}
	return d, nil
}

// ListByGame returns a game's dress list with player identity and, where the
// player is on the owning team's roster, jersey and position.
func (s *DressingStore) ListByGame(ctx context.Context, gameID int) ([]DressedPlayer, error) {
	rows, err := s.pool.Query(ctx, "dressing_list_by_game", gameID)
	if err != nil {
		return nil, fmt.Errorf("list dressings for game %d: %w", gameID, err)
	}
	defer rows.Close()

	players := []DressedPlayer{}
	for rows.Next() {
		d, err := scanDressedPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dressed player: %w", err)
		}
		players = append(players, *d)
	}
	return players, rows.Err()
}

// SetStartingGoalie flags the given dressed player as the game's starting
// goalie, clearing any previous holder, and returns the flagged dressing.
// Clear, set, and the returning read all run in one transaction; concurrent
// callers serialize on the row locks, so the game always ends with exactly
// one flagged row and the caller sees the row it flagged, not a later
// writer's. NotFound when the player is not dressed for the game.
func (s *DressingStore) SetStartingGoalie(ctx context.Context, gameID, playerID int) (*DressedPlayer, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin starting-goalie swap: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "goalie_clear", gameID); err != nil {
		return nil, translateError(err, "Game player")
	}

	tag, err := tx.Exec(ctx, "goalie_set", gameID, playerID)
	if err != nil {
		return nil, translateError(err, "Game player")
	}
	if tag.RowsAffected() == 0 {
		return nil, &NotFoundError{Entity: "Game player"}
	}

	d, err := scanDressedPlayer(tx.QueryRow(ctx, "goalie_get", gameID))
	if err != nil {
		return nil, translateError(err, "Game player")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translateError(err, "Game player")
	}
	return d, nil
}

// ClearStartingGoalie unsets the flag for all of the game's dressings and
// returns how many rows were flagged. Idempotent: a second call affects zero
// rows.
func (s *DressingStore) ClearStartingGoalie(ctx context.Context, gameID int) (int, error) {
	tag, err := s.pool.Exec(ctx, "goalie_clear", gameID)
	if err != nil {
		return 0, fmt.Errorf("clear starting goalie for game %d: %w", gameID, err)
	}
	return int(tag.RowsAffected()), nil
}

// GetStartingGoalie returns the game's flagged dressing, or NotFound when no
// row carries the flag.
func (s *DressingStore) GetStartingGoalie(ctx context.Context, gameID int) (*DressedPlayer, error) {
	d, err := scanDressedPlayer(s.pool.QueryRow(ctx, "goalie_get", gameID))
	if err != nil {
		return nil, translateError(err, "Starting goalie")
	}
	return d, nil
}
