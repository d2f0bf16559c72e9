package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GameParams carries the caller-supplied fields for a game write. Opponent
// and game type arrive as names and are resolved (creating lookup entries on
// demand) before the row is written.
type GameParams struct {
	TeamID          int
	GameDate        time.Time
	Location        string
	GameTypeName    string
	OpponentName    string
	GoalsFor        int
	GoalsAgainst    int
	Period1Minutes  int
	Period2Minutes  int
	Period3Minutes  int
	OvertimeMinutes int
}

func (p *GameParams) validate() error {
	if !ValidLocation(p.Location) {
		return NewValidationError("Location must be 'Home', 'Away', or 'Tournament'")
	}
	if p.GoalsFor < 0 || p.GoalsAgainst < 0 {
		return NewValidationError("Goals must be non-negative integers")
	}
	for _, minutes := range []int{p.Period1Minutes, p.Period2Minutes, p.Period3Minutes, p.OvertimeMinutes} {
		if minutes < 0 {
			return NewValidationError("Period lengths must be non-negative integers")
		}
	}
	return nil
}

// GameStore manages game rows.
type GameStore struct {
	pool    *pgxpool.Pool
	lookups *LookupStore
}

func NewGameStore(pool *pgxpool.Pool, lookups *LookupStore) *GameStore {
	return &GameStore{pool: pool, lookups: lookups}
}

func scanGame(row pgx.Row) (*Game, error) {
	var g Game
	err := row.Scan(
		&g.ID, &g.TeamID, &g.GameDate, &g.Location, &g.GameTypeID, &g.OpponentID,
		&g.GoalsFor, &g.GoalsAgainst,
		&g.Period1Minutes, &g.Period2Minutes, &g.Period3Minutes, &g.OvertimeMinutes,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGameListEntry(row pgx.Row) (*GameListEntry, error) {
	var g GameListEntry
	err := row.Scan(
		&g.ID, &g.TeamID, &g.GameDate, &g.Location, &g.GameTypeID, &g.OpponentID,
		&g.GoalsFor, &g.GoalsAgainst,
		&g.Period1Minutes, &g.Period2Minutes, &g.Period3Minutes, &g.OvertimeMinutes,
		&g.CreatedAt, &g.UpdatedAt,
		&g.GameTypeName, &g.OpponentName,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// resolveLookups turns the opponent and game type names into row ids.
func (s *GameStore) resolveLookups(ctx context.Context, p *GameParams) (gameTypeID, opponentID int, err error) {
	gt, err := s.lookups.EnsureGameType(ctx, p.GameTypeName)
	if err != nil {
		return 0, 0, err
	}
	o, err := s.lookups.EnsureOpponent(ctx, p.OpponentName)
	if err != nil {
		return 0, 0, err
	}
	return gt.ID, o.ID, nil
}

// Create validates, resolves lookups and inserts a game row.
func (s *GameStore) Create(ctx context.Context, p GameParams) (*Game, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	gameTypeID, opponentID, err := s.resolveLookups(ctx, &p)
	if err != nil {
		return nil, err
	}
	g, err := scanGame(s.pool.QueryRow(ctx, "game_create",
		p.TeamID, p.GameDate, p.Location, gameTypeID, opponentID,
		p.GoalsFor, p.GoalsAgainst,
		p.Period1Minutes, p.Period2Minutes, p.Period3Minutes, p.OvertimeMinutes,
	))
	if err != nil {
		return nil, translateError(err, "Game")
	}
	return g, nil
}

// Update validates, resolves lookups and replaces all mutable game fields.
func (s *GameStore) Update(ctx context.Context, id int, p GameParams) (*Game, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	gameTypeID, opponentID, err := s.resolveLookups(ctx, &p)
	if err != nil {
		return nil, err
	}
	g, err := scanGame(s.pool.QueryRow(ctx, "game_update",
		id, p.TeamID, p.GameDate, p.Location, gameTypeID, opponentID,
		p.GoalsFor, p.GoalsAgainst,
		p.Period1Minutes, p.Period2Minutes, p.Period3Minutes, p.OvertimeMinutes,
	))
	if err != nil {
		return nil, translateError(err, "Game")
	}
	return g, nil
}

// Delete removes a game; its dressings go with it via cascade.
func (s *GameStore) Delete(ctx context.Context, id int) (*Game, error) {
	g, err := scanGame(s.pool.QueryRow(ctx, "game_delete", id))
	if err != nil {
		return nil, translateError(err, "Game")
	}
	return g, nil
}

// Get returns one game with its lookup names resolved.
func (s *GameStore) Get(ctx context.Context, id int) (*GameListEntry, error) {
	g, err := scanGameListEntry(s.pool.QueryRow(ctx, "game_get", id))
	if err != nil {
		return nil, translateError(err, "Game")
	}
	return g, nil
}

// List returns all games, newest first.
func (s *GameStore) List(ctx context.Context) ([]GameListEntry, error) {
	return s.listGames(ctx, "game_list")
}

// ListByTeam returns a team's games, newest first.
func (s *GameStore) ListByTeam(ctx context.Context, teamID int) ([]GameListEntry, error) {
	return s.listGames(ctx, "game_list_by_team", teamID)
}

func (s *GameStore) listGames(ctx context.Context, stmt string, args ...interface{}) ([]GameListEntry, error) {
	rows, err := s.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []GameListEntry{}
	for rows.Next() {
		g, err := scanGameListEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}
