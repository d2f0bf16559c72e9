// Package handler provides HTTP handlers for all API endpoints. Handlers
// validate input shape, invoke one store operation, and map the result (or
// typed store error) onto the JSON envelope. Store details never leak to
// callers; unclassified failures are logged here and surfaced as generic
// "Failed to ..." messages.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
	"github.com/FoyBuors17/stats-tracker/internal/db"
	"github.com/FoyBuors17/stats-tracker/internal/store"
)

// Store interfaces consumed by the handlers. Concrete implementations live
// in internal/store; tests substitute fakes.

type TeamStore interface {
	Create(ctx context.Context, city, name string, level *string, season, sport string) (*store.Team, error)
	List(ctx context.Context) ([]store.Team, error)
	Get(ctx context.Context, id int) (*store.Team, error)
	Update(ctx context.Context, id int, city, name string, level *string, season, sport string) (*store.Team, error)
	Delete(ctx context.Context, id int) (*store.Team, error)
}

type PlayerStore interface {
	Create(ctx context.Context, firstName, lastName string, dateOfBirth time.Time) (*store.Player, error)
	List(ctx context.Context) ([]store.Player, error)
	Get(ctx context.Context, id int) (*store.Player, error)
	Update(ctx context.Context, id int, firstName, lastName string, dateOfBirth time.Time) (*store.Player, error)
	Delete(ctx context.Context, id int) (*store.Player, error)
}

type RosterStore interface {
	Assign(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*store.RosterAssignment, error)
	UpdateAssignment(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*store.RosterAssignment, error)
	Remove(ctx context.Context, playerID, teamID int) (*store.RosterAssignment, error)
	ListByTeam(ctx context.Context, teamID int) ([]store.TeamRosterEntry, error)
	ListByPlayer(ctx context.Context, playerID int) ([]store.PlayerTeamEntry, error)
	ListAll(ctx context.Context) ([]store.AssignmentListEntry, error)
}

type GameStore interface {
	Create(ctx context.Context, p store.GameParams) (*store.Game, error)
	Update(ctx context.Context, id int, p store.GameParams) (*store.Game, error)
	Delete(ctx context.Context, id int) (*store.Game, error)
	Get(ctx context.Context, id int) (*store.GameListEntry, error)
	List(ctx context.Context) ([]store.GameListEntry, error)
	ListByTeam(ctx context.Context, teamID int) ([]store.GameListEntry, error)
}

type DressingStore interface {
	Dress(ctx context.Context, gameID, playerID int, isStartingGoalie bool) (*store.GameDressing, error)
	Undress(ctx context.Context, gameID, playerID int) (*store.GameDressing, error)
	ListByGame(ctx context.Context, gameID int) ([]store.DressedPlayer, error)
	SetStartingGoalie(ctx context.Context, gameID, playerID int) (*store.DressedPlayer, error)
	ClearStartingGoalie(ctx context.Context, gameID int) (int, error)
	GetStartingGoalie(ctx context.Context, gameID int) (*store.DressedPlayer, error)
}

type LookupStore interface {
	CreateOpponent(ctx context.Context, name string) (*store.Opponent, error)
	ListOpponents(ctx context.Context) ([]store.Opponent, error)
	CreateGameType(ctx context.Context, name string) (*store.GameType, error)
	ListGameTypes(ctx context.Context) ([]store.GameType, error)
}

type StatStore interface {
	Create(ctx context.Context, playerID int, season string, c store.StatCounters) (*store.PlayerSeasonStat, error)
	Update(ctx context.Context, playerID int, season string, c store.StatCounters) (*store.PlayerSeasonStat, error)
	List(ctx context.Context) ([]store.StatListEntry, error)
	ListByPlayer(ctx context.Context, playerID int) ([]store.PlayerSeasonStat, error)
	TopScorers(ctx context.Context, season string, limit int) ([]store.TopScorer, error)
}

type HealthStore interface {
	HealthCheck(ctx context.Context) error
	Now(ctx context.Context) (time.Time, error)
}

// Stores bundles every store dependency a Handler needs.
type Stores struct {
	Health    HealthStore
	Teams     TeamStore
	Players   PlayerStore
	Roster    RosterStore
	Games     GameStore
	Dressings DressingStore
	Lookups   LookupStore
	Stats     StatStore
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	logger    *slog.Logger
	health    HealthStore
	teams     TeamStore
	players   PlayerStore
	roster    RosterStore
	games     GameStore
	dressings DressingStore
	lookups   LookupStore
	stats     StatStore
}

// New creates a Handler wired to the live store layer.
func New(pool *db.Pool, logger *slog.Logger) *Handler {
	lookups := store.NewLookupStore(pool.Pool)
	return NewFromStores(Stores{
		Health:    pool,
		Teams:     store.NewTeamStore(pool.Pool),
		Players:   store.NewPlayerStore(pool.Pool),
		Roster:    store.NewRosterStore(pool.Pool),
		Games:     store.NewGameStore(pool.Pool, lookups),
		Dressings: store.NewDressingStore(pool.Pool),
		Lookups:   lookups,
		Stats:     store.NewStatStore(pool.Pool),
	}, logger)
}

// NewFromStores creates a Handler from explicit store implementations.
func NewFromStores(s Stores, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		health:    s.Health,
		teams:     s.Teams,
		players:   s.Players,
		roster:    s.Roster,
		games:     s.Games,
		dressings: s.Dressings,
		lookups:   s.Lookups,
		stats:     s.Stats,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Stats API routes working!",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"teams":   "/api/v1/Stats/teams",
			"players": "/api/v1/Stats/players",
			"games":   "/api/v1/Stats/games",
			"stats":   "/api/v1/Stats/stats",
		},
	})
}

// HealthCheck reports store connectivity and the store-side clock.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	dbTime, err := h.health.Now(r.Context())
	if err != nil {
		h.logger.Error("Health check failed", "error", err)
		respond.Error(w, http.StatusServiceUnavailable, "Database connection check failed")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"status":   "healthy",
		"database": "connected",
		"db_time":  dbTime.UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies basic database connectivity.
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.health.HealthCheck(r.Context()); err != nil {
		h.logger.Error("Database health check failed", "error", err)
		respond.Error(w, http.StatusServiceUnavailable, "Database connection check failed")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeStoreError maps the typed store error taxonomy onto HTTP statuses.
// Anything unclassified is logged and reported with the generic fallback.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	var conflictErr *store.ConflictError

	switch {
	case errors.As(err, &validationErr):
		respond.Error(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		respond.Error(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		respond.Error(w, http.StatusConflict, conflictErr.Message)
	default:
		h.logger.Error(fallback, "error", err)
		respond.Error(w, http.StatusInternalServerError, fallback)
	}
}

// urlID parses a positive integer URL parameter. Writes a 400 and returns
// false when the value is malformed.
func urlID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
