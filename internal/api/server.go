// Package api wires the chi router: middleware stack, health endpoints,
// swagger UI, and the /api/v1/Stats route table.
package api

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/FoyBuors17/stats-tracker/internal/api/handler"
	"github.com/FoyBuors17/stats-tracker/internal/config"
	"github.com/FoyBuors17/stats-tracker/internal/db"
)

//go:embed doc.json
var swaggerDoc []byte

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *db.Pool, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	h := handler.New(pool, logger)
	return newRouter(h, cfg)
}

// newRouter builds the route table around an already-wired Handler. Split
// out so tests can mount fake stores.
func newRouter(h *handler.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time", "Link"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	// Swagger UI over the embedded spec
	r.Get("/docs/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(swaggerDoc)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1/Stats", func(r chi.Router) {
		r.Get("/", h.Root)

		// Teams
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Get("/{id}", h.GetTeam)
			r.Put("/{id}", h.UpdateTeam)
			r.Delete("/{id}", h.DeleteTeam)
			r.Get("/{id}/players", h.GetTeamWithPlayers)
			r.Get("/{id}/games", h.ListTeamGames)
		})

		// Players
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{id}", h.GetPlayer)
			r.Put("/{id}", h.UpdatePlayer)
			r.Delete("/{id}", h.DeletePlayer)
			r.Get("/{id}/stats", h.GetPlayerWithStats)
			r.Get("/{id}/teams", h.ListPlayerTeams)
		})

		// Roster assignments
		r.Route("/team-player", func(r chi.Router) {
			r.Get("/", h.ListAssignments)
			r.Post("/", h.AssignPlayer)
			r.Put("/{playerId}/{teamId}", h.UpdateAssignment)
			r.Delete("/{playerId}/{teamId}", h.RemoveAssignment)
		})

		// Lookup registries
		r.Route("/opponents", func(r chi.Router) {
			r.Get("/", h.ListOpponents)
			r.Post("/", h.CreateOpponent)
		})
		r.Route("/game-types", func(r chi.Router) {
			r.Get("/", h.ListGameTypes)
			r.Post("/", h.CreateGameType)
		})

		// Games
		r.Route("/games", func(r chi.Router) {
			r.Get("/", h.ListGames)
			r.Post("/", h.CreateGame)
			r.Get("/{id}", h.GetGame)
			r.Put("/{id}", h.UpdateGame)
			r.Delete("/{id}", h.DeleteGame)
			r.Get("/{id}/players", h.GetGameWithPlayers)
		})

		// Game dressings & starting goalie
		r.Route("/game-player", func(r chi.Router) {
			r.Post("/", h.DressPlayer)
			r.Delete("/{gameId}/{playerId}", h.UndressPlayer)
			r.Get("/game/{gameId}", h.ListGamePlayers)
			r.Post("/{gameId}/{playerId}/starting-goalie", h.SetStartingGoalie)
			r.Get("/game/{gameId}/starting-goalie", h.GetStartingGoalie)
			r.Delete("/game/{gameId}/starting-goalie", h.ClearStartingGoalie)
		})

		// Player season stats
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", h.ListStats)
			r.Post("/", h.CreateStats)
			r.Put("/", h.UpdateStats)
			r.Get("/top-scorers", h.TopScorers)
		})
	})

	return r
}
