package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
	"github.com/FoyBuors17/stats-tracker/internal/store"
)

type gameRequest struct {
	TeamID          int    `json:"team_id"`
	GameDate        string `json:"game_date"`
	Location        string `json:"location"`
	GameType        string `json:"game_type"`
	Opponent        string `json:"opponent"`
	GoalsFor        int    `json:"goals_for"`
	GoalsAgainst    int    `json:"goals_against"`
	Period1Minutes  int    `json:"period1_minutes"`
	Period2Minutes  int    `json:"period2_minutes"`
	Period3Minutes  int    `json:"period3_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
}

// toParams parses the request into store params. Writes a 400 and returns
// false when required fields are missing or the date is malformed.
func (req *gameRequest) toParams(w http.ResponseWriter) (store.GameParams, bool) {
	if req.TeamID == 0 || req.GameDate == "" || req.Location == "" || req.GameType == "" || req.Opponent == "" {
		respond.Error(w, http.StatusBadRequest, "Team ID, game date, location, game type, and opponent are required")
		return store.GameParams{}, false
	}
	date, err := time.Parse("2006-01-02", req.GameDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Game date must be a valid date (YYYY-MM-DD)")
		return store.GameParams{}, false
	}
	return store.GameParams{
		TeamID:          req.TeamID,
		GameDate:        date,
		Location:        req.Location,
		GameTypeName:    req.GameType,
		OpponentName:    req.Opponent,
		GoalsFor:        req.GoalsFor,
		GoalsAgainst:    req.GoalsAgainst,
		Period1Minutes:  req.Period1Minutes,
		Period2Minutes:  req.Period2Minutes,
		Period3Minutes:  req.Period3Minutes,
		OvertimeMinutes: req.OvertimeMinutes,
	}, true
}

// ListGames handles GET /games.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.List(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch games")
		return
	}
	respond.SuccessList(w, "games", len(games), games)
}

// CreateGame handles POST /games.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	params, ok := req.toParams(w)
	if !ok {
		return
	}

	game, err := h.games.Create(r.Context(), params)
	if err != nil {
		h.writeStoreError(w, err, "Failed to create game")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message": "Game created successfully",
		"game":    game,
	})
}

// GetGame handles GET /games/{id}.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	game, err := h.games.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch game")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{"game": game})
}

// GetGameWithPlayers handles GET /games/{id}/players — the game aggregate
// with its dress list nested under "players".
func (h *Handler) GetGameWithPlayers(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	game, err := h.games.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch game with players")
		return
	}
	players, err := h.dressings.ListByGame(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch game with players")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"game": store.GameWithPlayers{GameListEntry: *game, Players: players},
	})
}

// UpdateGame handles PUT /games/{id}.
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	params, ok := req.toParams(w)
	if !ok {
		return
	}

	game, err := h.games.Update(r.Context(), id, params)
	if err != nil {
		h.writeStoreError(w, err, "Failed to update game")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Game updated successfully",
		"game":    game,
	})
}

// DeleteGame handles DELETE /games/{id}.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	game, err := h.games.Delete(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to delete game")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Game deleted successfully",
		"game":    game,
	})
}
