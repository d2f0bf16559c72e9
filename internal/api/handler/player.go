package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
	"github.com/FoyBuors17/stats-tracker/internal/store"
)

type playerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// parseDateOfBirth accepts plain dates and RFC 3339 timestamps.
func parseDateOfBirth(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ListPlayers handles GET /players.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch players")
		return
	}
	respond.SuccessList(w, "players", len(players), players)
}

// CreatePlayer handles POST /players.
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.DateOfBirth == "" {
		respond.Error(w, http.StatusBadRequest, "First name, last name, and date of birth are required")
		return
	}
	dob, ok := parseDateOfBirth(req.DateOfBirth)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Date of birth must be a valid date (YYYY-MM-DD)")
		return
	}

	player, err := h.players.Create(r.Context(), req.FirstName, req.LastName, dob)
	if err != nil {
		h.writeStoreError(w, err, "Failed to create player")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message": "Player created successfully",
		"player":  player,
	})
}

// GetPlayer handles GET /players/{id}.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch player")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{"player": player})
}

// GetPlayerWithStats handles GET /players/{id}/stats — the player aggregate
// with all season stat rows.
func (h *Handler) GetPlayerWithStats(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch player stats")
		return
	}
	stats, err := h.stats.ListByPlayer(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch player stats")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"player": store.PlayerWithStats{Player: *player, Stats: stats},
	})
}

// ListPlayerTeams handles GET /players/{id}/teams — the player's roster
// assignments ordered by team name.
func (h *Handler) ListPlayerTeams(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.players.Get(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "Failed to fetch player teams")
		return
	}
	teams, err := h.roster.ListByPlayer(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch player teams")
		return
	}
	respond.SuccessList(w, "teams", len(teams), teams)
}

// UpdatePlayer handles PUT /players/{id}.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.DateOfBirth == "" {
		respond.Error(w, http.StatusBadRequest, "First name, last name, and date of birth are required")
		return
	}
	dob, ok := parseDateOfBirth(req.DateOfBirth)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Date of birth must be a valid date (YYYY-MM-DD)")
		return
	}

	player, err := h.players.Update(r.Context(), id, req.FirstName, req.LastName, dob)
	if err != nil {
		h.writeStoreError(w, err, "Failed to update player")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Player updated successfully",
		"player":  player,
	})
}

// DeletePlayer handles DELETE /players/{id}.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	player, err := h.players.Delete(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to delete player")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Player deleted successfully",
		"player":  player,
	})
}
