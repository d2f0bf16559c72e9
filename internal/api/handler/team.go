package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
	"github.com/FoyBuors17/stats-tracker/internal/store"
)

type teamRequest struct {
	City   string  `json:"city"`
	Name   string  `json:"name"`
	Level  *string `json:"level"`
	Season string  `json:"season"`
	Sport  string  `json:"sport"`
}

func (req *teamRequest) complete() bool {
	return req.City != "" && req.Name != "" && req.Season != "" && req.Sport != ""
}

// ListTeams handles GET /teams.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch teams")
		return
	}
	respond.SuccessList(w, "teams", len(teams), teams)
}

// CreateTeam handles POST /teams.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.complete() {
		respond.Error(w, http.StatusBadRequest, "City, name, season, and sport are required")
		return
	}

	team, err := h.teams.Create(r.Context(), req.City, req.Name, req.Level, req.Season, req.Sport)
	if err != nil {
		h.writeStoreError(w, err, "Failed to create team")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message": "Team created successfully",
		"team":    team,
	})
}

// GetTeam handles GET /teams/{id}.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	team, err := h.teams.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch team")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{"team": team})
}

// GetTeamWithPlayers handles GET /teams/{id}/players — the team aggregate
// with its roster nested under "players".
func (h *Handler) GetTeamWithPlayers(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	team, err := h.teams.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch team with players")
		return
	}
	roster, err := h.roster.ListByTeam(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch team with players")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"team": store.TeamWithRoster{Team: *team, Players: roster},
	})
}

// ListTeamGames handles GET /teams/{id}/games.
func (h *Handler) ListTeamGames(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.teams.Get(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "Failed to fetch team games")
		return
	}
	games, err := h.games.ListByTeam(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch team games")
		return
	}
	respond.SuccessList(w, "games", len(games), games)
}

// UpdateTeam handles PUT /teams/{id}.
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.complete() {
		respond.Error(w, http.StatusBadRequest, "City, name, season, and sport are required")
		return
	}

	team, err := h.teams.Update(r.Context(), id, req.City, req.Name, req.Level, req.Season, req.Sport)
	if err != nil {
		h.writeStoreError(w, err, "Failed to update team")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Team updated successfully",
		"team":    team,
	})
}

// DeleteTeam handles DELETE /teams/{id}. Roster assignments and games are
// cascade-deleted by the store.
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	team, err := h.teams.Delete(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "Failed to delete team")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Team deleted successfully",
		"team":    team,
	})
}
