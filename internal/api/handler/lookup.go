package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
)

type lookupRequest struct {
	Name string `json:"name"`
}

// ListOpponents handles GET /opponents.
func (h *Handler) ListOpponents(w http.ResponseWriter, r *http.Request) {
	opponents, err := h.lookups.ListOpponents(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch opponents")
		return
	}
	respond.SuccessList(w, "opponents", len(opponents), opponents)
}

// CreateOpponent handles POST /opponents.
func (h *Handler) CreateOpponent(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	opponent, err := h.lookups.CreateOpponent(r.Context(), req.Name)
	if err != nil {
		h.writeStoreError(w, err, "Failed to create opponent")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message":  "Opponent created successfully",
		"opponent": opponent,
	})
}

// ListGameTypes handles GET /game-types.
func (h *Handler) ListGameTypes(w http.ResponseWriter, r *http.Request) {
	gameTypes, err := h.lookups.ListGameTypes(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch game types")
		return
	}
	respond.SuccessList(w, "gameTypes", len(gameTypes), gameTypes)
}

// CreateGameType handles POST /game-types.
func (h *Handler) CreateGameType(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	gameType, err := h.lookups.CreateGameType(r.Context(), req.Name)
	if err != nil {
		h.writeStoreError(w, err, "Failed to create game type")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message":  "Game type created successfully",
		"gameType": gameType,
	})
}
