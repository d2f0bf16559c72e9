package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
)

type dressingRequest struct {
	GameID           int  `json:"game_id"`
	PlayerID         int  `json:"player_id"`
	IsStartingGoalie bool `json:"is_starting_goalie"`
}

// DressPlayer handles POST /game-player.
func (h *Handler) DressPlayer(w http.ResponseWriter, r *http.Request) {
	var req dressingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GameID == 0 || req.PlayerID == 0 {
		respond.Error(w, http.StatusBadRequest, "Game ID and player ID are required")
		return
	}

	dressing, err := h.dressings.Dress(r.Context(), req.GameID, req.PlayerID, req.IsStartingGoalie)
	if err != nil {
		h.writeStoreError(w, err, "Failed to dress player for game")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message":    "Player dressed for game successfully",
		"gamePlayer": dressing,
	})
}

// UndressPlayer handles DELETE /game-player/{gameId}/{playerId}.
func (h *Handler) UndressPlayer(w http.ResponseWriter, r *http.Request) {
	gameID, ok := urlID(w, r, "gameId")
	if !ok {
		return
	}
	playerID, ok := urlID(w, r, "playerId")
	if !ok {
		return
	}
	dressing, err := h.dressings.Undress(r.Context(), gameID, playerID)
	if err != nil {
		h.writeStoreError(w, err, "Failed to remove player from game")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message":    "Player removed from game successfully",
		"gamePlayer": dressing,
	})
}

// ListGamePlayers handles GET /game-player/game/{gameId}.
func (h *Handler) ListGamePlayers(w http.ResponseWriter, r *http.Request) {
	gameID, ok := urlID(w, r, "gameId")
	if !ok {
		return
	}
	players, err := h.dressings.ListByGame(r.Context(), gameID)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch game players")
		return
	}
	respond.SuccessList(w, "players", len(players), players)
}

// SetStartingGoalie handles POST /game-player/{gameId}/{playerId}/starting-goalie.
// The store swaps the flag atomically and returns the flagged row from the
// same transaction: any previous holder is cleared, the named player
// flagged, and the response reflects that write even under concurrent
// clears.
func (h *Handler) SetStartingGoalie(w http.ResponseWriter, r *http.Request) {
	gameID, ok := urlID(w, r, "gameId")
	if !ok {
		return
	}
	playerID, ok := urlID(w, r, "playerId")
	if !ok {
		return
	}
	goalie, err := h.dressings.SetStartingGoalie(r.Context(), gameID, playerID)
	if err != nil {
		h.writeStoreError(w, err, "Failed to set starting goalie")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message":        "Starting goalie set successfully",
		"startingGoalie": goalie,
	})
}

// ClearStartingGoalie handles DELETE /game-player/game/{gameId}/starting-goalie.
// Idempotent; reports how many rows were unflagged.
func (h *Handler) ClearStartingGoalie(w http.ResponseWriter, r *http.Request) {
	gameID, ok := urlID(w, r, "gameId")
	if !ok {
		return
	}
	cleared, err := h.dressings.ClearStartingGoalie(r.Context(), gameID)
	if err != nil {
		h.writeStoreError(w, err, "Failed to clear starting goalie")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Starting goalie cleared",
		"cleared": cleared,
	})
}

// GetStartingGoalie handles GET /game-player/game/{gameId}/starting-goalie.
func (h *Handler) GetStartingGoalie(w http.ResponseWriter, r *http.Request) {
	gameID, ok := urlID(w, r, "gameId")
	if !ok {
		return
	}
	goalie, err := h.dressings.GetStartingGoalie(r.Context(), gameID)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch starting goalie")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{"startingGoalie": goalie})
}
