package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
	"github.com/FoyBuors17/stats-tracker/internal/store"
)

type statRequest struct {
	PlayerID      int    `json:"player_id"`
	Season        string `json:"season"`
	GamesPlayed   int    `json:"games_played"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	MinutesPlayed int    `json:"minutes_played"`
}

func (req *statRequest) counters() store.StatCounters {
	return store.StatCounters{
		GamesPlayed:   req.GamesPlayed,
		Goals:         req.Goals,
		Assists:       req.Assists,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		MinutesPlayed: req.MinutesPlayed,
	}
}

// ListStats handles GET /stats.
func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.List(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch stats")
		return
	}
	respond.SuccessList(w, "stats", len(stats), stats)
}

// CreateStats handles POST /stats.
func (h *Handler) CreateStats(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == 0 || req.Season == "" {
		respond.Error(w, http.StatusBadRequest, "Player ID and season are required")
		return
	}

	stats, err := h.stats.Create(r.Context(), req.PlayerID, req.Season, req.counters())
	if err != nil {
		h.writeStoreError(w, err, "Failed to create player stats")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message": "Player stats created successfully",
		"stats":   stats,
	})
}

// UpdateStats handles PUT /stats. Counters are replaced wholesale, never
// incremented.
func (h *Handler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == 0 || req.Season == "" {
		respond.Error(w, http.StatusBadRequest, "Player ID and season are required")
		return
	}

	stats, err := h.stats.Update(r.Context(), req.PlayerID, req.Season, req.counters())
	if err != nil {
		h.writeStoreError(w, err, "Failed to update player stats")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Player stats updated successfully",
		"stats":   stats,
	})
}

// TopScorers handles GET /stats/top-scorers?season=&limit=.
func (h *Handler) TopScorers(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	if season == "" {
		season = "2023-24"
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respond.Error(w, http.StatusBadRequest, "Limit must be a positive integer")
			return
		}
		limit = n
	}

	scorers, err := h.stats.TopScorers(r.Context(), season, limit)
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch top scorers")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"season":     season,
		"count":      len(scorers),
		"topScorers": scorers,
	})
}
