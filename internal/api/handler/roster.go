package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FoyBuors17/stats-tracker/internal/api/respond"
)

type assignmentRequest struct {
	PlayerID     int    `json:"player_id"`
	TeamID       int    `json:"team_id"`
	JerseyNumber int    `json:"jersey_number"`
	Position     string `json:"position"`
}

// ListAssignments handles GET /team-player.
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.roster.ListAll(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "Failed to fetch assignments")
		return
	}
	respond.SuccessList(w, "assignments", len(assignments), assignments)
}

// AssignPlayer handles POST /team-player.
func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == 0 || req.TeamID == 0 || req.JerseyNumber == 0 || req.Position == "" {
		respond.Error(w, http.StatusBadRequest, "Player ID, team ID, jersey number, and position are required")
		return
	}

	assignment, err := h.roster.Assign(r.Context(), req.PlayerID, req.TeamID, req.JerseyNumber, req.Position)
	if err != nil {
		h.writeStoreError(w, err, "Failed to assign player to team")
		return
	}
	respond.Success(w, http.StatusCreated, respond.Fields{
		"message":    "Player assigned to team successfully",
		"assignment": assignment,
	})
}

// UpdateAssignment handles PUT /team-player/{playerId}/{teamId}.
func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	playerID, ok := urlID(w, r, "playerId")
	if !ok {
		return
	}
	teamID, ok := urlID(w, r, "teamId")
	if !ok {
		return
	}
	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.JerseyNumber == 0 || req.Position == "" {
		respond.Error(w, http.StatusBadRequest, "Jersey number and position are required")
		return
	}

	assignment, err := h.roster.UpdateAssignment(r.Context(), playerID, teamID, req.JerseyNumber, req.Position)
	if err != nil {
		h.writeStoreError(w, err, "Failed to update assignment")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message":    "Assignment updated successfully",
		"assignment": assignment,
	})
}

// RemoveAssignment handles DELETE /team-player/{playerId}/{teamId}.
func (h *Handler) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	playerID, ok := urlID(w, r, "playerId")
	if !ok {
		return
	}
	teamID, ok := urlID(w, r, "teamId")
	if !ok {
		return
	}
	assignment, err := h.roster.Remove(r.Context(), playerID, teamID)
	if err != nil {
		h.writeStoreError(w, err, "Failed to remove player from team")
		return
	}
	respond.Success(w, http.StatusOK, respond.Fields{
		"message":    "Player removed from team successfully",
		"assignment": assignment,
	})
}
