package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FoyBuors17/stats-tracker/internal/store"
)

func TestRoot(t *testing.T) {
	h := newTestHandler(Stores{})
	rec := httptest.NewRecorder()

	h.Root(rec, request(http.MethodGet, "/", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Stats API routes working!", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestHealthCheck(t *testing.T) {
	now := time.Date(2024, 2, 3, 18, 30, 0, 0, time.UTC)
	h := newTestHandler(Stores{Health: &fakeHealthStore{
		nowFn: func(ctx context.Context) (time.Time, error) { return now, nil },
	}})
	rec := httptest.NewRecorder()

	h.HealthCheck(rec, request(http.MethodGet, "/health", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "2024-02-03T18:30:00Z", body["db_time"])
}

func TestHealthCheckDown(t *testing.T) {
	h := newTestHandler(Stores{Health: &fakeHealthStore{
		nowFn: func(ctx context.Context) (time.Time, error) { return time.Time{}, errors.New("dial tcp: refused") },
	}})
	rec := httptest.NewRecorder()

	h.HealthCheck(rec, request(http.MethodGet, "/health", "", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Database connection check failed", body["error"])
}

func TestHealthCheckDB(t *testing.T) {
	h := newTestHandler(Stores{Health: &fakeHealthStore{
		healthFn: func(ctx context.Context) error { return nil },
	}})
	rec := httptest.NewRecorder()

	h.HealthCheckDB(rec, request(http.MethodGet, "/health/db", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
}

func TestURLIDRejectsMalformedValues(t *testing.T) {
	h := newTestHandler(Stores{})

	for _, raw := range []string{"abc", "0", "-3", "1.5", ""} {
		rec := httptest.NewRecorder()
		h.GetTeam(rec, request(http.MethodGet, "/teams/"+raw, "", map[string]string{"id": raw}))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", raw)
		assert.Equal(t, "Invalid id", decodeBody(t, rec)["error"])
	}
}

func TestWriteStoreErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", store.NewValidationError("Jersey number must be a positive integer"), http.StatusBadRequest, "Jersey number must be a positive integer"},
		{"not found", &store.NotFoundError{Entity: "Team"}, http.StatusNotFound, "Team not found"},
		{"conflict", &store.ConflictError{Kind: store.ConflictTeamNameSeason, Message: "Team name already exists for this season"}, http.StatusConflict, "Team name already exists for this season"},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError, "Failed to fetch team"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(Stores{Teams: &fakeTeamStore{
				getFn: func(ctx context.Context, id int) (*store.Team, error) { return nil, tt.err },
			}})
			rec := httptest.NewRecorder()

			h.GetTeam(rec, request(http.MethodGet, "/teams/1", "", map[string]string{"id": "1"}))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"])
		})
	}
}
