package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FoyBuors17/stats-tracker/internal/api/handler"
	"github.com/FoyBuors17/stats-tracker/internal/config"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		CORSAllowOrigins:  []string{"http://localhost:3000"},
		RateLimitEnabled:  false,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
	h := handler.NewFromStores(handler.Stores{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return newRouter(h, cfg)
}

func TestRouterRoot(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/", "/api/v1/Stats/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Stats API routes working!", body["message"])
	}
}

func TestRouterUnknownPath(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/Stats/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterSwaggerDoc(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc["paths"], "/teams")
	assert.Contains(t, doc["paths"], "/stats/top-scorers")
}

func TestRouterTimingHeader(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Result().Header.Get("X-Process-Time"))
}
