package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-logistics-router/internal/handlers"
	"quantum-logistics-router/internal/models"
	"quantum-logistics-router/internal/solver"
)

func testMux() http.Handler {
	handler := &handlers.Handler{Solver: solver.New(nil, 0)}
	return setupRoutes(handler)
}

func TestRoutesDispatch(t *testing.T) {
	mux := testMux()

	for _, path := range []string{
		"/api/health",
		"/api/routing-status",
		"/api/test-data",
		"/api/capitals",
		"/api/cities",
		"/api/cities/sao_paulo/neighborhoods",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestRoutesRejectWrongMethod(t *testing.T) {
	mux := testMux()

	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSolveThroughMux(t *testing.T) {
	mux := testMux()

	payload, err := json.Marshal(handlers.SolveRequest{
		Locations: []models.Location{
			{ID: 0, Name: "Depot", Lat: 0, Lng: 0},
			{ID: 1, Name: "A", Lat: 0, Lng: 1},
			{ID: 2, Name: "B", Lat: 1, Lng: 1},
		},
		Algorithm: "classical",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.SolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Len(t, result.Route, 4)
}

func TestServerLifecycle(t *testing.T) {
	srv, err := New(Config{
		Addr:        "127.0.0.1:0",
		CacheDBPath: filepath.Join(t.TempDir(), "distances.db"),
	})
	require.NoError(t, err)

	addr, err := srv.Start()
	require.NoError(t, err)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + addr + "/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
}
