package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-logistics-router/internal/models"
	"quantum-logistics-router/internal/solver"
	"quantum-logistics-router/internal/testutil"
)

func newTestHandler(provider *testutil.MockMatrixProvider) *Handler {
	if provider == nil {
		return &Handler{Solver: solver.New(nil, 0)}
	}
	return &Handler{Solver: solver.New(provider, 0)}
}

func unitSquare() []models.Location {
	return []models.Location{
		{ID: 0, Name: "Depot", Lat: 0, Lng: 0},
		{ID: 1, Name: "A", Lat: 0, Lng: 1},
		{ID: 2, Name: "B", Lat: 1, Lng: 1},
		{ID: 3, Name: "C", Lat: 1, Lng: 0},
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleSolveClassical(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations: unitSquare(),
		Algorithm: "classical",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.SolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "brute_force", result.Method)
	assert.Len(t, result.Route, 5)
	assert.InDelta(t, 444.78, result.TotalDistanceKm, 0.5)
	assert.False(t, result.UsedRealRoads)
}

func TestHandleSolveQuantum(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations: unitSquare(),
		Algorithm: "quantum",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.SolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "quantum_exact", result.Method)
}

func TestHandleSolveExplicitMethod(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations: unitSquare(),
		Method:    "nearest_neighbor",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.SolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "nearest_neighbor", result.Method)
}

func TestHandleSolveQuantumCapExceeded(t *testing.T) {
	h := newTestHandler(nil)
	locations := append(unitSquare(), models.Location{ID: 4, Name: "E", Lat: 2, Lng: 2})

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations: locations,
		Algorithm: "quantum",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "quantum mode limited to 4 points")
}

func TestHandleSolveTooFewLocations(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations: unitSquare()[:1],
		Algorithm: "classical",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolveUnknownAlgorithm(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations: unitSquare(),
		Algorithm: "annealing",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolveInvalidJSON(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.HandleSolve(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolveProviderFallback(t *testing.T) {
	provider := testutil.NewMockMatrixProvider()
	provider.Fail = true
	h := newTestHandler(provider)

	rec := postJSON(t, h.HandleSolve, "/api/solve", SolveRequest{
		Locations:    unitSquare(),
		Algorithm:    "classical",
		UseRealRoads: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.SolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.False(t, result.UsedRealRoads)
}

func TestHandleCompare(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleCompare, "/api/compare", CompareRequest{
		Locations: unitSquare(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.ComparisonResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Classical.Success)
	assert.True(t, result.Quantum.Success)
	assert.Equal(t, "brute_force", result.Classical.Method)
	assert.Equal(t, "quantum_exact", result.Quantum.Method)
}

func TestHandleCompareCapExceeded(t *testing.T) {
	h := newTestHandler(nil)
	locations := append(unitSquare(), models.Location{ID: 4, Name: "E", Lat: 2, Lng: 2})

	rec := postJSON(t, h.HandleCompare, "/api/compare", CompareRequest{
		Locations: locations,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateRoute(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleGenerateRoute, "/api/generate-route", GenerateRouteRequest{
		CityKey:   "sao_paulo",
		Algorithm: "classical",
		NumPoints: 5,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success     bool              `json:"success"`
		CityName    string            `json:"city_name"`
		Locations   []models.Location `json:"locations"`
		TotalPoints int               `json:"total_points"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "São Paulo (SP)", resp.CityName)
	assert.Len(t, resp.Locations, 6)
	assert.Equal(t, 6, resp.TotalPoints)
	assert.Equal(t, 0, resp.Locations[0].ID)
}

func TestHandleGenerateRouteMissingCity(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleGenerateRoute, "/api/generate-route", GenerateRouteRequest{
		Algorithm: "classical",
		NumPoints: 3,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateRouteUnknownCity(t *testing.T) {
	h := newTestHandler(nil)

	rec := postJSON(t, h.HandleGenerateRoute, "/api/generate-route", GenerateRouteRequest{
		CityKey:   "atlantis",
		Algorithm: "classical",
		NumPoints: 3,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTestData(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/test-data", nil)
	rec := httptest.NewRecorder()
	h.HandleTestData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success     bool              `json:"success"`
		Locations   []models.Location `json:"locations"`
		TotalPoints int               `json:"total_points"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 8, resp.TotalPoints)
}

func TestHandleCapitals(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/capitals", nil)
	rec := httptest.NewRecorder()
	h.HandleCapitals(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Locations []models.Location `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Locations, 10)
}

func TestHandleCities(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	rec := httptest.NewRecorder()
	h.HandleCities(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Cities []citySummary `json:"cities"`
		Total  int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Total)
	for _, c := range resp.Cities {
		assert.NotEmpty(t, c.Key)
		assert.Equal(t, 9, c.Neighborhoods)
	}
}

func TestHandleCityNeighborhoods(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cities/rio_de_janeiro/neighborhoods", nil)
	rec := httptest.NewRecorder()
	h.HandleCityNeighborhoods(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success       bool              `json:"success"`
		CityName      string            `json:"city_name"`
		Hub           models.Location   `json:"hub"`
		Neighborhoods []models.Location `json:"neighborhoods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Rio de Janeiro (RJ)", resp.CityName)
	assert.Len(t, resp.Neighborhoods, 9)
	assert.Equal(t, 0, resp.Hub.ID)
}

func TestHandleCityNeighborhoodsUnknown(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cities/atlantis/neighborhoods", nil)
	rec := httptest.NewRecorder()
	h.HandleCityNeighborhoods(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealthCheck(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealthCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, false, resp["real_roads_available"])
}

func TestHandleRoutingStatus(t *testing.T) {
	withProvider := newTestHandler(testutil.NewMockMatrixProvider())

	req := httptest.NewRequest(http.MethodGet, "/api/routing-status", nil)
	rec := httptest.NewRecorder()
	withProvider.HandleRoutingStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["real_roads_available"])
}
