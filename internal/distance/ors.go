// Package distance supplies real-road distance matrices from the
// OpenRouteService API, backed by a persistent pair cache. Failures are
// recoverable by design: the dispatcher falls back to great-circle
// distances rather than failing the solve.
package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"quantum-logistics-router/internal/models"
)

// MaxLocations is the ORS matrix endpoint cap per request.
const MaxLocations = 50

const defaultBaseURL = "https://api.openrouteservice.org"

// MatrixResult holds road distances (km) and durations (minutes). Road
// matrices are directional and may be asymmetric.
type MatrixResult struct {
	Distances [][]float64
	Durations [][]float64
}

// RouteGeometry is the drivable polyline for an ordered route
type RouteGeometry struct {
	DistanceKm  float64
	DurationMin float64
	// Geometry is a list of [lon, lat] pairs, ORS coordinate order.
	Geometry [][]float64
}

// MatrixProvider produces road-distance matrices and route geometry.
type MatrixProvider interface {
	GetDistanceMatrix(ctx context.Context, locations []models.Location) (*MatrixResult, error)
	GetRouteGeometry(ctx context.Context, locations []models.Location, route []int) (*RouteGeometry, error)
}

// PairCache persists directed distance pairs between requests.
// *sqlite.Store implements it.
type PairCache interface {
	Get(ctx context.Context, origin, dest models.Coordinates) (*models.DistanceCacheEntry, error)
	SetBatch(ctx context.Context, entries []models.DistanceCacheEntry) error
}

// ErrProviderUnavailable is the recoverable failure family: missing
// credentials, exhausted quota, network errors, malformed responses. The
// dispatcher catches it and falls back to Haversine distances.
type ErrProviderUnavailable struct {
	Reason string
}

func (e *ErrProviderUnavailable) Error() string {
	return fmt.Sprintf("road distance provider unavailable: %s", e.Reason)
}

// Config carries per-request provider configuration. The API key is
// injected here rather than read from process-global state so its lifecycle
// is scoped to the caller.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to the public ORS endpoint
	Timeout time.Duration // per-request HTTP timeout
}

type orsProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      PairCache
}

// NewORSProvider creates an OpenRouteService matrix provider. cache may be
// nil to disable persistence.
func NewORSProvider(cfg Config, cache PairCache) MatrixProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &orsProvider{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

type orsMatrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

func (p *orsProvider) GetDistanceMatrix(ctx context.Context, locations []models.Location) (*MatrixResult, error) {
	if p.apiKey == "" {
		return nil, &ErrProviderUnavailable{Reason: "API key not configured"}
	}
	if len(locations) < 2 {
		return nil, &ErrProviderUnavailable{Reason: "at least 2 locations required"}
	}
	if len(locations) > MaxLocations {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("maximum %d locations per request", MaxLocations)}
	}

	if cached := p.matrixFromCache(ctx, locations); cached != nil {
		return cached, nil
	}

	// ORS expects [longitude, latitude].
	coords := make([][]float64, len(locations))
	for i, loc := range locations {
		coords[i] = []float64{loc.Lng, loc.Lat}
	}
	body := map[string]any{
		"locations": coords,
		"metrics":   []string{"distance", "duration"},
		"units":     "km",
	}

	log.Printf("[ORS] Requesting %dx%d distance matrix...", len(locations), len(locations))
	raw, err := p.post(ctx, "/v2/matrix/driving-car", body)
	if err != nil {
		return nil, err
	}

	var resp orsMatrixResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("invalid response: %v", err)}
	}
	if len(resp.Distances) != len(locations) {
		return nil, &ErrProviderUnavailable{Reason: "response matrix has wrong dimensions"}
	}

	result := &MatrixResult{
		Distances: denseMatrix(resp.Distances, len(locations), 1),
		Durations: denseMatrix(resp.Durations, len(locations), 1.0/60), // seconds -> minutes
	}

	p.storeInCache(ctx, locations, result)
	log.Printf("[ORS] Matrix obtained: %dx%d", len(locations), len(locations))
	return result, nil
}

type orsDirectionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// GetRouteGeometry fetches the drivable polyline for an already-optimized
// route. route holds indices into locations, depot-closed.
func (p *orsProvider) GetRouteGeometry(ctx context.Context, locations []models.Location, route []int) (*RouteGeometry, error) {
	if p.apiKey == "" {
		return nil, &ErrProviderUnavailable{Reason: "API key not configured"}
	}
	if len(route) < 2 {
		return nil, &ErrProviderUnavailable{Reason: "route too short for geometry"}
	}

	coords := make([][]float64, len(route))
	for i, idx := range route {
		if idx < 0 || idx >= len(locations) {
			return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("route index %d out of range", idx)}
		}
		coords[i] = []float64{locations[idx].Lng, locations[idx].Lat}
	}

	log.Printf("[ORS] Requesting route geometry for %d waypoints...", len(coords))
	raw, err := p.post(ctx, "/v2/directions/driving-car/geojson", map[string]any{"coordinates": coords})
	if err != nil {
		return nil, err
	}

	var resp orsDirectionsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("invalid response: %v", err)}
	}
	if len(resp.Features) == 0 {
		return nil, &ErrProviderUnavailable{Reason: "response has no route features"}
	}

	feature := resp.Features[0]
	return &RouteGeometry{
		DistanceKm:  feature.Properties.Summary.Distance / 1000,
		DurationMin: feature.Properties.Summary.Duration / 60,
		Geometry:    feature.Geometry.Coordinates,
	}, nil
}

func (p *orsProvider) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, &ErrProviderUnavailable{Reason: "API key invalid or expired"}
	case http.StatusTooManyRequests:
		return nil, &ErrProviderUnavailable{Reason: "request quota exceeded"}
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, snippet)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrProviderUnavailable{Reason: fmt.Sprintf("read response: %v", err)}
	}
	return raw, nil
}

// denseMatrix converts the ORS response (null for unreachable pairs) to a
// dense matrix, scaling every entry.
func denseMatrix(rows [][]*float64, n int, scale float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		if i >= len(rows) {
			continue
		}
		for j := 0; j < n && j < len(rows[i]); j++ {
			if rows[i][j] != nil {
				out[i][j] = *rows[i][j] * scale
			}
		}
	}
	return out
}

// matrixFromCache rebuilds the full matrix when every off-diagonal pair is
// cached; a single miss means one API call fetches the whole matrix anyway.
func (p *orsProvider) matrixFromCache(ctx context.Context, locations []models.Location) *MatrixResult {
	if p.cache == nil {
		return nil
	}
	n := len(locations)
	result := &MatrixResult{
		Distances: make([][]float64, n),
		Durations: make([][]float64, n),
	}
	for i := range result.Distances {
		result.Distances[i] = make([]float64, n)
		result.Durations[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			entry, err := p.cache.Get(ctx, locations[i].GetCoords(), locations[j].GetCoords())
			if err != nil || entry == nil {
				return nil
			}
			result.Distances[i][j] = entry.DistanceKm
			result.Durations[i][j] = entry.DurationMin
		}
	}
	log.Printf("[CACHE] Full %dx%d matrix served from cache", n, n)
	return result
}

func (p *orsProvider) storeInCache(ctx context.Context, locations []models.Location, result *MatrixResult) {
	if p.cache == nil {
		return
	}
	n := len(locations)
	entries := make([]models.DistanceCacheEntry, 0, n*n-n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			entries = append(entries, models.DistanceCacheEntry{
				Origin:      locations[i].GetCoords(),
				Destination: locations[j].GetCoords(),
				DistanceKm:  result.Distances[i][j],
				DurationMin: result.Durations[i][j],
			})
		}
	}
	if err := p.cache.SetBatch(ctx, entries); err != nil {
		log.Printf("[CACHE] Failed to store %d pairs: %v", len(entries), err)
	}
}
