// Package solver dispatches solve requests to the classical and quantum
// pipelines, builds the distance matrix for each request, and normalizes
// every outcome into a SolveResult.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quantum-logistics-router/internal/classical"
	"quantum-logistics-router/internal/distance"
	"quantum-logistics-router/internal/geo"
	"quantum-logistics-router/internal/models"
	"quantum-logistics-router/internal/quantum"
	"quantum-logistics-router/internal/qubo"
)

// DefaultTimeout bounds a single solve, covering the brute-force and
// quantum-exact worst cases at their capacity limits.
const DefaultTimeout = 30 * time.Second

// ErrCapacity is returned when a request exceeds the chosen method's point
// limit. It is checked before any matrix or model allocation.
type ErrCapacity struct {
	Points int
	Limit  int
	Method models.Method
}

func (e *ErrCapacity) Error() string {
	if e.Method.IsQuantum() {
		return fmt.Sprintf("quantum mode limited to %d points due to exponential RAM memory growth (2^(n²)), got %d", e.Limit, e.Points)
	}
	return fmt.Sprintf("%s limited to %d points, got %d", e.Method, e.Limit, e.Points)
}

// ErrBadRequest covers malformed solve input: too few points, invalid
// coordinates, non-contiguous IDs.
type ErrBadRequest struct {
	Reason string
}

func (e *ErrBadRequest) Error() string {
	return "invalid solve request: " + e.Reason
}

// Request is one solve invocation.
type Request struct {
	Locations []models.Location
	Method    models.Method
	// UseRealRoads asks for road distances; on provider failure the solve
	// degrades to great-circle distances instead of failing.
	UseRealRoads bool
	// IncludeGeometry additionally fetches the drivable polyline for the
	// optimized route (only meaningful with UseRealRoads).
	IncludeGeometry bool
}

// Solver routes requests to the concrete algorithms. Safe for concurrent
// use; each solve owns its matrix and model.
type Solver struct {
	provider distance.MatrixProvider // nil disables road distances
	timeout  time.Duration
}

// New creates a dispatcher. provider may be nil when no road-distance
// backend is configured; timeout <= 0 selects DefaultTimeout.
func New(provider distance.MatrixProvider, timeout time.Duration) *Solver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Solver{provider: provider, timeout: timeout}
}

// RoadRoutingAvailable reports whether real-road distances can be requested.
func (s *Solver) RoadRoutingAvailable() bool {
	return s.provider != nil
}

// AutoClassical picks the classical method for a point count: exhaustive
// search while feasible, the Christofides-style approximation beyond.
func AutoClassical(points int) models.Method {
	if points <= models.MaxPointsBruteForce {
		return models.BruteForce
	}
	return models.GraphApprox
}

func validateRequest(req Request) error {
	if len(req.Locations) < 2 {
		return &ErrBadRequest{Reason: "at least 2 locations required"}
	}
	for i := range req.Locations {
		if !req.Locations[i].ValidCoordinates() {
			return &ErrBadRequest{Reason: fmt.Sprintf("location %d has out-of-range coordinates", i)}
		}
	}
	if limit := req.Method.MaxPoints(); limit == 0 || len(req.Locations) > limit {
		return &ErrCapacity{Points: len(req.Locations), Limit: limit, Method: req.Method}
	}
	return nil
}

// Solve runs one request end to end. A non-nil error means the request was
// rejected (validation or capacity) and no computation ran; every other
// outcome, including degraded ones, is a result with Success=true.
func (s *Solver) Solve(ctx context.Context, req Request) (models.SolveResult, error) {
	if err := validateRequest(req); err != nil {
		return models.SolveResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	mats, err := s.buildMatrices(ctx, req)
	if err != nil {
		return models.SolveResult{}, err
	}
	result := s.solveOnMatrix(ctx, req.Method, mats)
	if !result.Success {
		return result, nil
	}

	if mats.durations != nil {
		total := 0.0
		for i := 0; i+1 < len(result.Route); i++ {
			total += mats.durations[result.Route[i]][result.Route[i+1]]
		}
		result.TotalDurationMin = &total
	}

	if req.IncludeGeometry && mats.usedRealRoads && s.provider != nil {
		geom, err := s.provider.GetRouteGeometry(ctx, req.Locations, result.Route)
		if err != nil {
			log.Printf("[SOLVER] Route geometry unavailable: %v", err)
		} else {
			result.RouteGeometry = geom.Geometry
			result.TotalDurationMin = &geom.DurationMin
		}
	}

	result.System = systemInfo()
	return result, nil
}

// matrices bundles the distance matrix with the optional duration matrix
// from the same road-distance response.
type matrices struct {
	dist          geo.Matrix
	durations     [][]float64
	usedRealRoads bool
}

// buildMatrices produces the distance matrix for a request. Road-distance
// failures are recoverable and fall back to Haversine; a Haversine failure
// means the input itself is bad.
func (s *Solver) buildMatrices(ctx context.Context, req Request) (matrices, error) {
	if req.UseRealRoads && s.provider != nil {
		road, err := s.provider.GetDistanceMatrix(ctx, req.Locations)
		if err == nil {
			m, merr := geo.NewMatrix(road.Distances)
			if merr == nil {
				return matrices{dist: m, durations: road.Durations, usedRealRoads: true}, nil
			}
			err = merr
		}
		log.Printf("[SOLVER] Road distances unavailable, falling back to Haversine: %v", err)
	} else if req.UseRealRoads {
		log.Printf("[SOLVER] Road distances requested but no provider configured, using Haversine")
	}

	m, err := geo.NewHaversineMatrix(req.Locations)
	if err != nil {
		return matrices{}, &ErrBadRequest{Reason: err.Error()}
	}
	return matrices{dist: m}, nil
}

// solveOnMatrix runs the chosen method over an already-built matrix and
// packages the outcome. Quantum infeasibility degrades to a classical
// nearest-neighbor tour so the caller always receives a usable route.
func (s *Solver) solveOnMatrix(ctx context.Context, method models.Method, mats matrices) models.SolveResult {
	start := time.Now()

	var (
		route []int
		err   error
	)
	switch method {
	case models.BruteForce:
		route, _, err = classical.BruteForce(ctx, mats.dist)
	case models.NearestNeighbor:
		route, _, err = classical.NearestNeighbor(ctx, mats.dist)
	case models.GraphApprox:
		route, _, err = classical.Christofides(ctx, mats.dist)
	case models.QuantumExact, models.QuantumVariational:
		route, err = s.solveQuantum(ctx, method, mats.dist)
	default:
		err = fmt.Errorf("unknown method: %v", method)
	}

	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6

	if errors.Is(err, qubo.ErrInfeasibleDecoding) {
		log.Printf("[SOLVER] %s produced an unrepairable assignment, substituting nearest neighbor", method)
		fallback := s.solveOnMatrix(ctx, models.NearestNeighbor, mats)
		fallback.DegradedFrom = method.String()
		return fallback
	}
	if err != nil {
		return models.SolveResult{
			Method:        method.String(),
			TimeMs:        elapsed,
			UsedRealRoads: mats.usedRealRoads,
			Error:         err.Error(),
		}
	}

	return models.SolveResult{
		Route:           route,
		TotalDistanceKm: geo.RouteDistance(mats.dist, route),
		TimeMs:          elapsed,
		Method:          method.String(),
		Success:         true,
		UsedRealRoads:   mats.usedRealRoads,
	}
}

func (s *Solver) solveQuantum(ctx context.Context, method models.Method, dist geo.Matrix) ([]int, error) {
	model, err := qubo.Build(dist, 0)
	if err != nil {
		return nil, err
	}
	var route []int
	var repaired bool
	if method == models.QuantumExact {
		route, repaired, err = quantum.SolveExact(ctx, model)
	} else {
		route, repaired, err = quantum.SolveVariational(ctx, model, time.Now().UnixNano())
	}
	if err != nil {
		return nil, err
	}
	if repaired {
		log.Printf("[SOLVER] %s assignment repaired into a valid tour", method)
	}
	return route, nil
}
