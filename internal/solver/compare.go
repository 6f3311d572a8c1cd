package solver

import (
	"context"
	"sync"
	"time"

	"quantum-logistics-router/internal/models"
)

// Compare runs a classical and a quantum method over the identical point
// set and distance matrix and derives the speedup ratio and distance delta.
// The point count must fit the quantum cap; larger sets are rejected rather
// than silently running only the classical side.
func (s *Solver) Compare(ctx context.Context, req Request, classicalMethod, quantumMethod models.Method) (models.ComparisonResult, error) {
	if !quantumMethod.IsQuantum() {
		return models.ComparisonResult{}, &ErrBadRequest{Reason: "comparison requires a quantum method"}
	}
	if classicalMethod.IsQuantum() {
		return models.ComparisonResult{}, &ErrBadRequest{Reason: "comparison requires a classical method"}
	}
	req.Method = quantumMethod
	if err := validateRequest(req); err != nil {
		return models.ComparisonResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	mats, err := s.buildMatrices(ctx, req)
	if err != nil {
		return models.ComparisonResult{}, err
	}

	// Both sides are independent and CPU-bound; run them concurrently and
	// aggregate after both finish.
	var result models.ComparisonResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Classical = s.timedSolve(ctx, classicalMethod, mats)
	}()
	go func() {
		defer wg.Done()
		result.Quantum = s.timedSolve(ctx, quantumMethod, mats)
	}()
	wg.Wait()

	if result.Classical.Success && result.Quantum.Success {
		if result.Classical.TimeMs > 0 {
			result.SpeedupRatio = result.Quantum.TimeMs / result.Classical.TimeMs
		}
		result.DistanceDeltaKm = result.Classical.TotalDistanceKm - result.Quantum.TotalDistanceKm
	}
	return result, nil
}

// timedSolve wraps solveOnMatrix with wall-clock measurement around the full
// side of a comparison, including any degradation fallback.
func (s *Solver) timedSolve(ctx context.Context, method models.Method, mats matrices) models.SolveResult {
	start := time.Now()
	result := s.solveOnMatrix(ctx, method, mats)
	result.TimeMs = float64(time.Since(start).Nanoseconds()) / 1e6
	result.System = systemInfo()
	return result
}
