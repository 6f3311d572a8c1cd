// Package classical implements the classical TSP strategies: exact
// brute-force search, the nearest-neighbor heuristic, and a
// Christofides-style approximation for larger metric instances.
//
// All solvers share one contract: input is a distance matrix, output is a
// closed tour (length N+1, depot index 0 at both ends) and its total
// distance. Wall-clock timing is the dispatcher's job.
package classical

import (
	"fmt"

	"quantum-logistics-router/internal/geo"
)

// ErrBadInstance is returned for instances no tour can be built on
type ErrBadInstance struct {
	Reason string
}

func (e *ErrBadInstance) Error() string {
	return fmt.Sprintf("classical solver: %s", e.Reason)
}

func validate(dist geo.Matrix) error {
	if dist.Len() < 2 {
		return &ErrBadInstance{Reason: fmt.Sprintf("need at least 2 points, got %d", dist.Len())}
	}
	for i := range dist {
		if len(dist[i]) != dist.Len() {
			return &ErrBadInstance{Reason: "matrix is not square"}
		}
	}
	return nil
}
