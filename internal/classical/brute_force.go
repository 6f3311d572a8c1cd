package classical

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"quantum-logistics-router/internal/geo"
	"quantum-logistics-router/internal/models"
)

// ctxCheckInterval bounds how many permutations are scored between
// context-deadline checks.
const ctxCheckInterval = 1024

// BruteForce enumerates all (N-1)! permutations of the non-depot cities and
// returns the global minimum closed tour. Guaranteed optimal and
// deterministic. The factorial blowup makes it practical only up to
// models.MaxPointsBruteForce points; larger instances are rejected.
func BruteForce(ctx context.Context, dist geo.Matrix) ([]int, float64, error) {
	if err := validate(dist); err != nil {
		return nil, 0, err
	}
	n := dist.Len()
	if n > models.MaxPointsBruteForce {
		return nil, 0, &ErrBadInstance{
			Reason: fmt.Sprintf("brute force limited to %d points, got %d", models.MaxPointsBruteForce, n),
		}
	}

	// Permutations of the non-depot cities 1..n-1, generated as index
	// permutations of size n-1 and shifted by one.
	perms := combin.Permutations(n-1, n-1)

	route := make([]int, n+1)
	best := make([]int, n+1)
	bestDist := -1.0

	for k, perm := range perms {
		if k%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, fmt.Errorf("brute force aborted: %w", err)
			}
		}

		route[0] = 0
		for i, c := range perm {
			route[i+1] = c + 1
		}
		route[n] = 0

		d := geo.RouteDistance(dist, route)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			copy(best, route)
		}
	}

	return best, bestDist, nil
}
