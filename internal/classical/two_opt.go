package classical

import (
	"context"

	"quantum-logistics-router/internal/geo"
)

// twoOpt improves a closed tour by reversing segments whose reversal
// shortens the total distance, repeating until no improvement remains or
// the context is done. The depot at positions 0 and len-1 stays fixed.
// Assumes a symmetric matrix, which holds for the metric instances
// Christofides accepts.
func twoOpt(ctx context.Context, dist geo.Matrix, route []int) []int {
	n := len(route) - 1 // closed tour: route[n] == route[0]
	if n < 4 {
		return route
	}

	improved := true
	for improved {
		improved = false
		if ctx.Err() != nil {
			return route
		}
		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				// Edges (i-1,i) and (j,j+1) vs (i-1,j) and (i,j+1).
				current := dist[route[i-1]][route[i]] + dist[route[j]][route[j+1]]
				proposed := dist[route[i-1]][route[j]] + dist[route[i]][route[j+1]]
				if proposed < current {
					for l, r := i, j; l < r; l, r = l+1, r-1 {
						route[l], route[r] = route[r], route[l]
					}
					improved = true
				}
			}
		}
	}
	return route
}
