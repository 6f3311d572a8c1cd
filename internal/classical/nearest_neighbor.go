package classical

import (
	"context"

	"quantum-logistics-router/internal/geo"
)

// NearestNeighbor starts at the depot and repeatedly moves to the closest
// unvisited city, then returns to the depot. O(N^2); deterministic for a
// given matrix, with ties broken by the lowest city index. Not guaranteed
// optimal.
func NearestNeighbor(ctx context.Context, dist geo.Matrix) ([]int, float64, error) {
	if err := validate(dist); err != nil {
		return nil, 0, err
	}
	n := dist.Len()

	route := make([]int, 0, n+1)
	visited := make([]bool, n)

	current := 0
	route = append(route, 0)
	visited[0] = true

	for len(route) < n {
		nearest := -1
		nearestDist := -1.0
		for city := 1; city < n; city++ {
			if visited[city] {
				continue
			}
			if nearest < 0 || dist[current][city] < nearestDist {
				nearest = city
				nearestDist = dist[current][city]
			}
		}
		route = append(route, nearest)
		visited[nearest] = true
		current = nearest
	}

	route = append(route, 0)
	return route, geo.RouteDistance(dist, route), nil
}
