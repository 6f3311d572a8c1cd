package classical

import (
	"context"
	"math"

	"quantum-logistics-router/internal/geo"
)

// Christofides computes an approximate tour via the Christofides pipeline:
// minimum spanning tree, matching on odd-degree vertices, Eulerian circuit,
// shortcut to a Hamiltonian cycle, then a 2-opt polish. For metric instances
// with a true minimum-weight matching the classical bound is 1.5x optimal;
// the greedy matching used here keeps the tour valid but weakens the formal
// factor. Scales to the full classical point cap.
func Christofides(ctx context.Context, dist geo.Matrix) ([]int, float64, error) {
	if err := validate(dist); err != nil {
		return nil, 0, err
	}
	n := dist.Len()

	adj, err := minimumSpanningTree(dist)
	if err != nil {
		return nil, 0, err
	}

	// Odd-degree vertices of the MST get paired up so every vertex ends up
	// with even degree, which makes the multigraph Eulerian.
	odd := make([]int, 0, n/2+1)
	for v := 0; v < n; v++ {
		if len(adj[v])%2 == 1 {
			odd = append(odd, v)
		}
	}
	greedyMatch(odd, dist, adj)

	euler := eulerianCircuit(adj, 0)
	route := shortcutToTour(euler, n)

	route = twoOpt(ctx, dist, route)
	return route, geo.RouteDistance(dist, route), nil
}

// minimumSpanningTree runs Prim in O(n^2) over the complete graph and
// returns the tree as adjacency lists.
func minimumSpanningTree(dist geo.Matrix) ([][]int, error) {
	n := dist.Len()
	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	parent := make([]int, n)
	adj := make([][]int, n)

	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0

	for it := 0; it < n; it++ {
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			return nil, &ErrBadInstance{Reason: "matrix describes a disconnected graph"}
		}
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}
		for v := 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
				parent[v] = u
			}
		}
	}
	return adj, nil
}

// greedyMatch pairs each remaining odd-degree vertex with its nearest
// remaining partner, adding the edges to the multigraph. O(k^2).
func greedyMatch(odd []int, dist geo.Matrix, adj [][]int) {
	remaining := append([]int(nil), odd...)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		bestIdx, bestD := -1, math.Inf(1)
		for i, v := range remaining {
			if d := dist[u][v]; d < bestD {
				bestD, bestIdx = d, i
			}
		}
		v := remaining[bestIdx]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
}

// eulerianCircuit walks every edge of the undirected multigraph exactly once
// using Hierholzer's algorithm, starting and ending at start.
func eulerianCircuit(adj [][]int, start int) []int {
	local := make([][]int, len(adj))
	for u := range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var circuit []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		v := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i, x := range local[v] {
			if x == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}
	return circuit
}

// shortcutToTour skips repeated vertices in the Eulerian walk, producing a
// Hamiltonian cycle closed at the depot.
func shortcutToTour(euler []int, n int) []int {
	seen := make([]bool, n)
	route := make([]int, 0, n+1)
	for _, v := range euler {
		if !seen[v] {
			seen[v] = true
			route = append(route, v)
		}
	}
	route = append(route, route[0])
	return route
}
