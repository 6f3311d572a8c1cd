// Package qubo formulates the time-indexed TSP as a Quadratic Unconstrained
// Binary Optimization problem.
//
// Variables: x[city,slot] = 1 when city is visited at that timeslot. For N
// cities the model has N*N binary variables, indexed city*N + slot.
//
// The objective adds distance[i][j] * x[i,t] * x[j,t+1] for every ordered
// city pair and consecutive timeslot pair (cyclic, so slot N-1 wraps to slot
// 0 and closes the tour). The two exactly-one constraint families ("each
// city once", "one city per slot") enter as squared penalties expanded into
// linear and quadratic coefficients.
package qubo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"quantum-logistics-router/internal/geo"
)

// DefaultPenaltyFactor scales the matrix sum into the constraint penalty.
// Any single violation must cost more than the best feasible tour can save;
// the sum of all distances bounds every tour, and the factor adds headroom.
const DefaultPenaltyFactor = 2.0

// Pair identifies a quadratic term between two variables, A < B.
type Pair struct {
	A, B int
}

// Model is an immutable QUBO instance over N*N binary variables.
type Model struct {
	N       int     // number of cities (and timeslots)
	NumVars int     // N * N
	Penalty float64 // constraint penalty weight P

	Linear []float64        // per-variable coefficients, length NumVars
	Quad   map[Pair]float64 // pairwise coefficients, keys ordered A < B
	Offset float64          // constant term from penalty expansion
}

// VarIndex returns the variable index of x[city,slot].
func (m *Model) VarIndex(city, slot int) int { return city*m.N + slot }

// Build constructs the QUBO for a distance matrix. penalty <= 0 selects the
// default: DefaultPenaltyFactor times the sum of all distances. Build never
// fails for a valid matrix with N >= 2; usability of the *consumer* collapses
// beyond 4 cities, which is enforced by the quantum solver, not here.
func Build(dist geo.Matrix, penalty float64) (*Model, error) {
	n := dist.Len()
	if n < 2 {
		return nil, fmt.Errorf("qubo: need at least 2 cities, got %d", n)
	}
	if penalty <= 0 {
		penalty = DefaultPenaltyFactor * dist.Sum()
	}

	m := &Model{
		N:       n,
		NumVars: n * n,
		Penalty: penalty,
		Linear:  make([]float64, n*n),
		Quad:    make(map[Pair]float64),
	}

	// Objective: distance between consecutive slots, cyclic wraparound.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for t := 0; t < n; t++ {
				tNext := (t + 1) % n
				m.addQuad(m.VarIndex(i, t), m.VarIndex(j, tNext), dist[i][j])
			}
		}
	}

	// Constraint: each city visited exactly once.
	// P*(sum_t x[i,t] - 1)^2 expands (with x^2 = x) to
	//   -P per variable, +2P per in-row pair, +P constant.
	for i := 0; i < n; i++ {
		for t := 0; t < n; t++ {
			m.Linear[m.VarIndex(i, t)] -= penalty
			for t2 := t + 1; t2 < n; t2++ {
				m.addQuad(m.VarIndex(i, t), m.VarIndex(i, t2), 2*penalty)
			}
		}
		m.Offset += penalty
	}

	// Constraint: exactly one city per timeslot.
	for t := 0; t < n; t++ {
		for i := 0; i < n; i++ {
			m.Linear[m.VarIndex(i, t)] -= penalty
			for i2 := i + 1; i2 < n; i2++ {
				m.addQuad(m.VarIndex(i, t), m.VarIndex(i2, t), 2*penalty)
			}
		}
		m.Offset += penalty
	}

	return m, nil
}

func (m *Model) addQuad(a, b int, v float64) {
	if a > b {
		a, b = b, a
	}
	m.Quad[Pair{A: a, B: b}] += v
}

// Energy evaluates the QUBO objective for a full binary assignment.
func (m *Model) Energy(bits []bool) float64 {
	e := m.Offset
	active := make([]float64, 0, m.N)
	for v := 0; v < m.NumVars; v++ {
		if bits[v] {
			active = append(active, m.Linear[v])
		}
	}
	e += floats.Sum(active)
	for p, c := range m.Quad {
		if bits[p.A] && bits[p.B] {
			e += c
		}
	}
	return e
}
