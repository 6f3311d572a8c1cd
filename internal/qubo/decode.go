package qubo

import "errors"

// ErrInfeasibleDecoding is returned when a measured bitstring cannot be
// turned into a valid tour even after repair. The dispatcher substitutes a
// classical result in that case.
var ErrInfeasibleDecoding = errors.New("qubo: decoded assignment violates tour constraints and is unrepairable")

// EncodeTour converts a closed tour (length N+1, depot at both ends) into a
// binary assignment: the city at position t activates x[city,t].
func (m *Model) EncodeTour(route []int) []bool {
	bits := make([]bool, m.NumVars)
	for t := 0; t < m.N && t < len(route); t++ {
		bits[m.VarIndex(route[t], t)] = true
	}
	return bits
}

// DecodeStrict reads a feasible assignment back into a closed tour: every
// timeslot must have exactly one active city and every city must appear
// exactly once. The tour is rotated so the depot (city 0) is first, then
// closed. Returns ErrInfeasibleDecoding when the assignment violates either
// constraint family.
func (m *Model) DecodeStrict(bits []bool) ([]int, error) {
	order := make([]int, m.N)
	seen := make([]bool, m.N)
	for t := 0; t < m.N; t++ {
		city := -1
		for i := 0; i < m.N; i++ {
			if bits[m.VarIndex(i, t)] {
				if city >= 0 {
					return nil, ErrInfeasibleDecoding
				}
				city = i
			}
		}
		if city < 0 || seen[city] {
			return nil, ErrInfeasibleDecoding
		}
		order[t] = city
		seen[city] = true
	}
	return closeTourAtDepot(order), nil
}

// Decode attempts a strict decode and falls back to a deterministic greedy
// repair: each slot keeps its active city when exactly one unused city is
// active there; remaining slots are filled with unused cities in index
// order. A bitstring with no active variable carries no signal and cannot
// be repaired.
func (m *Model) Decode(bits []bool) (route []int, repaired bool, err error) {
	if route, err = m.DecodeStrict(bits); err == nil {
		return route, false, nil
	}

	anyActive := false
	for _, b := range bits {
		if b {
			anyActive = true
			break
		}
	}
	if !anyActive {
		return nil, false, ErrInfeasibleDecoding
	}

	order := make([]int, m.N)
	used := make([]bool, m.N)
	for t := range order {
		order[t] = -1
	}

	// First pass: honor unambiguous slots.
	for t := 0; t < m.N; t++ {
		candidate := -1
		count := 0
		for i := 0; i < m.N; i++ {
			if bits[m.VarIndex(i, t)] && !used[i] {
				candidate = i
				count++
			}
		}
		if count == 1 {
			order[t] = candidate
			used[candidate] = true
		}
	}
	// Second pass: among ambiguous slots, pick the lowest-index active
	// unused city.
	for t := 0; t < m.N; t++ {
		if order[t] >= 0 {
			continue
		}
		for i := 0; i < m.N; i++ {
			if bits[m.VarIndex(i, t)] && !used[i] {
				order[t] = i
				used[i] = true
				break
			}
		}
	}
	// Final pass: fill untouched slots with unused cities in index order.
	next := 0
	for t := 0; t < m.N; t++ {
		if order[t] >= 0 {
			continue
		}
		for next < m.N && used[next] {
			next++
		}
		if next == m.N {
			return nil, false, ErrInfeasibleDecoding
		}
		order[t] = next
		used[next] = true
	}

	return closeTourAtDepot(order), true, nil
}

// closeTourAtDepot rotates a visiting order so city 0 leads, then closes it.
func closeTourAtDepot(order []int) []int {
	n := len(order)
	pivot := 0
	for i, c := range order {
		if c == 0 {
			pivot = i
			break
		}
	}
	route := make([]int, n+1)
	for i := 0; i < n; i++ {
		route[i] = order[(pivot+i)%n]
	}
	route[n] = 0
	return route
}
