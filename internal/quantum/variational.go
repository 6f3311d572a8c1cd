package quantum

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"quantum-logistics-router/internal/qubo"
)

// Variational loop budget. Nelder-Mead on the n*n angle parameters; tiny
// instances converge in well under these limits.
const (
	variationalIterations  = 600
	variationalEvaluations = 5000
)

// SolveVariational runs a hybrid variational loop: a product ansatz of RY
// rotations (one angle per qubit, activation probability sin^2(theta/2)),
// whose expected Hamiltonian energy has a closed form over the QUBO
// coefficients, minimized by a classical Nelder-Mead optimizer. The final
// parameters are sampled into their most probable basis state and decoded
// like any measurement, including the repair path — the optimizer may stop
// at a local minimum whose bitstring violates the tour constraints.
//
// seed makes a run reproducible; the same seed yields the same tour.
func SolveVariational(ctx context.Context, model *qubo.Model, seed int64) (route []int, repaired bool, err error) {
	if err := checkCapacity(model.N); err != nil {
		return nil, false, err
	}
	if cerr := ctx.Err(); cerr != nil {
		return nil, false, fmt.Errorf("variational solver aborted: %w", cerr)
	}

	nq := model.NumVars

	// Expected energy of the product distribution p_v = sin^2(theta_v / 2):
	// E = offset + sum_v linear_v p_v + sum_{a<b} quad_ab p_a p_b.
	expectation := func(theta []float64) float64 {
		p := make([]float64, nq)
		for v := range theta {
			s := math.Sin(theta[v] / 2)
			p[v] = s * s
		}
		e := model.Offset
		for v := 0; v < nq; v++ {
			e += model.Linear[v] * p[v]
		}
		for pair, c := range model.Quad {
			e += c * p[pair.A] * p[pair.B]
		}
		return e
	}

	// Start near the uniform superposition (theta = pi/2, p = 1/2) with a
	// small seeded perturbation to break the permutation symmetry of the
	// model; an exactly uniform start is a saddle point.
	rng := rand.New(rand.NewSource(seed))
	x0 := make([]float64, nq)
	for v := range x0 {
		x0[v] = math.Pi/2 + (rng.Float64()-0.5)*0.2
	}

	problem := optimize.Problem{Func: expectation}
	settings := &optimize.Settings{
		MajorIterations: variationalIterations,
		FuncEvaluations: variationalEvaluations,
	}

	result, optErr := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if result == nil {
		return nil, false, fmt.Errorf("variational optimization failed: %w", optErr)
	}

	// Measure: take the most probable basis state of the product ansatz.
	assignment := make([]bool, nq)
	for v := range result.X {
		s := math.Sin(result.X[v] / 2)
		assignment[v] = s*s > 0.5
	}

	return model.Decode(assignment)
}
