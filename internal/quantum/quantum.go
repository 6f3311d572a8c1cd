// Package quantum evaluates the TSP QUBO the way a simulated quantum
// backend would: either by exact minimum-eigenvalue search over the full
// Hamiltonian, or by a variational ansatz whose parameters a classical
// optimizer tunes against the expected energy.
//
// The QUBO Hamiltonian is diagonal in the computational basis, so "the full
// Hamiltonian over 2^(n*n) basis states" is a diagonal of 2^(n*n) energies.
// That exponent is the system's scalability wall: n=4 needs 2^16 entries
// (~512KB), n=5 already 2^25 (~256MB), n=6 is out of reach. The point cap is
// therefore checked before any allocation.
package quantum

import (
	"fmt"

	"quantum-logistics-router/internal/models"
)

// ErrPointCapacity is returned when an instance exceeds the quantum cap.
// It is raised before any Hamiltonian memory is allocated.
type ErrPointCapacity struct {
	Points int
	Limit  int
}

func (e *ErrPointCapacity) Error() string {
	qubits := e.Points * e.Points
	return fmt.Sprintf(
		"quantum solver limited to %d points (got %d): evaluation needs 2^%d diagonal elements",
		e.Limit, e.Points, qubits,
	)
}

func checkCapacity(n int) error {
	if n > models.MaxPointsQuantum {
		return &ErrPointCapacity{Points: n, Limit: models.MaxPointsQuantum}
	}
	return nil
}
