package geo

import (
	"fmt"
	"math"

	"quantum-logistics-router/internal/models"
)

// symmetryEps is the tolerance used when checking D[i][j] == D[j][i].
const symmetryEps = 1e-9

// Matrix is a dense N x N distance matrix in kilometers. D[i][i] is always
// zero. Haversine-built matrices are symmetric; matrices built from
// directional road data may be asymmetric and are consumed as-is, so solver
// code must always read D[from][to].
type Matrix [][]float64

// ErrMatrixInvalid is returned when a matrix violates its shape contract
type ErrMatrixInvalid struct {
	Reason string
}

func (e *ErrMatrixInvalid) Error() string {
	return fmt.Sprintf("invalid distance matrix: %s", e.Reason)
}

// ErrInvalidLocation is returned for out-of-range coordinates
type ErrInvalidLocation struct {
	Index int
	Lat   float64
	Lng   float64
}

func (e *ErrInvalidLocation) Error() string {
	return fmt.Sprintf("location %d has invalid coordinates (%.4f, %.4f)", e.Index, e.Lat, e.Lng)
}

// NewHaversineMatrix builds the pairwise great-circle distance matrix for a
// list of locations. Always succeeds for valid coordinates; the result is
// symmetric with a zero diagonal. A single location yields a 1x1 zero matrix.
func NewHaversineMatrix(locations []models.Location) (Matrix, error) {
	if len(locations) == 0 {
		return nil, &ErrMatrixInvalid{Reason: "no locations"}
	}
	for i := range locations {
		if !locations[i].ValidCoordinates() {
			return nil, &ErrInvalidLocation{Index: i, Lat: locations[i].Lat, Lng: locations[i].Lng}
		}
	}

	n := len(locations)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(locations[i], locations[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m, nil
}

// NewMatrix wraps externally supplied distances (road data). The matrix must
// be square and non-negative with a zero diagonal; symmetry is NOT required
// since directional road distances legitimately differ per direction.
func NewMatrix(data [][]float64) (Matrix, error) {
	n := len(data)
	if n == 0 {
		return nil, &ErrMatrixInvalid{Reason: "empty matrix"}
	}
	for i := range data {
		if len(data[i]) != n {
			return nil, &ErrMatrixInvalid{Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(data[i]), n)}
		}
		for j := range data[i] {
			v := data[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, &ErrMatrixInvalid{Reason: fmt.Sprintf("entry (%d,%d) = %v", i, j, v)}
			}
		}
		if data[i][i] != 0 {
			return nil, &ErrMatrixInvalid{Reason: fmt.Sprintf("nonzero diagonal at %d", i)}
		}
	}
	return Matrix(data), nil
}

// Len returns the matrix dimension.
func (m Matrix) Len() int { return len(m) }

// IsSymmetric reports whether D[i][j] == D[j][i] within tolerance.
func (m Matrix) IsSymmetric() bool {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if math.Abs(m[i][j]-m[j][i]) > symmetryEps {
				return false
			}
		}
	}
	return true
}

// MaxEntry returns the largest distance in the matrix.
func (m Matrix) MaxEntry() float64 {
	max := 0.0
	for i := range m {
		for j := range m[i] {
			if m[i][j] > max {
				max = m[i][j]
			}
		}
	}
	return max
}

// Sum returns the total of all entries. Used to size QUBO penalties so that
// any constraint violation costs more than the best feasible tour can save.
func (m Matrix) Sum() float64 {
	total := 0.0
	for i := range m {
		for j := range m[i] {
			total += m[i][j]
		}
	}
	return total
}

// RouteDistance sums D over consecutive pairs of a route. The route is read
// directionally, so asymmetric matrices are handled correctly.
func RouteDistance(m Matrix, route []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		total += m[route[i]][route[i+1]]
	}
	return total
}
