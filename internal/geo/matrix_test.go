package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-logistics-router/internal/models"
)

func unitSquareLocations() []models.Location {
	return []models.Location{
		{ID: 0, Name: "Depot", Lat: 0, Lng: 0},
		{ID: 1, Name: "A", Lat: 0, Lng: 1},
		{ID: 2, Name: "B", Lat: 1, Lng: 1},
		{ID: 3, Name: "C", Lat: 1, Lng: 0},
	}
}

func TestNewHaversineMatrixShape(t *testing.T) {
	m, err := NewHaversineMatrix(unitSquareLocations())
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, m[i][i])
	}
	assert.True(t, m.IsSymmetric())
}

func TestNewHaversineMatrixRejectsInvalidCoordinates(t *testing.T) {
	locations := []models.Location{
		{ID: 0, Lat: 0, Lng: 0},
		{ID: 1, Lat: 95, Lng: 0},
	}

	_, err := NewHaversineMatrix(locations)

	require.Error(t, err)
	var invalidErr *ErrInvalidLocation
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 1, invalidErr.Index)
}

func TestNewHaversineMatrixRejectsEmpty(t *testing.T) {
	_, err := NewHaversineMatrix(nil)

	assert.Error(t, err)
}

func TestNewMatrixValidation(t *testing.T) {
	_, err := NewMatrix([][]float64{{0, 1}, {1}})
	assert.Error(t, err)

	_, err = NewMatrix([][]float64{{0, -1}, {1, 0}})
	assert.Error(t, err)

	_, err = NewMatrix([][]float64{{1, 2}, {2, 0}})
	assert.Error(t, err)

	_, err = NewMatrix(nil)
	assert.Error(t, err)
}

func TestNewMatrixAllowsAsymmetry(t *testing.T) {
	// Directional road distances: one-way streets make D[0][1] != D[1][0].
	m, err := NewMatrix([][]float64{
		{0, 5.2},
		{4.8, 0},
	})

	require.NoError(t, err)
	assert.False(t, m.IsSymmetric())
	assert.Equal(t, 5.2, m[0][1])
	assert.Equal(t, 4.8, m[1][0])
}

func TestRouteDistanceDirectional(t *testing.T) {
	m, err := NewMatrix([][]float64{
		{0, 1, 10},
		{10, 0, 1},
		{1, 10, 0},
	})
	require.NoError(t, err)

	forward := RouteDistance(m, []int{0, 1, 2, 0})
	backward := RouteDistance(m, []int{0, 2, 1, 0})

	assert.InDelta(t, 3.0, forward, 1e-9)
	assert.InDelta(t, 30.0, backward, 1e-9)
}

func TestMatrixSumAndMaxEntry(t *testing.T) {
	m, err := NewMatrix([][]float64{
		{0, 2, 3},
		{2, 0, 4},
		{3, 4, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 18.0, m.Sum())
	assert.Equal(t, 4.0, m.MaxEntry())
}

func TestUnitSquarePerimeter(t *testing.T) {
	m, err := NewHaversineMatrix(unitSquareLocations())
	require.NoError(t, err)

	perimeter := RouteDistance(m, []int{0, 1, 2, 3, 0})

	// Four ~111.19 km sides.
	assert.InDelta(t, 444.78, perimeter, 0.5)
}
