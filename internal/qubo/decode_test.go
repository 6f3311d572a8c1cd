package qubo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-logistics-router/internal/geo"
)

func fourCityModel(t *testing.T) *Model {
	t.Helper()
	dist, err := geo.NewMatrix([][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)
	model, err := Build(dist, 0)
	require.NoError(t, err)
	return model
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	model := fourCityModel(t)
	tour := []int{0, 2, 1, 3, 0}

	route, err := model.DecodeStrict(model.EncodeTour(tour))

	require.NoError(t, err)
	assert.Equal(t, tour, route)
}

func TestDecodeRotatesToDepot(t *testing.T) {
	model := fourCityModel(t)

	// Visiting order 2,3,0,1 is the same cycle starting elsewhere.
	route, err := model.DecodeStrict(model.EncodeTour([]int{2, 3, 0, 1, 2}))

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, route)
}

func TestDecodeFeasibleNotRepaired(t *testing.T) {
	model := fourCityModel(t)

	route, repaired, err := model.Decode(model.EncodeTour([]int{0, 3, 1, 2, 0}))

	require.NoError(t, err)
	assert.False(t, repaired)
	assert.Equal(t, []int{0, 3, 1, 2, 0}, route)
}

func TestDecodeStrictRejectsDoubleBooking(t *testing.T) {
	model := fourCityModel(t)

	bits := model.EncodeTour([]int{0, 1, 2, 3, 0})
	bits[model.VarIndex(3, 1)] = true // second city in slot 1

	_, err := model.DecodeStrict(bits)

	assert.ErrorIs(t, err, ErrInfeasibleDecoding)
}

func TestDecodeRepairsDoubleBooking(t *testing.T) {
	model := fourCityModel(t)

	bits := model.EncodeTour([]int{0, 1, 2, 3, 0})
	bits[model.VarIndex(3, 1)] = true

	route, repaired, err := model.Decode(bits)

	require.NoError(t, err)
	assert.True(t, repaired)
	assertClosedTour(t, route, model.N)
}

func TestDecodeRepairsMissingSlot(t *testing.T) {
	model := fourCityModel(t)

	bits := model.EncodeTour([]int{0, 1, 2, 3, 0})
	bits[model.VarIndex(2, 2)] = false // slot 2 left empty

	route, repaired, err := model.Decode(bits)

	require.NoError(t, err)
	assert.True(t, repaired)
	assertClosedTour(t, route, model.N)
	// The untouched assignments survive repair.
	assert.Equal(t, 0, route[0])
	assert.Equal(t, 1, route[1])
	assert.Equal(t, 3, route[3])
}

func TestDecodeAllZerosUnrepairable(t *testing.T) {
	model := fourCityModel(t)

	_, _, err := model.Decode(make([]bool, model.NumVars))

	assert.ErrorIs(t, err, ErrInfeasibleDecoding)
}

func TestDecodeRepairDeterministic(t *testing.T) {
	model := fourCityModel(t)

	bits := make([]bool, model.NumVars)
	bits[model.VarIndex(1, 0)] = true
	bits[model.VarIndex(2, 0)] = true // ambiguous slot 0, nothing else set

	first, repaired, err := model.Decode(bits)
	require.NoError(t, err)
	assert.True(t, repaired)

	second, _, err := model.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assertClosedTour(t, first, model.N)
}

// assertClosedTour checks the permutation invariant: length n+1, depot at
// both ends, every city exactly once.
func assertClosedTour(t *testing.T, route []int, n int) {
	t.Helper()
	require.Len(t, route, n+1)
	assert.Equal(t, 0, route[0])
	assert.Equal(t, 0, route[n])
	seen := make([]bool, n)
	for _, c := range route[:n] {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, n)
		assert.False(t, seen[c], "city %d visited twice", c)
		seen[c] = true
	}
}
