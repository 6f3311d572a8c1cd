package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationGetCoords(t *testing.T) {
	l := Location{
		Lat: -23.5505,
		Lng: -46.6333,
	}

	coords := l.GetCoords()

	assert.Equal(t, -23.5505, coords.Lat)
	assert.Equal(t, -46.6333, coords.Lng)
}

func TestValidCoordinates(t *testing.T) {
	valid := Location{Lat: -23.5505, Lng: -46.6333}
	assert.True(t, valid.ValidCoordinates())

	badLat := Location{Lat: 91, Lng: 0}
	assert.False(t, badLat.ValidCoordinates())

	badLng := Location{Lat: 0, Lng: -181}
	assert.False(t, badLng.ValidCoordinates())
}

func TestRoundCoordinate(t *testing.T) {
	assert.Equal(t, -23.55052, RoundCoordinate(-23.550524999))
	assert.Equal(t, 46.63331, RoundCoordinate(46.633306))
	assert.Equal(t, 0.0, RoundCoordinate(0.0000049))
}

func TestMethodStringRoundTrip(t *testing.T) {
	methods := []Method{BruteForce, NearestNeighbor, GraphApprox, QuantumExact, QuantumVariational}

	for _, m := range methods {
		parsed, err := ParseMethod(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseMethodAliases(t *testing.T) {
	m, err := ParseMethod("christofides")
	assert.NoError(t, err)
	assert.Equal(t, GraphApprox, m)

	m, err = ParseMethod("quantum_qaoa")
	assert.NoError(t, err)
	assert.Equal(t, QuantumVariational, m)

	_, err = ParseMethod("simulated_annealing")
	assert.Error(t, err)
}

func TestMethodMaxPoints(t *testing.T) {
	assert.Equal(t, 8, BruteForce.MaxPoints())
	assert.Equal(t, 50, NearestNeighbor.MaxPoints())
	assert.Equal(t, 50, GraphApprox.MaxPoints())
	assert.Equal(t, 4, QuantumExact.MaxPoints())
	assert.Equal(t, 4, QuantumVariational.MaxPoints())
}

func TestMethodIsQuantum(t *testing.T) {
	assert.False(t, BruteForce.IsQuantum())
	assert.False(t, GraphApprox.IsQuantum())
	assert.True(t, QuantumExact.IsQuantum())
	assert.True(t, QuantumVariational.IsQuantum())
}
