package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quantum-logistics-router/internal/models"
)

func TestHaversineKnownDistance(t *testing.T) {
	// São Paulo to Rio de Janeiro, straight line.
	d := Haversine(-23.5505, -46.6333, -22.9068, -43.1729)

	assert.InDelta(t, 360.7, d, 1.0)
}

func TestHaversineSamePoint(t *testing.T) {
	d := Haversine(-23.5505, -46.6333, -23.5505, -46.6333)

	assert.Equal(t, 0.0, d)
}

func TestHaversineOneDegreeAtEquator(t *testing.T) {
	d := Haversine(0, 0, 0, 1)

	assert.InDelta(t, 111.19, d, 0.01)
}

func TestHaversineSymmetric(t *testing.T) {
	ab := Haversine(-23.5505, -46.6333, -22.9068, -43.1729)
	ba := Haversine(-22.9068, -43.1729, -23.5505, -46.6333)

	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistanceBetweenLocations(t *testing.T) {
	a := models.Location{ID: 0, Name: "São Paulo", Lat: -23.5505, Lng: -46.6333}
	b := models.Location{ID: 1, Name: "Rio de Janeiro", Lat: -22.9068, Lng: -43.1729}

	assert.InDelta(t, 360.7, Distance(a, b), 1.0)
}
