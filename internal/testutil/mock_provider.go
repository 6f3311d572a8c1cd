// Package testutil provides deterministic test doubles for the
// road-distance provider.
package testutil

import (
	"context"
	"math"

	"quantum-logistics-router/internal/distance"
	"quantum-logistics-router/internal/models"
)

// MatrixCall tracks one matrix request made against the mock provider.
type MatrixCall struct {
	Locations []models.Location
}

// MockMatrixProvider is a deterministic distance.MatrixProvider. It returns
// scaled Euclidean distances so tests get stable road-style matrices, and
// can be switched into a failing mode to exercise the Haversine fallback.
type MockMatrixProvider struct {
	// ScaleKm converts one degree of separation into kilometers.
	ScaleKm float64
	// SpeedKmh derives durations from distances.
	SpeedKmh float64
	// Fail makes every call return ErrProviderUnavailable.
	Fail bool
	// Asymmetry is added to every entry above the diagonal, producing a
	// directional matrix when non-zero.
	Asymmetry float64

	MatrixCalls   []MatrixCall
	GeometryCalls int
}

// NewMockMatrixProvider returns a provider with road-like defaults.
func NewMockMatrixProvider() *MockMatrixProvider {
	return &MockMatrixProvider{ScaleKm: 111, SpeedKmh: 60}
}

func (m *MockMatrixProvider) distanceKm(a, b models.Location) float64 {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * m.ScaleKm
}

// GetDistanceMatrix returns a deterministic matrix over the locations.
func (m *MockMatrixProvider) GetDistanceMatrix(ctx context.Context, locations []models.Location) (*distance.MatrixResult, error) {
	m.MatrixCalls = append(m.MatrixCalls, MatrixCall{Locations: locations})
	if m.Fail {
		return nil, &distance.ErrProviderUnavailable{Reason: "mock provider configured to fail"}
	}

	n := len(locations)
	result := &distance.MatrixResult{
		Distances: make([][]float64, n),
		Durations: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		result.Distances[i] = make([]float64, n)
		result.Durations[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := m.distanceKm(locations[i], locations[j])
			if i < j {
				d += m.Asymmetry
			}
			result.Distances[i][j] = d
			result.Durations[i][j] = d / m.SpeedKmh * 60
		}
	}
	return result, nil
}

// GetRouteGeometry returns a straight-line polyline through the route.
func (m *MockMatrixProvider) GetRouteGeometry(ctx context.Context, locations []models.Location, route []int) (*distance.RouteGeometry, error) {
	m.GeometryCalls++
	if m.Fail {
		return nil, &distance.ErrProviderUnavailable{Reason: "mock provider configured to fail"}
	}

	geom := &distance.RouteGeometry{Geometry: make([][]float64, len(route))}
	for i, idx := range route {
		geom.Geometry[i] = []float64{locations[idx].Lng, locations[idx].Lat}
		if i > 0 {
			geom.DistanceKm += m.distanceKm(locations[route[i-1]], locations[idx])
		}
	}
	geom.DurationMin = geom.DistanceKm / m.SpeedKmh * 60
	return geom, nil
}
