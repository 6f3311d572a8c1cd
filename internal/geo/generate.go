package geo

import (
	"fmt"
	"math/rand"

	"quantum-logistics-router/internal/models"
)

// Per-family limits on generated delivery points (excluding the hub). The
// quantum limit keeps the generated set within the quantum solver cap of 4
// total points.
const (
	maxGeneratedClassical = 9
	maxGeneratedQuantum   = 3
)

// ErrGenerateRoute is returned for invalid route-generation parameters
type ErrGenerateRoute struct {
	Reason string
}

func (e *ErrGenerateRoute) Error() string {
	return fmt.Sprintf("generate route: %s", e.Reason)
}

// GenerateRoute picks the city hub plus numPoints random neighborhoods and
// re-indexes them 0..numPoints so the hub is always the depot. The rng is
// injected so callers (and tests) control determinism.
func GenerateRoute(rng *rand.Rand, cityKey, algorithm string, numPoints int) ([]models.Location, error) {
	city, ok := Cities[cityKey]
	if !ok {
		return nil, &ErrGenerateRoute{Reason: fmt.Sprintf("unknown city %q", cityKey)}
	}

	switch algorithm {
	case "classical":
		if numPoints < 1 || numPoints > maxGeneratedClassical {
			return nil, &ErrGenerateRoute{Reason: fmt.Sprintf("classical: number of points must be between 1 and %d (got %d)", maxGeneratedClassical, numPoints)}
		}
	case "quantum":
		if numPoints < 1 || numPoints > maxGeneratedQuantum {
			return nil, &ErrGenerateRoute{Reason: fmt.Sprintf("quantum: number of points must be between 1 and %d (got %d)", maxGeneratedQuantum, numPoints)}
		}
	default:
		return nil, &ErrGenerateRoute{Reason: fmt.Sprintf("unknown algorithm %q", algorithm)}
	}

	neighborhoods := city.Neighborhoods()
	perm := rng.Perm(len(neighborhoods))

	route := make([]models.Location, 0, numPoints+1)
	hub := city.Hub()
	hub.ID = 0
	route = append(route, hub)
	for i := 0; i < numPoints; i++ {
		loc := neighborhoods[perm[i]]
		loc.ID = i + 1
		route = append(route, loc)
	}
	return route, nil
}
