package models

import "fmt"

// Coordinates represents a geographic point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoundCoordinate rounds a coordinate to 5 decimal places (~1m precision).
// Cache keys and same-point checks must use the same rounding.
func RoundCoordinate(v float64) float64 {
	if v < 0 {
		return float64(int(v*100000-0.5)) / 100000
	}
	return float64(int(v*100000+0.5)) / 100000
}

// Location is an identified stop on a route. IDs are 0-based and contiguous
// within a point set; ID 0 is always the depot/hub.
type Location struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lon"`
}

// GetCoords returns the coordinates of the location
func (l *Location) GetCoords() Coordinates {
	return Coordinates{Lat: l.Lat, Lng: l.Lng}
}

// ValidCoordinates reports whether the location's coordinates are in range.
func (l *Location) ValidCoordinates() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Method identifies a concrete solving strategy.
type Method int

const (
	BruteForce Method = iota
	NearestNeighbor
	GraphApprox
	QuantumExact
	QuantumVariational
)

// Capacity limits per method. These are a wire-level contract: the client UI
// encodes them, so they must not drift.
const (
	MaxPointsBruteForce = 8
	MaxPointsClassical  = 50 // road matrix API practical cap
	MaxPointsQuantum    = 4  // exact eigensolver needs 2^(n*n) diagonal entries
)

// String returns the method tag used in solve results and API payloads.
func (m Method) String() string {
	switch m {
	case BruteForce:
		return "brute_force"
	case NearestNeighbor:
		return "nearest_neighbor"
	case GraphApprox:
		return "graph_approx"
	case QuantumExact:
		return "quantum_exact"
	case QuantumVariational:
		return "quantum_variational"
	default:
		return fmt.Sprintf("unknown_method_%d", int(m))
	}
}

// ParseMethod maps a wire tag to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "brute_force":
		return BruteForce, nil
	case "nearest_neighbor":
		return NearestNeighbor, nil
	case "graph_approx", "christofides":
		return GraphApprox, nil
	case "quantum_exact":
		return QuantumExact, nil
	case "quantum_variational", "quantum_qaoa":
		return QuantumVariational, nil
	default:
		return 0, fmt.Errorf("unknown method: %q", s)
	}
}

// MaxPoints returns the largest point count the method accepts.
func (m Method) MaxPoints() int {
	switch m {
	case BruteForce:
		return MaxPointsBruteForce
	case NearestNeighbor, GraphApprox:
		return MaxPointsClassical
	case QuantumExact, QuantumVariational:
		return MaxPointsQuantum
	default:
		return 0
	}
}

// IsQuantum reports whether the method goes through the QUBO pipeline.
func (m Method) IsQuantum() bool {
	return m == QuantumExact || m == QuantumVariational
}

// SysInfo saves the basic system information attached to solve results
type SysInfo struct {
	Platform string `json:"platform,omitempty"`
	CPU      string `json:"cpu,omitempty"`
	RAM      string `json:"ram,omitempty"`
}

// SolveResult is the normalized outcome of one solve request.
// Route is a closed tour: length N+1, depot (index 0) at both ends.
type SolveResult struct {
	Route            []int       `json:"route"`
	TotalDistanceKm  float64     `json:"total_distance"`
	TimeMs           float64     `json:"time_ms"`
	Method           string      `json:"method"`
	Success          bool        `json:"success"`
	UsedRealRoads    bool        `json:"used_real_roads"`
	DegradedFrom     string      `json:"degraded_from,omitempty"`
	TotalDurationMin *float64    `json:"total_duration_min,omitempty"`
	RouteGeometry    [][]float64 `json:"route_geometry,omitempty"`
	Error            string      `json:"error,omitempty"`
	System           SysInfo     `json:"system,omitzero"`
}

// ComparisonResult pairs a classical and a quantum solve over the identical
// point set and distance matrix.
type ComparisonResult struct {
	Classical       SolveResult `json:"classical"`
	Quantum         SolveResult `json:"quantum"`
	SpeedupRatio    float64     `json:"speedup_ratio"`
	DistanceDeltaKm float64     `json:"distance_delta_km"`
}

// DistanceCacheEntry is a cached road-distance pair
type DistanceCacheEntry struct {
	Origin      Coordinates
	Destination Coordinates
	DistanceKm  float64
	DurationMin float64
}
