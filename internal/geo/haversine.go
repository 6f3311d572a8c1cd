package geo

import (
	"math"

	"quantum-logistics-router/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by the great-circle formula.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lon1r := lon1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	lon2r := lon2 * math.Pi / 180

	dlat := lat2r - lat1r
	dlon := lon2r - lon1r

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance returns the great-circle distance between two locations in km.
func Distance(a, b models.Location) float64 {
	return Haversine(a.Lat, a.Lng, b.Lat, b.Lng)
}
