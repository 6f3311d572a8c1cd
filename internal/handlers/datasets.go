package handlers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"quantum-logistics-router/internal/geo"
)

// HandleTestData returns the fixed São Paulo benchmark point set.
func (h *Handler) HandleTestData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"locations":    geo.SaoPauloTestLocations,
		"total_points": len(geo.SaoPauloTestLocations),
	})
}

// HandleCapitals returns the Brazilian capital hubs for inter-city routing.
func (h *Handler) HandleCapitals(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"locations":    geo.BrazilCapitalHubs,
		"total_points": len(geo.BrazilCapitalHubs),
	})
}

type citySummary struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lon"`
	Neighborhoods int     `json:"neighborhoods"`
}

// HandleCities lists the cities available for intra-city route generation.
func (h *Handler) HandleCities(w http.ResponseWriter, r *http.Request) {
	cities := geo.CityList()
	summaries := make([]citySummary, len(cities))
	for i, c := range cities {
		hub := c.Hub()
		summaries[i] = citySummary{
			Key:           c.Key,
			Name:          c.Name,
			Lat:           hub.Lat,
			Lng:           hub.Lng,
			Neighborhoods: len(c.Neighborhoods()),
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cities":  summaries,
		"total":   len(summaries),
	})
}

// HandleCityNeighborhoods returns the hub and neighborhoods of one city.
// Path shape: /api/cities/{key}/neighborhoods.
func (h *Handler) HandleCityNeighborhoods(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/cities/")
	key, ok := strings.CutSuffix(rest, "/neighborhoods")
	if !ok || key == "" || strings.Contains(key, "/") {
		h.writeError(w, http.StatusNotFound, "not found")
		return
	}

	city, exists := geo.Cities[key]
	if !exists {
		h.writeError(w, http.StatusNotFound, "unknown city: "+key)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"city_name":     city.Name,
		"hub":           city.Hub(),
		"neighborhoods": city.Neighborhoods(),
		"total_points":  len(city.Locations),
	})
}

// GenerateRouteRequest is the POST /api/generate-route payload.
type GenerateRouteRequest struct {
	CityKey   string `json:"city_key"`
	Algorithm string `json:"algorithm"`
	NumPoints int    `json:"num_points"`
}

// HandleGenerateRoute builds a hub-plus-random-neighborhoods point set for
// intra-city routing.
func (h *Handler) HandleGenerateRoute(w http.ResponseWriter, r *http.Request) {
	req := GenerateRouteRequest{Algorithm: "classical", NumPoints: 3}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}
	if req.CityKey == "" {
		h.writeError(w, http.StatusBadRequest, "city_key is required")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	locations, err := geo.GenerateRoute(rng, req.CityKey, req.Algorithm, req.NumPoints)
	if err != nil {
		var genErr *geo.ErrGenerateRoute
		if errors.As(err, &genErr) {
			h.writeError(w, http.StatusBadRequest, err.Error())
		} else {
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"city_name":    geo.Cities[req.CityKey].Name,
		"locations":    locations,
		"total_points": len(locations),
		"algorithm":    req.Algorithm,
	})
}
