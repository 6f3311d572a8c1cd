// Package handlers implements the JSON HTTP API.
package handlers

import (
	"encoding/json"
	"net/http"

	"quantum-logistics-router/internal/solver"
)

// Handler provides common handler utilities and dependencies
type Handler struct {
	Solver *solver.Solver
}

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// HandleHealthCheck reports service liveness and routing availability.
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":               "healthy",
		"service":              "quantum-logistics-api",
		"real_roads_available": h.Solver.RoadRoutingAvailable(),
	})
}

// HandleRoutingStatus reports whether real-road distances are configured.
func (h *Handler) HandleRoutingStatus(w http.ResponseWriter, r *http.Request) {
	configured := h.Solver.RoadRoutingAvailable()
	message := "road routing API not configured"
	if configured {
		message = "road routing API configured"
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"real_roads_available": configured,
		"api_configured":       configured,
		"message":              message,
	})
}
