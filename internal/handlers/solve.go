package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"quantum-logistics-router/internal/models"
	"quantum-logistics-router/internal/solver"
)

// SolveRequest is the POST /api/solve payload. Method is optional; when
// empty the algorithm family selects one automatically.
type SolveRequest struct {
	Locations       []models.Location `json:"locations"`
	Algorithm       string            `json:"algorithm"`
	Method          string            `json:"method,omitempty"`
	UseRealRoads    bool              `json:"use_real_roads"`
	IncludeGeometry bool              `json:"include_geometry"`
}

// CompareRequest is the POST /api/compare payload. Both method fields are
// optional and default to auto-selection.
type CompareRequest struct {
	Locations       []models.Location `json:"locations"`
	ClassicalMethod string            `json:"classical_method,omitempty"`
	QuantumMethod   string            `json:"quantum_method,omitempty"`
	UseRealRoads    bool              `json:"use_real_roads"`
}

// resolveMethod maps an algorithm family plus optional explicit method tag
// to a concrete Method. Exhaustive search while feasible, approximation
// beyond; quantum defaults to the exact eigensolver.
func resolveMethod(algorithm, method string, points int) (models.Method, error) {
	if method != "" {
		return models.ParseMethod(method)
	}
	switch algorithm {
	case "classical", "":
		return solver.AutoClassical(points), nil
	case "quantum":
		return models.QuantumExact, nil
	default:
		return 0, fmt.Errorf("unknown algorithm: %q", algorithm)
	}
}

// requestStatus maps dispatcher rejections to HTTP status codes.
func requestStatus(err error) int {
	var badReq *solver.ErrBadRequest
	var capacity *solver.ErrCapacity
	if errors.As(err, &badReq) || errors.As(err, &capacity) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// HandleSolve runs one route optimization.
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	method, err := resolveMethod(req.Algorithm, req.Method, len(req.Locations))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Solver.Solve(r.Context(), solver.Request{
		Locations:       req.Locations,
		Method:          method,
		UseRealRoads:    req.UseRealRoads,
		IncludeGeometry: req.IncludeGeometry,
	})
	if err != nil {
		h.writeError(w, requestStatus(err), err.Error())
		return
	}
	if !result.Success {
		h.writeError(w, http.StatusInternalServerError, result.Error)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// HandleCompare runs the classical and quantum solvers over the same point
// set and returns both results.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	classicalMethod := solver.AutoClassical(len(req.Locations))
	if req.ClassicalMethod != "" {
		var err error
		if classicalMethod, err = models.ParseMethod(req.ClassicalMethod); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	quantumMethod := models.QuantumExact
	if req.QuantumMethod != "" {
		var err error
		if quantumMethod, err = models.ParseMethod(req.QuantumMethod); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	result, err := h.Solver.Compare(r.Context(), solver.Request{
		Locations:    req.Locations,
		UseRealRoads: req.UseRealRoads,
	}, classicalMethod, quantumMethod)
	if err != nil {
		h.writeError(w, requestStatus(err), err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
