// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/laddr/internal/domain/readiness"
	"github.com/okian/laddr/internal/domain/roadmap"
)

// ReadinessDependencies defines the interface for per-employee analyses.
type ReadinessDependencies interface {
	Readiness(ctx context.Context, employeeID string) ([]readiness.Analysis, error)
	Roadmap(ctx context.Context, employeeID, targetPositionID string) (roadmap.Roadmap, error)
}

// EmployeesHandler handles per-employee analysis requests.
type EmployeesHandler struct {
	deps ReadinessDependencies
}

// NewEmployeesHandler creates a new employees handler.
func NewEmployeesHandler(deps ReadinessDependencies) *EmployeesHandler {
	return &EmployeesHandler{deps: deps}
}

type readinessResponse struct {
	EmployeeID string               `json:"employee_id"`
	Paths      []readiness.Analysis `json:"paths"`
}

// HandleGetEmployee routes GET /employees/{id}/readiness and
// GET /employees/{id}/roadmap?target={position_id}.
func (h *EmployeesHandler) HandleGetEmployee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /employees/
	rest := strings.TrimPrefix(r.URL.Path, "/employees/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	employeeID := parts[0]

	switch parts[1] {
	case "readiness":
		h.handleReadiness(w, r, employeeID)
	case "roadmap":
		h.handleRoadmap(w, r, employeeID)
	default:
		http.NotFound(w, r)
	}
}

func (h *EmployeesHandler) handleReadiness(w http.ResponseWriter, r *http.Request, employeeID string) {
	analyses, err := h.deps.Readiness(r.Context(), employeeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, readinessResponse{EmployeeID: employeeID, Paths: analyses})
}

func (h *EmployeesHandler) handleRoadmap(w http.ResponseWriter, r *http.Request, employeeID string) {
	target := r.URL.Query().Get("target")
	if target == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rm, err := h.deps.Roadmap(r.Context(), employeeID, target)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}
