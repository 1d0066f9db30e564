// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/laddr/internal/domain/insight"
)

// ReportDependencies defines the interface for role-scoped reports.
type ReportDependencies interface {
	EmployeeReport(ctx context.Context, employeeID string) (insight.EmployeeReport, error)
	ManagerReport(ctx context.Context, departmentID string) (insight.ManagerReport, error)
	HRReport(ctx context.Context) (insight.HRReport, error)
}

// ReportsHandler handles role-scoped report requests.
type ReportsHandler struct {
	deps ReportDependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps ReportDependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// HandleGetReport routes GET /reports/employee/{id},
// GET /reports/manager/{department_id}, and GET /reports/hr.
func (h *ReportsHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/reports/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] == "hr":
		report, err := h.deps.HRReport(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	case len(parts) == 2 && parts[0] == "employee" && parts[1] != "":
		report, err := h.deps.EmployeeReport(r.Context(), parts[1])
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	case len(parts) == 2 && parts[0] == "manager" && parts[1] != "":
		report, err := h.deps.ManagerReport(r.Context(), parts[1])
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", ErrUnknownRoute)
	}
}
