// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/laddr/internal/adapters/repository"
	"github.com/okian/laddr/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SnapshotDependencies
	ReadinessDependencies
	CandidatesDependencies
	RiskDependencies
	ReportDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	snapshotHandler   *SnapshotHandler
	employeesHandler  *EmployeesHandler
	candidatesHandler *CandidatesHandler
	risksHandler      *RisksHandler
	reportsHandler    *ReportsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(statsProvider),
		statsHandler:      NewStatsHandler(statsProvider),
		snapshotHandler:   NewSnapshotHandler(deps),
		employeesHandler:  NewEmployeesHandler(deps),
		candidatesHandler: NewCandidatesHandler(deps),
		risksHandler:      NewRisksHandler(deps),
		reportsHandler:    NewReportsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/snapshot", MetricsMiddleware(s.snapshotHandler.HandlePutSnapshot, "snapshot"))
	mux.HandleFunc("/employees/", MetricsMiddleware(s.employeesHandler.HandleGetEmployee, "employees"))
	mux.HandleFunc("/positions/", MetricsMiddleware(s.candidatesHandler.HandleGetCandidates, "positions"))
	mux.HandleFunc("/risks", MetricsMiddleware(s.risksHandler.HandleGetRisks, "risks"))
	mux.HandleFunc("/reports/", MetricsMiddleware(s.reportsHandler.HandleGetReport, "reports"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404. An employee
// without a current position is a not-found condition on their position,
// not a server fault.
func isNotFound(err error) bool {
	return errors.Is(err, model.ErrEmployeeNotFound) ||
		errors.Is(err, model.ErrPositionNotFound) ||
		errors.Is(err, model.ErrCareerPathNotFound) ||
		errors.Is(err, model.ErrDepartmentNotFound) ||
		errors.Is(err, model.ErrNoCurrentPosition)
}

// writeDomainError maps engine errors onto the API's status codes:
// missing snapshot -> 503, unknown entity -> 404, anything else -> 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoSnapshot):
		writeError(w, http.StatusServiceUnavailable, "no_snapshot", err)
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
