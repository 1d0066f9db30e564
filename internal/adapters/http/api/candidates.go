// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/laddr/internal/domain/succession"
)

// CandidatesDependencies defines the interface for succession candidate
// searches.
type CandidatesDependencies interface {
	Candidates(ctx context.Context, positionID string) ([]succession.Candidate, error)
}

// CandidatesHandler handles succession candidate requests.
type CandidatesHandler struct {
	deps CandidatesDependencies
}

// NewCandidatesHandler creates a new candidates handler.
func NewCandidatesHandler(deps CandidatesDependencies) *CandidatesHandler {
	return &CandidatesHandler{deps: deps}
}

type candidatesResponse struct {
	PositionID string                 `json:"position_id"`
	Candidates []succession.Candidate `json:"candidates"`
}

// HandleGetCandidates handles GET /positions/{id}/candidates requests.
func (h *CandidatesHandler) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /positions/
	rest := strings.TrimPrefix(r.URL.Path, "/positions/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "candidates" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	positionID := parts[0]

	candidates, err := h.deps.Candidates(r.Context(), positionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidatesResponse{PositionID: positionID, Candidates: candidates})
}
