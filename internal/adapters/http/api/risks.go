// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/okian/laddr/internal/domain/risk"
)

// Risk category query values for GET /risks.
const (
	categoryTalent     = "talent"
	categoryAttrition  = "attrition"
	categorySuccession = "succession"
)

// RiskDependencies defines the interface for organization-wide risk scans.
type RiskDependencies interface {
	RiskReport(ctx context.Context) (risk.Report, error)
}

// RisksHandler handles risk scan requests.
type RisksHandler struct {
	deps RiskDependencies
}

// NewRisksHandler creates a new risks handler.
func NewRisksHandler(deps RiskDependencies) *RisksHandler {
	return &RisksHandler{deps: deps}
}

// HandleGetRisks handles GET /risks requests. An optional ?category=
// parameter narrows the report to one risk family.
func (h *RisksHandler) HandleGetRisks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	category := r.URL.Query().Get("category")
	switch category {
	case "", categoryTalent, categoryAttrition, categorySuccession:
	default:
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("unknown risk category %q", category))
		return
	}

	report, err := h.deps.RiskReport(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	switch category {
	case categoryTalent:
		report.AttritionRisks = nil
		report.SuccessionRisks = nil
	case categoryAttrition:
		report.TalentRisks = nil
		report.SuccessionRisks = nil
	case categorySuccession:
		report.TalentRisks = nil
		report.AttritionRisks = nil
	}

	writeJSON(w, http.StatusOK, report)
}
