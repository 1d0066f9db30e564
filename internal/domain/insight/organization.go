package insight

import (
	"context"
	"fmt"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/readiness"
	"github.com/okian/laddr/internal/domain/risk"
	"github.com/okian/laddr/internal/domain/types"
	"github.com/okian/laddr/internal/scan"
)

// Strategic recommendation thresholds.
const (
	coverageTargetPercent = 80.0
	attritionShareBar     = 0.25
	maxRecommendations    = 5
)

// ManagerReport builds the team view for one department.
func (a *Aggregator) ManagerReport(ctx context.Context, snap *model.Snapshot, departmentID string) (ManagerReport, error) {
	if _, ok := snap.Department(departmentID); !ok {
		return ManagerReport{}, fmt.Errorf("manager report %q: %w", departmentID, model.ErrDepartmentNotFound)
	}

	var team []*model.Employee
	for _, emp := range snap.EmployeesInDepartment(departmentID) {
		if emp.Active {
			team = append(team, emp)
		}
	}

	report := ManagerReport{
		DepartmentID: departmentID,
		GeneratedAt:  snap.Now,
		TeamSize:     len(team),
	}

	members, err := scan.Map(ctx, a.workers, team, func(_ context.Context, emp *model.Employee) (TeamMember, error) {
		m := TeamMember{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Trend:      types.TrendOf(emp.RecentRatings(trendReviewWindow)),
		}
		analyses, err := readiness.AnalyzeAll(snap, emp.ID)
		if err == nil && len(analyses) > 0 {
			m.TopReadiness = analyses[0].Readiness
			m.BestPathID = analyses[0].CareerPathID
		}
		return m, nil
	})
	if err != nil {
		return ManagerReport{}, err
	}
	report.Members = members

	full, err := a.predictor.Scan(ctx, snap)
	if err != nil {
		return ManagerReport{}, err
	}
	membership := make(map[string]bool, len(team))
	for _, emp := range team {
		membership[emp.ID] = true
	}
	for _, tr := range full.TalentRisks {
		if membership[tr.EmployeeID] {
			report.TalentRisks = append(report.TalentRisks, tr)
		}
	}
	for _, ar := range full.AttritionRisks {
		if membership[ar.EmployeeID] {
			report.AttritionRisks = append(report.AttritionRisks, ar)
		}
	}
	report.TalentRisks = capTalent(report.TalentRisks, a.maxRisks)
	report.AttritionRisks = capAttrition(report.AttritionRisks, a.maxRisks)

	return report, nil
}

// HRReport builds the organization-wide view for HR/admin users.
func (a *Aggregator) HRReport(ctx context.Context, snap *model.Snapshot) (HRReport, error) {
	report := HRReport{
		GeneratedAt:   snap.Now,
		EmployeeCount: snap.EmployeeCount(),
		PositionCount: snap.PositionCount(),
	}

	full, err := a.predictor.Scan(ctx, snap)
	if err != nil {
		return HRReport{}, err
	}

	report.KeyPositionCoverage = keyPositionCoverage(snap)
	report.TalentRisks = capTalent(full.TalentRisks, a.maxRisks)
	report.AttritionRisks = capAttrition(full.AttritionRisks, a.maxRisks)
	report.SuccessionRisks = capSuccession(full.SuccessionRisks, a.maxRisks)
	report.Recommendations = strategicRecommendations(snap, full, report.KeyPositionCoverage)

	return report, nil
}

// keyPositionCoverage returns the percentage of key positions that have an
// active succession plan, or 100 when there are no key positions.
func keyPositionCoverage(snap *model.Snapshot) float64 {
	keyTotal, covered := 0, 0
	for _, pos := range snap.Positions() {
		if !pos.KeyPosition {
			continue
		}
		keyTotal++
		if snap.HasActivePlan(pos.ID) {
			covered++
		}
	}
	if keyTotal == 0 {
		return 100
	}
	return 100 * float64(covered) / float64(keyTotal)
}

// strategicRecommendations derives HR action items from aggregate
// thresholds.
func strategicRecommendations(snap *model.Snapshot, full risk.Report, coverage float64) []string {
	var out []string

	if coverage < coverageTargetPercent {
		out = append(out, fmt.Sprintf("Only %.0f%% of key positions have active succession plans; raise coverage to at least %.0f%%", coverage, coverageTargetPercent))
	}

	if full.EmployeesScanned > 0 {
		share := float64(len(full.AttritionRisks)) / float64(full.EmployeesScanned)
		if share > attritionShareBar {
			out = append(out, fmt.Sprintf("%.0f%% of scanned employees carry attrition risk; stand up a broad retention program", share*100))
		}
	}

	critical := 0
	for _, ar := range full.AttritionRisks {
		if ar.Level == types.RiskCritical {
			critical++
		}
	}
	if critical > 0 {
		out = append(out, fmt.Sprintf("%d employee(s) at critical attrition risk require immediate retention conversations", critical))
	}

	vacantKey := 0
	for _, pos := range snap.Positions() {
		if pos.KeyPosition && pos.Vacant() {
			vacantKey++
		}
	}
	if vacantKey > 0 {
		out = append(out, fmt.Sprintf("%d key position(s) are vacant; prioritize internal promotion or hiring", vacantKey))
	}

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}
