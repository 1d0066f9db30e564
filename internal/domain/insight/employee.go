package insight

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/readiness"
	"github.com/okian/laddr/internal/domain/types"
)

// Smart-insight and opportunity thresholds.
const (
	readyInsightBar   = 80.0
	vacancyMatchBar   = 60.0
	trendReviewWindow = 3
)

// Simplified vacancy match points. This is a coarse screen for surfacing
// openings, not the full succession score.
const (
	vacancySameDeptPoints  = 40
	vacancyOtherDeptPoints = 20
	vacancyNextLevelPoints = 30
	vacancySameLevelPoints = 15
	vacancySkillPoints     = 30
)

// EmployeeReport builds the individual dashboard for one employee.
func (a *Aggregator) EmployeeReport(ctx context.Context, snap *model.Snapshot, employeeID string) (EmployeeReport, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return EmployeeReport{}, fmt.Errorf("employee report %q: %w", employeeID, model.ErrEmployeeNotFound)
	}

	report := EmployeeReport{
		EmployeeID:  employeeID,
		GeneratedAt: snap.Now,
		Trend:       types.TrendOf(emp.RecentRatings(trendReviewWindow)),
	}

	analyses, err := readiness.AnalyzeAll(snap, employeeID)
	if err != nil {
		// No current position means no paths to recommend; the rest of
		// the report is still useful.
		analyses = nil
	}
	report.SkillRecommendations = a.skillRecommendations(snap, emp, analyses)
	if len(analyses) > a.maxPaths {
		analyses = analyses[:a.maxPaths]
	}
	report.PathRecommendations = analyses
	report.Opportunities = a.opportunities(snap, emp, analyses)
	report.Insights = a.insights(snap, emp, analyses, report.Trend)

	return report, nil
}

// skillRecommendations deduplicates unmet gaps across every applicable
// path, keeping the highest required level per skill and accumulating the
// reasons.
func (a *Aggregator) skillRecommendations(snap *model.Snapshot, emp *model.Employee, analyses []readiness.Analysis) []SkillRecommendation {
	bySkill := make(map[string]*SkillRecommendation)
	for _, an := range analyses {
		target := an.TargetPositionID
		if pos, ok := snap.Position(an.TargetPositionID); ok {
			target = pos.Title
		}
		for _, g := range an.SkillGaps {
			if g.Met() {
				continue
			}
			reason := fmt.Sprintf("Needed at level %d for %s", g.RequiredLevel, target)
			rec, ok := bySkill[g.SkillID]
			if !ok {
				rec = &SkillRecommendation{
					SkillID:      g.SkillID,
					SkillName:    snap.SkillName(g.SkillID),
					CurrentLevel: g.CurrentLevel,
				}
				bySkill[g.SkillID] = rec
			}
			if g.RequiredLevel > rec.TargetLevel {
				rec.TargetLevel = g.RequiredLevel
			}
			rec.Mandatory = rec.Mandatory || g.Mandatory
			rec.Reasons = append(rec.Reasons, reason)
		}
	}

	out := make([]SkillRecommendation, 0, len(bySkill))
	for _, rec := range bySkill {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mandatory != out[j].Mandatory {
			return out[i].Mandatory
		}
		if out[i].TargetLevel != out[j].TargetLevel {
			return out[i].TargetLevel > out[j].TargetLevel
		}
		return out[i].SkillID < out[j].SkillID
	})
	if len(out) > a.maxSkills {
		out = out[:a.maxSkills]
	}
	return out
}

// opportunities surfaces vacancies, succession candidacies, and
// cross-training suggestions for one employee.
func (a *Aggregator) opportunities(snap *model.Snapshot, emp *model.Employee, analyses []readiness.Analysis) []Opportunity {
	var out []Opportunity

	for _, pos := range snap.Positions() {
		if !pos.Vacant() || pos.ID == emp.PositionID {
			continue
		}
		match := vacancyMatch(snap, emp, pos)
		if match < vacancyMatchBar {
			continue
		}
		out = append(out, Opportunity{
			Kind:       OpportunityVacancy,
			PositionID: pos.ID,
			Title:      pos.Title,
			MatchScore: match,
			Detail:     fmt.Sprintf("Open position with a %.0f%% profile match", match),
		})
	}

	for _, positionID := range snap.PlanCandidacies(emp.ID) {
		title := positionID
		if pos, ok := snap.Position(positionID); ok {
			title = pos.Title
		}
		out = append(out, Opportunity{
			Kind:       OpportunityCandidacy,
			PositionID: positionID,
			Title:      title,
			Detail:     "Listed as a succession candidate for this position",
		})
	}

	out = append(out, a.crossTraining(snap, emp)...)

	if len(out) > a.maxOpportunities {
		out = out[:a.maxOpportunities]
	}
	return out
}

// crossTraining suggests skills the employee lacks entirely that would
// open onward paths reachable within two hops.
func (a *Aggregator) crossTraining(snap *model.Snapshot, emp *model.Employee) []Opportunity {
	var out []Opportunity
	seen := make(map[string]bool)
	for _, first := range snap.ActivePathsFrom(emp.PositionID) {
		for _, second := range snap.ActivePathsFrom(first.ToPositionID) {
			for _, req := range second.RequiredSkills {
				if emp.SkillLevel(req.SkillID) > 0 || seen[req.SkillID] {
					continue
				}
				seen[req.SkillID] = true
				title := second.ToPositionID
				if pos, ok := snap.Position(second.ToPositionID); ok {
					title = pos.Title
				}
				out = append(out, Opportunity{
					Kind:       OpportunityCrossTrain,
					PositionID: second.ToPositionID,
					Title:      title,
					Detail:     fmt.Sprintf("Learning %s would open the longer-term path to %s", snap.SkillName(req.SkillID), title),
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Detail < out[j].Detail })
	return out
}

// vacancyMatch computes the simplified match score used to screen open
// positions.
func vacancyMatch(snap *model.Snapshot, emp *model.Employee, pos *model.Position) float64 {
	score := float64(vacancyOtherDeptPoints)
	if emp.DepartmentID != "" && emp.DepartmentID == pos.DepartmentID {
		score = vacancySameDeptPoints
	}

	if current, ok := snap.Position(emp.PositionID); ok {
		switch pos.Level {
		case current.Level + 1:
			score += vacancyNextLevelPoints
		case current.Level:
			score += vacancySameLevelPoints
		}
	}

	if path, ok := snap.PathBetween(emp.PositionID, pos.ID); ok {
		if len(path.RequiredSkills) == 0 {
			score += vacancySkillPoints
		} else {
			met := 0
			for _, req := range path.RequiredSkills {
				if emp.SkillLevel(req.SkillID) >= req.MinLevel {
					met++
				}
			}
			score += vacancySkillPoints * float64(met) / float64(len(path.RequiredSkills))
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// insights generates the free-text smart insights from threshold rules.
func (a *Aggregator) insights(snap *model.Snapshot, emp *model.Employee, analyses []readiness.Analysis, trend types.Trend) []string {
	var out []string

	if len(analyses) > 0 {
		best := analyses[0]
		target := best.TargetPositionID
		if pos, ok := snap.Position(best.TargetPositionID); ok {
			target = pos.Title
		}
		switch {
		case best.Readiness >= readyInsightBar && trend == types.TrendImproving:
			out = append(out, fmt.Sprintf("You are %.0f%% ready for %s and your performance is improving; consider applying now", best.Readiness, target))
		case best.Readiness >= readyInsightBar:
			out = append(out, fmt.Sprintf("You are %.0f%% ready for %s; discuss the move with your manager", best.Readiness, target))
		}
		if open := mandatoryOpenCount(best); open > 0 {
			out = append(out, fmt.Sprintf("Closing %d mandatory skill gap(s) would unlock the path to %s", open, target))
		}
	} else if emp.PositionID != "" {
		out = append(out, "No active career paths are defined from your position; raise growth options with HR")
	}

	if trend == types.TrendDeclining {
		out = append(out, "Recent reviews are trending down; focus on current performance before pursuing a move")
	}
	if len(snap.PlanCandidacies(emp.ID)) > 0 {
		out = append(out, "You are on a succession plan; keep your skill assessments current")
	}

	if len(out) > a.maxInsights {
		out = out[:a.maxInsights]
	}
	return out
}

func mandatoryOpenCount(an readiness.Analysis) int {
	count := 0
	for _, g := range an.SkillGaps {
		if g.Mandatory && !g.Met() {
			count++
		}
	}
	return count
}
