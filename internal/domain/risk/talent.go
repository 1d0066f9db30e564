package risk

import (
	"fmt"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/types"
)

// Talent rule constants.
const (
	highPerformerBar      = 4.0
	talentReviewWindow    = 3
	stagnationTenureYears = 3.0
	stagnationWindowYears = 2
)

// talentRisks applies the talent rule set to one employee.
func talentRisks(snap *model.Snapshot, emp *model.Employee) []TalentRisk {
	var out []TalentRisk

	// High performer with nowhere to go.
	if avg, ok := emp.RecentAverageRating(talentReviewWindow); ok && avg >= highPerformerBar {
		if emp.PositionID != "" && len(snap.ActivePathsFrom(emp.PositionID)) == 0 {
			out = append(out, TalentRisk{
				EmployeeID:  emp.ID,
				RiskType:    TypeNoProgression,
				Level:       types.RiskHigh,
				Description: fmt.Sprintf("%s averages %.1f over recent reviews but no active career path leaves their position", emp.Name, avg),
				Action:      "Define a career path from this position or discuss lateral growth options",
			})
		}
	}

	// Long tenure without recognized advancement.
	cutoff := snap.Now.AddDate(-stagnationWindowYears, 0, 0)
	if emp.YearsInRole(snap.Now) >= stagnationTenureYears && !emp.ApprovedPromotionSince(cutoff) {
		out = append(out, TalentRisk{
			EmployeeID:  emp.ID,
			RiskType:    TypeStagnation,
			Level:       types.RiskMedium,
			Description: fmt.Sprintf("%s has been in role %.1f years with no approved promotion in the last %d years", emp.Name, emp.YearsInRole(snap.Now), stagnationWindowYears),
			Action:      "Schedule a career development conversation",
		})
	}

	// Key person without succession coverage: the "No Succession Plan"
	// rule restricted to employees holding key positions.
	if pos, ok := snap.Position(emp.PositionID); ok && pos.KeyPosition && !snap.HasActivePlan(pos.ID) {
		out = append(out, TalentRisk{
			EmployeeID:  emp.ID,
			RiskType:    TypeKeyPerson,
			Level:       types.RiskHigh,
			Description: fmt.Sprintf("%s holds key position %s with no active succession plan", emp.Name, pos.Title),
			Action:      "Create a succession plan for this position",
		})
	}

	return out
}
