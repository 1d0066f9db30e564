package risk

import (
	"fmt"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/types"
)

// Succession rule constants. Retirement uses tenure as a proxy since the
// snapshot carries no birth dates.
const (
	retirementTenureYears  = 40
	retirementHorizonYears = 2
)

// successionRisks applies the succession rule set to one position.
func successionRisks(snap *model.Snapshot, pos *model.Position) []SuccessionRisk {
	var out []SuccessionRisk
	hasPlan := snap.HasActivePlan(pos.ID)

	if pos.KeyPosition && !hasPlan {
		out = append(out, SuccessionRisk{
			PositionID:  pos.ID,
			RiskType:    TypeNoSuccessionPlan,
			Level:       types.RiskHigh,
			Description: fmt.Sprintf("Key position %s has no active succession plan", pos.Title),
			Action:      "Create a succession plan and identify candidates",
		})
	}

	if !hasPlan {
		horizon := snap.Now.AddDate(retirementHorizonYears, 0, 0)
		for _, emp := range snap.EmployeesInPosition(pos.ID) {
			if !emp.Active || emp.HireDate.IsZero() {
				continue
			}
			if !emp.HireDate.AddDate(retirementTenureYears, 0, 0).After(horizon) {
				level := types.RiskMedium
				if pos.KeyPosition {
					level = types.RiskHigh
				}
				out = append(out, SuccessionRisk{
					PositionID:  pos.ID,
					RiskType:    TypeRetirement,
					Level:       level,
					Description: fmt.Sprintf("%s in %s is approaching retirement eligibility with no succession plan", emp.Name, pos.Title),
					Action:      "Start knowledge transfer and succession planning now",
				})
				break
			}
		}
	}

	if pos.Occupants == 1 && !snap.HasReadyCandidate(pos.ID) {
		level := types.RiskMedium
		if pos.KeyPosition {
			level = types.RiskHigh
		}
		out = append(out, SuccessionRisk{
			PositionID:  pos.ID,
			RiskType:    TypeSinglePoint,
			Level:       level,
			Description: fmt.Sprintf("Position %s has a single occupant and no ready successor", pos.Title),
			Action:      "Cross-train a backup or promote a plan candidate to ready status",
		})
	}

	return out
}
