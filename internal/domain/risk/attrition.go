package risk

import (
	"fmt"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/types"
)

// Additive attrition point model. Points are business policy; changing
// them changes who appears on retention lists.
const (
	noPromotionPoints     = 30
	decliningTrendPoints  = 25
	flightRiskPoints      = 20
	rejectionPoints       = 20
	marketableSkillPoints = 15
	turnoverPoints        = 15

	attritionFloor = 50 // below this the employee is not reported
	criticalBar    = 80
	highBar        = 65

	noPromotionTenureYears = 3.0
	noPromotionWindowYears = 2
	trendReviewWindow      = 3
	flightRatingBar        = 4.0
	rejectionWindowMonths  = 6
	rejectionCountBar      = 2
	marketableLevelBar     = 4
	turnoverRateBar        = 0.15
)

// attritionRisk applies the additive point model to one employee. It
// returns nil when the score stays under the reporting floor.
func attritionRisk(snap *model.Snapshot, emp *model.Employee) *AttritionRisk {
	score := 0
	var factors []string
	now := snap.Now

	if emp.YearsInRole(now) > noPromotionTenureYears && !emp.ApprovedPromotionSince(now.AddDate(-noPromotionWindowYears, 0, 0)) {
		score += noPromotionPoints
		factors = append(factors, fmt.Sprintf("No promotion in over %d years", noPromotionWindowYears))
	}

	ratings := emp.RecentRatings(trendReviewWindow)
	switch {
	case types.TrendOf(ratings) == types.TrendDeclining:
		score += decliningTrendPoints
		factors = append(factors, "Performance trend declining")
	case len(ratings) >= 2 && ratings[0] >= flightRatingBar && ratings[1] >= flightRatingBar:
		// Sustained high performers are the most mobile.
		score += flightRiskPoints
		factors = append(factors, "Consistently high performer, elevated external mobility")
	}

	if emp.RejectedRequestsSince(now.AddDate(0, -rejectionWindowMonths, 0)) >= rejectionCountBar {
		score += rejectionPoints
		factors = append(factors, "Multiple requests rejected recently")
	}

	if hasMarketableSkill(snap, emp) {
		score += marketableSkillPoints
		factors = append(factors, "Holds in-demand technical or leadership skills")
	}

	if snap.DepartmentTurnover(emp.DepartmentID) > turnoverRateBar {
		score += turnoverPoints
		factors = append(factors, "Department turnover above threshold")
	}

	if score < attritionFloor {
		return nil
	}

	level := types.RiskMedium
	action := "Monitor engagement and discuss growth options"
	switch {
	case score >= criticalBar:
		level = types.RiskCritical
		action = "Immediate retention conversation with management"
	case score >= highBar:
		level = types.RiskHigh
		action = "Proactive retention plan within the quarter"
	}

	return &AttritionRisk{
		EmployeeID: emp.ID,
		Score:      score,
		Level:      level,
		Factors:    factors,
		Action:     action,
	}
}

// hasMarketableSkill reports a technical or leadership skill held at high
// proficiency.
func hasMarketableSkill(snap *model.Snapshot, emp *model.Employee) bool {
	for _, es := range emp.Skills {
		if es.Level < marketableLevelBar {
			continue
		}
		if sk, ok := snap.Skill(es.SkillID); ok {
			if sk.Category == model.CategoryTechnical || sk.Category == model.CategoryLeadership {
				return true
			}
		}
	}
	return false
}
