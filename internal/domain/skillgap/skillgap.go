// Package skillgap compares an employee's recorded proficiencies against a
// role's skill requirements. Computation is pure: no side effects, no error
// path, an empty requirement list yields an empty gap list.
package skillgap

import (
	"sort"

	"github.com/okian/laddr/internal/domain/model"
)

// Priority scoring constants. Priority orders gaps for presentation only;
// consumers must not branch business decisions on it.
const (
	mandatoryPriorityBonus = 50
	gapPriorityWeight      = 10
)

// Gap is the shortfall between current and required proficiency for one
// skill.
type Gap struct {
	SkillID       string `json:"skill_id"`
	RequiredLevel int    `json:"required_level"`
	CurrentLevel  int    `json:"current_level"`
	Gap           int    `json:"gap"` // max(0, required-current)
	Mandatory     bool   `json:"mandatory"`
	Priority      int    `json:"priority"`
}

// Met reports whether the requirement is fully satisfied.
func (g Gap) Met() bool { return g.Gap == 0 }

// Levels is the proficiency lookup a gap computation needs. A missing
// record reads as level 0.
type Levels interface {
	SkillLevel(skillID string) int
}

// Compute returns one Gap per required skill, ordered by priority
// descending with skill id as the deterministic tie-break.
func Compute(levels Levels, required []model.RequiredSkill) []Gap {
	gaps := make([]Gap, 0, len(required))
	for _, req := range required {
		current := levels.SkillLevel(req.SkillID)
		gap := req.MinLevel - current
		if gap < 0 {
			gap = 0
		}
		priority := gap * gapPriorityWeight
		if req.Mandatory {
			priority += mandatoryPriorityBonus
		}
		gaps = append(gaps, Gap{
			SkillID:       req.SkillID,
			RequiredLevel: req.MinLevel,
			CurrentLevel:  current,
			Gap:           gap,
			Mandatory:     req.Mandatory,
			Priority:      priority,
		})
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Priority != gaps[j].Priority {
			return gaps[i].Priority > gaps[j].Priority
		}
		return gaps[i].SkillID < gaps[j].SkillID
	})
	return gaps
}

// CompletionPercent returns 100 * fully-met requirements / total, or 100
// when there are no requirements.
func CompletionPercent(gaps []Gap) float64 {
	if len(gaps) == 0 {
		return 100
	}
	met := 0
	for _, g := range gaps {
		if g.Met() {
			met++
		}
	}
	return 100 * float64(met) / float64(len(gaps))
}

// MandatoryOpen returns the unmet mandatory gaps in priority order.
func MandatoryOpen(gaps []Gap) []Gap {
	var out []Gap
	for _, g := range gaps {
		if g.Mandatory && !g.Met() {
			out = append(out, g)
		}
	}
	return out
}
