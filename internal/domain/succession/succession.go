// Package succession scores employees as succession candidates for a
// target position. Four sub-scores combine into a weighted 0-100 match;
// absent history degrades a sub-score instead of erroring, so partially
// profiled employees are always scoreable.
package succession

import (
	"fmt"
	"sort"

	"github.com/okian/laddr/internal/domain/model"
)

// Factor weights. These sum to 1.0; business policy, not tunable per call.
const (
	experienceWeight  = 0.25
	performanceWeight = 0.30
	skillsWeight      = 0.25
	alignmentWeight   = 0.20
)

// Experience sub-score points.
const (
	tenureLongPoints = 40 // >= 5 years
	tenureMidPoints  = 25 // >= 3 years
	tenureBasePoints = 10
	tenureLongBar    = 5.0
	tenureMidBar     = 3.0
	sameDeptPoints   = 30
	otherDeptPoints  = 10
	oneLevelBelowPts = 30
	sameLevelPoints  = 20
	otherLevelPoints = 10
	keyPositionBonus = 10
)

// Performance sub-score constants.
const (
	neutralPerformance = 50 // no completed reviews
	ratingScale        = 25 // maps rating 1..5 onto 0..100
	recentReviewWindow = 3
)

// Skills sub-score constants.
const (
	noPathSkillScore    = 50 // no direct path defines the requirements
	noRequirementsScore = 70 // path exists but demands nothing
	fullSkillCredit     = 100
	partialCreditScale  = 60 // partial credit stays below the full-credit threshold
)

// Alignment sub-score constants.
const (
	directPathAlignment = 100
	twoHopAlignment     = 70
	sameDeptAlignment   = 50
	defaultAlignment    = 20
)

// Explainability thresholds.
const (
	strengthBar        = 80
	performanceWeakBar = 60
	experienceWeakBar  = 50
	skillsWeakBar      = 60
)

// SmartCandidateThreshold is the minimum overall score for inclusion in a
// smart-candidate list. The top-N cap is a collaborator-facing contract
// applied by callers, not an engine invariant.
const SmartCandidateThreshold = 60.0

// Candidate is the ephemeral outcome of one (candidate, target position)
// evaluation.
type Candidate struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	OverallScore float64 `json:"overall_score"`

	ExperienceScore  float64 `json:"experience_score"`
	PerformanceScore float64 `json:"performance_score"`
	SkillsScore      float64 `json:"skills_score"`
	AlignmentScore   float64 `json:"alignment_score"`

	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Score evaluates one employee as a successor for the target position. It
// fails only when the employee or position is absent from the snapshot.
func Score(snap *model.Snapshot, employeeID, targetPositionID string) (Candidate, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return Candidate{}, fmt.Errorf("score candidate %q: %w", employeeID, model.ErrEmployeeNotFound)
	}
	target, ok := snap.Position(targetPositionID)
	if !ok {
		return Candidate{}, fmt.Errorf("score candidate for %q: %w", targetPositionID, model.ErrPositionNotFound)
	}
	return score(snap, emp, target), nil
}

// SmartCandidates scores every active employee against the target position
// and returns those clearing the smart-candidate threshold, best first,
// capped at topN. The current occupant's position is excluded from the
// pool.
func SmartCandidates(snap *model.Snapshot, targetPositionID string, topN int) ([]Candidate, error) {
	target, ok := snap.Position(targetPositionID)
	if !ok {
		return nil, fmt.Errorf("smart candidates for %q: %w", targetPositionID, model.ErrPositionNotFound)
	}

	var out []Candidate
	for _, emp := range snap.Employees() {
		if !emp.Active || emp.PositionID == targetPositionID {
			continue
		}
		c := score(snap, emp, target)
		if c.OverallScore >= SmartCandidateThreshold {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OverallScore != out[j].OverallScore {
			return out[i].OverallScore > out[j].OverallScore
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

func score(snap *model.Snapshot, emp *model.Employee, target *model.Position) Candidate {
	c := Candidate{EmployeeID: emp.ID, Name: emp.Name}

	c.ExperienceScore = experienceScore(snap, emp, target)
	c.PerformanceScore = performanceScore(emp)
	c.SkillsScore = skillsScore(snap, emp, target)
	c.AlignmentScore = alignmentScore(snap, emp, target)

	c.OverallScore = clamp(c.ExperienceScore*experienceWeight +
		c.PerformanceScore*performanceWeight +
		c.SkillsScore*skillsWeight +
		c.AlignmentScore*alignmentWeight)

	c.Strengths, c.Weaknesses = explain(c)
	return c
}

func experienceScore(snap *model.Snapshot, emp *model.Employee, target *model.Position) float64 {
	score := 0.0

	switch tenure := emp.TotalExperience(snap.Now); {
	case tenure >= tenureLongBar:
		score += tenureLongPoints
	case tenure >= tenureMidBar:
		score += tenureMidPoints
	default:
		score += tenureBasePoints
	}

	if emp.DepartmentID != "" && emp.DepartmentID == target.DepartmentID {
		score += sameDeptPoints
	} else {
		score += otherDeptPoints
	}

	if current, ok := snap.Position(emp.PositionID); ok {
		switch {
		case current.Level == target.Level-1:
			score += oneLevelBelowPts
		case current.Level == target.Level:
			score += sameLevelPoints
		default:
			score += otherLevelPoints
		}
		if current.KeyPosition {
			score += keyPositionBonus
		}
	} else {
		score += otherLevelPoints
	}

	return clamp(score)
}

func performanceScore(emp *model.Employee) float64 {
	avg, ok := emp.RecentAverageRating(recentReviewWindow)
	if !ok {
		return neutralPerformance
	}
	return clamp((avg - 1) * ratingScale)
}

func skillsScore(snap *model.Snapshot, emp *model.Employee, target *model.Position) float64 {
	path, ok := snap.PathBetween(emp.PositionID, target.ID)
	if !ok {
		return noPathSkillScore
	}
	if len(path.RequiredSkills) == 0 {
		return noRequirementsScore
	}

	total := 0.0
	for _, req := range path.RequiredSkills {
		level := emp.SkillLevel(req.SkillID)
		switch {
		case level >= req.MinLevel:
			total += fullSkillCredit
		case level > 0:
			total += float64(level) / float64(req.MinLevel) * partialCreditScale
		}
	}
	return clamp(total / float64(len(path.RequiredSkills)))
}

func alignmentScore(snap *model.Snapshot, emp *model.Employee, target *model.Position) float64 {
	if _, ok := snap.PathBetween(emp.PositionID, target.ID); ok {
		return directPathAlignment
	}
	for _, hop := range snap.ActivePathsFrom(emp.PositionID) {
		if _, ok := snap.PathBetween(hop.ToPositionID, target.ID); ok {
			return twoHopAlignment
		}
	}
	if emp.DepartmentID != "" && emp.DepartmentID == target.DepartmentID {
		return sameDeptAlignment
	}
	return defaultAlignment
}

// explain derives strength and weakness lines from sub-score thresholds.
// Explainability is a first-class output, not a by-product.
func explain(c Candidate) (strengths, weaknesses []string) {
	if c.ExperienceScore >= strengthBar {
		strengths = append(strengths, "Strong organizational and role experience")
	}
	if c.PerformanceScore >= strengthBar {
		strengths = append(strengths, "Excellent recent performance record")
	}
	if c.SkillsScore >= strengthBar {
		strengths = append(strengths, "Skill set closely matches the target role")
	}
	if c.AlignmentScore >= strengthBar {
		strengths = append(strengths, "Already on a defined career path to the role")
	}

	if c.PerformanceScore < performanceWeakBar {
		weaknesses = append(weaknesses, "Performance history below the succession bar")
	}
	if c.ExperienceScore < experienceWeakBar {
		weaknesses = append(weaknesses, "Limited experience relevant to the role")
	}
	if c.SkillsScore < skillsWeakBar {
		weaknesses = append(weaknesses, "Open skill gaps against the target role")
	}
	return strengths, weaknesses
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
