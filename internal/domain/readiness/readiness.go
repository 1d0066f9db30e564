// Package readiness evaluates how prepared an employee is for a specific
// career path: four criteria checks plus skill-gap aggregation, combined
// into a single explainable percentage.
package readiness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/skillgap"
)

// Composite weighting constants. Criteria and skill weights are business
// policy and intentionally not configurable per path.
const (
	criteriaWeight = 0.6
	skillsWeight   = 0.4
	criteriaCount  = 4

	maxSkillRecommendations = 3
)

// Priority bucket constants for ranking multi-path recommendation lists.
const (
	readinessHighBucket = 50
	readinessMidBucket  = 30
	readinessLowBucket  = 10
	readinessHighBar    = 80.0
	readinessMidBar     = 60.0

	performanceHighBucket = 20
	performanceLowBucket  = 10
	performanceHighBar    = 4.0

	tenureHighBucket = 15
	tenureLowBucket  = 10
	tenureHighBar    = 3.0
)

// Analysis is the outcome of evaluating one (employee, career path) pair.
// Created fresh per call; never stored.
type Analysis struct {
	EmployeeID       string `json:"employee_id"`
	CareerPathID     string `json:"career_path_id"`
	TargetPositionID string `json:"target_position_id"`

	MeetsExperience      bool `json:"meets_experience"`
	MeetsTotalExperience bool `json:"meets_total_experience"`
	MeetsPerformance     bool `json:"meets_performance"`
	MeetsEducation       bool `json:"meets_education"`

	YearsInRole     float64 `json:"years_in_role"`
	TotalExperience float64 `json:"total_experience"`
	CurrentRating   float64 `json:"current_rating"`

	SkillGaps       []skillgap.Gap `json:"skill_gaps"`
	SkillCompletion float64        `json:"skill_completion"`
	Readiness       float64        `json:"readiness"`

	// Priority is the secondary ranking score used to break readiness
	// ties in multi-path lists.
	Priority int `json:"priority"`

	Recommendations []string `json:"recommendations"`
}

// Analyze evaluates one employee against one career path. It fails with a
// model not-found sentinel when either snapshot record is absent; missing
// reviews, skills, or education degrade sub-scores instead of erroring.
func Analyze(snap *model.Snapshot, employeeID, careerPathID string) (Analysis, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return Analysis{}, fmt.Errorf("analyze readiness %q: %w", employeeID, model.ErrEmployeeNotFound)
	}
	path, ok := snap.CareerPath(careerPathID)
	if !ok {
		return Analysis{}, fmt.Errorf("analyze readiness %q: %w", careerPathID, model.ErrCareerPathNotFound)
	}
	return analyze(snap, emp, path), nil
}

// AnalyzeAll evaluates the employee against every active career path from
// their current position, ranked best first: readiness descending, then
// priority descending, then path id for determinism.
func AnalyzeAll(snap *model.Snapshot, employeeID string) ([]Analysis, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return nil, fmt.Errorf("analyze readiness %q: %w", employeeID, model.ErrEmployeeNotFound)
	}
	if emp.PositionID == "" {
		return nil, fmt.Errorf("analyze readiness %q: %w", employeeID, model.ErrNoCurrentPosition)
	}

	paths := snap.ActivePathsFrom(emp.PositionID)
	out := make([]Analysis, 0, len(paths))
	for _, path := range paths {
		out = append(out, analyze(snap, emp, path))
	}
	Rank(out)
	return out, nil
}

// Rank orders analyses best first in place.
func Rank(analyses []Analysis) {
	sort.Slice(analyses, func(i, j int) bool {
		if analyses[i].Readiness != analyses[j].Readiness {
			return analyses[i].Readiness > analyses[j].Readiness
		}
		if analyses[i].Priority != analyses[j].Priority {
			return analyses[i].Priority > analyses[j].Priority
		}
		return analyses[i].CareerPathID < analyses[j].CareerPathID
	})
}

func analyze(snap *model.Snapshot, emp *model.Employee, path *model.CareerPath) Analysis {
	a := Analysis{
		EmployeeID:       emp.ID,
		CareerPathID:     path.ID,
		TargetPositionID: path.ToPositionID,
		YearsInRole:      emp.YearsInRole(snap.Now),
		TotalExperience:  emp.TotalExperience(snap.Now),
		CurrentRating:    emp.CurrentRating(),
	}

	a.MeetsExperience = a.YearsInRole >= path.MinYearsInRole
	a.MeetsTotalExperience = a.TotalExperience >= path.MinTotalExperience
	a.MeetsPerformance = path.MinPerformanceRating == nil || a.CurrentRating >= *path.MinPerformanceRating
	a.MeetsEducation = path.RequiredEducation == nil || holdsEducation(emp.Education, *path.RequiredEducation)

	a.SkillGaps = skillgap.Compute(emp, path.RequiredSkills)
	a.SkillCompletion = skillgap.CompletionPercent(a.SkillGaps)

	met := 0
	for _, ok := range []bool{a.MeetsExperience, a.MeetsTotalExperience, a.MeetsPerformance, a.MeetsEducation} {
		if ok {
			met++
		}
	}
	base := 100 * float64(met) / criteriaCount
	a.Readiness = base*criteriaWeight + a.SkillCompletion*skillsWeight
	a.Priority = priorityScore(a.Readiness, a.CurrentRating, a.YearsInRole)
	a.Recommendations = recommend(snap, a, path)

	return a
}

// priorityScore buckets readiness, performance, and tenure into an integer
// tie-break score.
func priorityScore(readiness, rating, yearsInRole float64) int {
	score := readinessLowBucket
	switch {
	case readiness >= readinessHighBar:
		score = readinessHighBucket
	case readiness >= readinessMidBar:
		score = readinessMidBucket
	}
	if rating >= performanceHighBar {
		score += performanceHighBucket
	} else {
		score += performanceLowBucket
	}
	if yearsInRole >= tenureHighBar {
		score += tenureHighBucket
	} else {
		score += tenureLowBucket
	}
	return score
}

// recommend emits one line per unmet criterion with the numeric delta
// still needed, plus one line for each of the top open mandatory gaps.
func recommend(snap *model.Snapshot, a Analysis, path *model.CareerPath) []string {
	var recs []string
	if !a.MeetsExperience {
		recs = append(recs, fmt.Sprintf("Gain %.1f more years in current role (%.1f of %.1f required)",
			path.MinYearsInRole-a.YearsInRole, a.YearsInRole, path.MinYearsInRole))
	}
	if !a.MeetsTotalExperience {
		recs = append(recs, fmt.Sprintf("Gain %.1f more years of total experience (%.1f of %.1f required)",
			path.MinTotalExperience-a.TotalExperience, a.TotalExperience, path.MinTotalExperience))
	}
	if !a.MeetsPerformance {
		recs = append(recs, fmt.Sprintf("Raise performance rating to %.1f (currently %.1f)",
			*path.MinPerformanceRating, a.CurrentRating))
	}
	if !a.MeetsEducation {
		recs = append(recs, fmt.Sprintf("Obtain %s or an equivalent credential", *path.RequiredEducation))
	}
	open := skillgap.MandatoryOpen(a.SkillGaps)
	if len(open) > maxSkillRecommendations {
		open = open[:maxSkillRecommendations]
	}
	for _, g := range open {
		recs = append(recs, fmt.Sprintf("Develop %s from level %d to level %d",
			snap.SkillName(g.SkillID), g.CurrentLevel, g.RequiredLevel))
	}
	return recs
}

// holdsEducation checks a required credential against the recorded degree
// text with a case-insensitive substring match.
func holdsEducation(recorded, required string) bool {
	if recorded == "" {
		return false
	}
	return strings.Contains(strings.ToLower(recorded), strings.ToLower(required))
}
