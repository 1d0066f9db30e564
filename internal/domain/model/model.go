// Package model contains the read-only organizational snapshot entities
// consumed by the intelligence engine. The engine never mutates these;
// collaborators own their lifecycle.
package model

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// Hours-per-year divisor used for tenure arithmetic.
const hoursPerYear = 24 * 365.25

// PositionLevel is the ordinal seniority of a position.
type PositionLevel int

// Position levels, lowest first.
const (
	LevelJunior PositionLevel = iota
	LevelMid
	LevelSenior
	LevelLead
	LevelManager
	LevelDirector
)

var levelNames = map[PositionLevel]string{
	LevelJunior:   "Junior",
	LevelMid:      "Mid",
	LevelSenior:   "Senior",
	LevelLead:     "Lead",
	LevelManager:  "Manager",
	LevelDirector: "Director",
}

func (l PositionLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// ParseLevel maps a level name to its ordinal. Unknown names map to
// LevelJunior so malformed snapshots degrade instead of failing.
func ParseLevel(name string) PositionLevel {
	for level, n := range levelNames {
		if n == name {
			return level
		}
	}
	return LevelJunior
}

// MarshalYAML encodes the level as its name.
func (l PositionLevel) MarshalYAML() (interface{}, error) { return l.String(), nil }

// UnmarshalYAML decodes a level name.
func (l *PositionLevel) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	*l = ParseLevel(name)
	return nil
}

// MarshalJSON encodes the level as its name.
func (l PositionLevel) MarshalJSON() ([]byte, error) { return json.Marshal(l.String()) }

// UnmarshalJSON decodes a level name.
func (l *PositionLevel) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*l = ParseLevel(name)
	return nil
}

// ReviewStatus is the lifecycle state of a performance review.
type ReviewStatus string

// Review statuses.
const (
	ReviewCompleted  ReviewStatus = "Completed"
	ReviewInProgress ReviewStatus = "InProgress"
)

// RequestType classifies an employee request.
type RequestType string

// Request types relevant to the engine.
const (
	RequestPromotion    RequestType = "Promotion"
	RequestTransfer     RequestType = "Transfer"
	RequestTraining     RequestType = "Training"
	RequestCompensation RequestType = "Compensation"
)

// RequestStatus is the approval-workflow outcome of a request.
type RequestStatus string

// Request statuses.
const (
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
	RequestPending  RequestStatus = "Pending"
)

// SkillCategory groups skills for risk heuristics.
type SkillCategory string

// Skill categories.
const (
	CategoryTechnical  SkillCategory = "Technical"
	CategoryLeadership SkillCategory = "Leadership"
	CategorySoft       SkillCategory = "Soft"
	CategoryDomain     SkillCategory = "Domain"
)

// CandidateReady is the succession-plan candidate status that counts as
// immediately available for the single-point-of-failure rule.
const CandidateReady = "Ready"

// PerformanceReview is one review cycle outcome. Rating is meaningful
// only when Status is ReviewCompleted.
type PerformanceReview struct {
	Rating    float64      `yaml:"rating" json:"rating"`
	PeriodEnd time.Time    `yaml:"period_end" json:"period_end"`
	Status    ReviewStatus `yaml:"status" json:"status"`
}

// EmployeeSkill is a recorded proficiency for one skill.
type EmployeeSkill struct {
	SkillID    string    `yaml:"skill_id" json:"skill_id"`
	Level      int       `yaml:"level" json:"level"` // 1..5
	AcquiredAt time.Time `yaml:"acquired_at" json:"acquired_at"`
	AssessedAt time.Time `yaml:"assessed_at" json:"assessed_at"`
}

// Request is a past employee request and its workflow outcome.
type Request struct {
	Type        RequestType   `yaml:"type" json:"type"`
	Status      RequestStatus `yaml:"status" json:"status"`
	SubmittedAt time.Time     `yaml:"submitted_at" json:"submitted_at"`
}

// Employee is a point-in-time view of one employee record.
type Employee struct {
	ID           string              `yaml:"id" json:"id"`
	Name         string              `yaml:"name" json:"name"`
	HireDate     time.Time           `yaml:"hire_date" json:"hire_date"`
	PositionID   string              `yaml:"position_id" json:"position_id"`
	DepartmentID string              `yaml:"department_id" json:"department_id"`
	Active       bool                `yaml:"active" json:"active"`
	Education    string              `yaml:"education" json:"education"`
	Skills       []EmployeeSkill     `yaml:"skills" json:"skills"`
	Reviews      []PerformanceReview `yaml:"reviews" json:"reviews"`
	Requests     []Request           `yaml:"requests" json:"requests"`
}

// YearsInRole returns tenure in the current role in fractional years.
func (e *Employee) YearsInRole(now time.Time) float64 {
	if e.HireDate.IsZero() || now.Before(e.HireDate) {
		return 0
	}
	return now.Sub(e.HireDate).Hours() / hoursPerYear
}

// TotalExperience returns total career experience in fractional years.
//
// The platform tracks a single employer, so this is currently identical to
// YearsInRole. Kept as a separate accessor so multi-role tenure can be
// introduced without touching every criteria check.
func (e *Employee) TotalExperience(now time.Time) float64 {
	return e.YearsInRole(now)
}

// CompletedReviews returns the completed reviews ordered most recent first.
func (e *Employee) CompletedReviews() []PerformanceReview {
	out := make([]PerformanceReview, 0, len(e.Reviews))
	for _, r := range e.Reviews {
		if r.Status == ReviewCompleted {
			out = append(out, r)
		}
	}
	// Insertion sort; review histories are short.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].PeriodEnd.After(out[j-1].PeriodEnd); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// CurrentRating returns the most recent completed review's rating, or 0
// when the employee has no completed reviews yet.
func (e *Employee) CurrentRating() float64 {
	reviews := e.CompletedReviews()
	if len(reviews) == 0 {
		return 0
	}
	return reviews[0].Rating
}

// RecentAverageRating averages the n most recent completed ratings.
// The second return is false when there are no completed reviews.
func (e *Employee) RecentAverageRating(n int) (float64, bool) {
	reviews := e.CompletedReviews()
	if len(reviews) == 0 || n <= 0 {
		return 0, false
	}
	if n > len(reviews) {
		n = len(reviews)
	}
	sum := 0.0
	for _, r := range reviews[:n] {
		sum += r.Rating
	}
	return sum / float64(n), true
}

// RecentRatings returns up to n most recent completed ratings, newest
// first.
func (e *Employee) RecentRatings(n int) []float64 {
	reviews := e.CompletedReviews()
	if n > len(reviews) {
		n = len(reviews)
	}
	out := make([]float64, 0, n)
	for _, r := range reviews[:n] {
		out = append(out, r.Rating)
	}
	return out
}

// SkillLevel returns the recorded proficiency for a skill, or 0 when the
// employee has no record of it.
func (e *Employee) SkillLevel(skillID string) int {
	for _, s := range e.Skills {
		if s.SkillID == skillID {
			return s.Level
		}
	}
	return 0
}

// ApprovedPromotionSince reports whether the employee has an approved
// promotion request submitted at or after the cutoff.
func (e *Employee) ApprovedPromotionSince(cutoff time.Time) bool {
	for _, r := range e.Requests {
		if r.Type == RequestPromotion && r.Status == RequestApproved && !r.SubmittedAt.Before(cutoff) {
			return true
		}
	}
	return false
}

// RejectedRequestsSince counts requests of any type rejected at or after
// the cutoff.
func (e *Employee) RejectedRequestsSince(cutoff time.Time) int {
	count := 0
	for _, r := range e.Requests {
		if r.Status == RequestRejected && !r.SubmittedAt.Before(cutoff) {
			count++
		}
	}
	return count
}

// Skill is a catalog entry for one skill.
type Skill struct {
	ID       string        `yaml:"id" json:"id"`
	Name     string        `yaml:"name" json:"name"`
	Category SkillCategory `yaml:"category" json:"category"`
}

// Position is a point-in-time view of one position in the hierarchy.
type Position struct {
	ID           string        `yaml:"id" json:"id"`
	Title        string        `yaml:"title" json:"title"`
	DepartmentID string        `yaml:"department_id" json:"department_id"`
	Level        PositionLevel `yaml:"level" json:"level"`
	KeyPosition  bool          `yaml:"key_position" json:"key_position"`
	Occupants    int           `yaml:"occupants" json:"occupants"`
}

// Vacant reports whether the position currently has no occupant.
func (p *Position) Vacant() bool { return p.Occupants == 0 }

// Department is an organizational unit.
type Department struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// RequiredSkill is one skill requirement on a career path.
type RequiredSkill struct {
	SkillID   string `yaml:"skill_id" json:"skill_id"`
	MinLevel  int    `yaml:"min_level" json:"min_level"` // 1..5
	Mandatory bool   `yaml:"mandatory" json:"mandatory"`
}

// CareerPath is a defined transition between two positions and the
// criteria an employee must meet to take it.
type CareerPath struct {
	ID                   string          `yaml:"id" json:"id"`
	FromPositionID       string          `yaml:"from_position_id" json:"from_position_id"`
	ToPositionID         string          `yaml:"to_position_id" json:"to_position_id"`
	Active               bool            `yaml:"active" json:"active"`
	MinYearsInRole       float64         `yaml:"min_years_in_role" json:"min_years_in_role"`
	MinTotalExperience   float64         `yaml:"min_total_experience" json:"min_total_experience"`
	MinPerformanceRating *float64        `yaml:"min_performance_rating" json:"min_performance_rating,omitempty"`
	RequiredEducation    *string         `yaml:"required_education" json:"required_education,omitempty"`
	RequiredSkills       []RequiredSkill `yaml:"required_skills" json:"required_skills"`
}

// PlanCandidate is one ranked candidate on a succession plan.
type PlanCandidate struct {
	EmployeeID string `yaml:"employee_id" json:"employee_id"`
	Readiness  string `yaml:"readiness" json:"readiness"` // e.g. "Ready", "1-2 Years"
}

// SuccessionPlan associates a position with its ranked candidates.
type SuccessionPlan struct {
	ID         string          `yaml:"id" json:"id"`
	PositionID string          `yaml:"position_id" json:"position_id"`
	Active     bool            `yaml:"active" json:"active"`
	Candidates []PlanCandidate `yaml:"candidates" json:"candidates"`
}
