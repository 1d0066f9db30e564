// Package insight composes the scoring components into role-scoped
// reports: an employee's own dashboard, a manager's team view, and the
// HR/admin organization view. Every list a report carries is capped before
// returning; callers never receive unbounded collections.
package insight

import (
	"time"

	"github.com/okian/laddr/internal/domain/readiness"
	"github.com/okian/laddr/internal/domain/risk"
	"github.com/okian/laddr/internal/domain/types"
	"github.com/okian/laddr/internal/scan"
	"github.com/okian/laddr/pkg/logger"
)

// Default report caps.
const (
	defaultMaxPaths         = 5
	defaultMaxSkills        = 5
	defaultMaxOpportunities = 10
	defaultMaxRisks         = 8
	defaultMaxInsights      = 5
)

// Opportunity kinds.
const (
	OpportunityVacancy    = "Vacancy"
	OpportunityCandidacy  = "Succession Candidacy"
	OpportunityCrossTrain = "Cross-Training"
)

// SkillRecommendation is one deduplicated development suggestion. When
// several paths require the same skill the highest required level wins and
// the reasons accumulate.
type SkillRecommendation struct {
	SkillID      string   `json:"skill_id"`
	SkillName    string   `json:"skill_name"`
	CurrentLevel int      `json:"current_level"`
	TargetLevel  int      `json:"target_level"`
	Mandatory    bool     `json:"mandatory"`
	Reasons      []string `json:"reasons"`
}

// Opportunity is one suggested opening for an employee.
type Opportunity struct {
	Kind       string  `json:"kind"`
	PositionID string  `json:"position_id"`
	Title      string  `json:"title"`
	MatchScore float64 `json:"match_score,omitempty"`
	Detail     string  `json:"detail"`
}

// EmployeeReport is the individual dashboard payload.
type EmployeeReport struct {
	EmployeeID           string                `json:"employee_id"`
	GeneratedAt          time.Time             `json:"generated_at"`
	Trend                types.Trend           `json:"performance_trend"`
	PathRecommendations  []readiness.Analysis  `json:"path_recommendations"`
	SkillRecommendations []SkillRecommendation `json:"skill_recommendations"`
	Opportunities        []Opportunity         `json:"opportunities"`
	Insights             []string              `json:"insights"`
}

// TeamMember is one row of a manager's team view.
type TeamMember struct {
	EmployeeID   string      `json:"employee_id"`
	Name         string      `json:"name"`
	Trend        types.Trend `json:"performance_trend"`
	TopReadiness float64     `json:"top_readiness"`
	BestPathID   string      `json:"best_path_id,omitempty"`
}

// ManagerReport is the team-scoped view for one department.
type ManagerReport struct {
	DepartmentID   string               `json:"department_id"`
	GeneratedAt    time.Time            `json:"generated_at"`
	TeamSize       int                  `json:"team_size"`
	Members        []TeamMember         `json:"members"`
	TalentRisks    []risk.TalentRisk    `json:"talent_risks"`
	AttritionRisks []risk.AttritionRisk `json:"attrition_risks"`
}

// HRReport is the organization-wide view for HR/admin users.
type HRReport struct {
	GeneratedAt         time.Time             `json:"generated_at"`
	EmployeeCount       int                   `json:"employee_count"`
	PositionCount       int                   `json:"position_count"`
	KeyPositionCoverage float64               `json:"key_position_coverage"`
	TalentRisks         []risk.TalentRisk     `json:"talent_risks"`
	AttritionRisks      []risk.AttritionRisk  `json:"attrition_risks"`
	SuccessionRisks     []risk.SuccessionRisk `json:"succession_risks"`
	Recommendations     []string              `json:"recommendations"`
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithWorkers sets the fan-out for org-wide composition.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithLogger sets a custom logger for the aggregator.
func WithLogger(log logger.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

// WithCaps overrides the report list caps. Non-positive values keep the
// defaults.
func WithCaps(maxPaths, maxSkills, maxOpportunities, maxRisks int) Option {
	return func(a *Aggregator) {
		if maxPaths > 0 {
			a.maxPaths = maxPaths
		}
		if maxSkills > 0 {
			a.maxSkills = maxSkills
		}
		if maxOpportunities > 0 {
			a.maxOpportunities = maxOpportunities
		}
		if maxRisks > 0 {
			a.maxRisks = maxRisks
		}
	}
}

// Aggregator composes readiness, succession, risk, and roadmap outputs
// into role-scoped reports.
type Aggregator struct {
	workers          int
	maxPaths         int
	maxSkills        int
	maxOpportunities int
	maxRisks         int
	maxInsights      int

	predictor *risk.Predictor
	log       logger.Logger
}

// New creates an Aggregator with configuration options.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		workers:          scan.DefaultWorkers(),
		maxPaths:         defaultMaxPaths,
		maxSkills:        defaultMaxSkills,
		maxOpportunities: defaultMaxOpportunities,
		maxRisks:         defaultMaxRisks,
		maxInsights:      defaultMaxInsights,
	}
	for _, opt := range opts {
		opt(a)
	}
	riskOpts := []risk.Option{risk.WithWorkers(a.workers)}
	if a.log != nil {
		riskOpts = append(riskOpts, risk.WithLogger(a.log))
	}
	a.predictor = risk.NewPredictor(riskOpts...)
	return a
}

func capTalent(list []risk.TalentRisk, n int) []risk.TalentRisk {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func capAttrition(list []risk.AttritionRisk, n int) []risk.AttritionRisk {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func capSuccession(list []risk.SuccessionRisk, n int) []risk.SuccessionRisk {
	if len(list) > n {
		return list[:n]
	}
	return list
}
