// Package risk scans a full organizational snapshot for talent, attrition,
// and succession risks. The three rule sets are independent; each is a
// pure scan over the snapshot, so repeated runs against the same snapshot
// yield identical ordered output.
package risk

import (
	"context"
	"sort"
	"time"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/types"
	"github.com/okian/laddr/internal/scan"
	"github.com/okian/laddr/pkg/logger"
)

// Risk type names shared across rule sets.
const (
	TypeNoProgression    = "No Career Progression"
	TypeStagnation       = "Career Stagnation"
	TypeKeyPerson        = "Key Person Risk"
	TypeAttrition        = "Attrition Risk"
	TypeNoSuccessionPlan = "No Succession Plan"
	TypeRetirement       = "Retirement Risk"
	TypeSinglePoint      = "Single Point of Failure"
)

// TalentRisk flags stalled career progression for one employee.
type TalentRisk struct {
	EmployeeID  string          `json:"employee_id"`
	RiskType    string          `json:"risk_type"`
	Level       types.RiskLevel `json:"risk_level"`
	Description string          `json:"description"`
	Action      string          `json:"action"`
}

// AttritionRisk scores one employee's likelihood of voluntary departure.
type AttritionRisk struct {
	EmployeeID string          `json:"employee_id"`
	Score      int             `json:"risk_score"`
	Level      types.RiskLevel `json:"risk_level"`
	Factors    []string        `json:"factors"`
	Action     string          `json:"action"`
}

// SuccessionRisk flags a position with fragile succession coverage.
type SuccessionRisk struct {
	PositionID  string          `json:"position_id"`
	RiskType    string          `json:"risk_type"`
	Level       types.RiskLevel `json:"risk_level"`
	Description string          `json:"description"`
	Action      string          `json:"action"`
}

// Report is the outcome of one organization-wide scan.
type Report struct {
	GeneratedAt      time.Time        `json:"generated_at"`
	EmployeesScanned int              `json:"employees_scanned"`
	TalentRisks      []TalentRisk     `json:"talent_risks"`
	AttritionRisks   []AttritionRisk  `json:"attrition_risks"`
	SuccessionRisks  []SuccessionRisk `json:"succession_risks"`
}

// Option applies a configuration option to the Predictor.
type Option func(*Predictor)

// WithWorkers sets the scan fan-out.
func WithWorkers(n int) Option {
	return func(p *Predictor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger sets a custom logger for the predictor.
func WithLogger(log logger.Logger) Option {
	return func(p *Predictor) {
		if log != nil {
			p.log = log
		}
	}
}

// Predictor runs the organization-wide risk scan.
type Predictor struct {
	workers int
	log     logger.Logger
}

// NewPredictor creates a Predictor with configuration options.
func NewPredictor(opts ...Option) *Predictor {
	p := &Predictor{workers: scan.DefaultWorkers()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// employeeFindings bundles the per-employee rule outcomes so the parallel
// map can collect them in order.
type employeeFindings struct {
	talent    []TalentRisk
	attrition *AttritionRisk
}

// Scan evaluates every active employee and every position. A single
// un-scoreable record is logged and skipped; it never aborts the scan.
func (p *Predictor) Scan(ctx context.Context, snap *model.Snapshot) (Report, error) {
	report := Report{GeneratedAt: snap.Now}

	var employees []*model.Employee
	for _, emp := range snap.Employees() {
		if emp.Active {
			employees = append(employees, emp)
		}
	}
	report.EmployeesScanned = len(employees)

	perEmployee, err := scan.Map(ctx, p.workers, employees, func(_ context.Context, emp *model.Employee) (employeeFindings, error) {
		defer func() {
			if r := recover(); r != nil && p.log != nil {
				p.log.Warn(ctx, "skipping un-scoreable employee", logger.String("employee", emp.ID), logger.Any("panic", r))
			}
		}()
		return employeeFindings{
			talent:    talentRisks(snap, emp),
			attrition: attritionRisk(snap, emp),
		}, nil
	})
	if err != nil {
		return Report{}, err
	}
	for _, f := range perEmployee {
		report.TalentRisks = append(report.TalentRisks, f.talent...)
		if f.attrition != nil {
			report.AttritionRisks = append(report.AttritionRisks, *f.attrition)
		}
	}

	perPosition, err := scan.Map(ctx, p.workers, snap.Positions(), func(_ context.Context, pos *model.Position) ([]SuccessionRisk, error) {
		return successionRisks(snap, pos), nil
	})
	if err != nil {
		return Report{}, err
	}
	for _, risks := range perPosition {
		report.SuccessionRisks = append(report.SuccessionRisks, risks...)
	}

	sortReport(&report)
	return report, nil
}

// sortReport orders each list most severe first with the subject id as the
// deterministic tie-break.
func sortReport(r *Report) {
	sort.Slice(r.TalentRisks, func(i, j int) bool {
		a, b := r.TalentRisks[i], r.TalentRisks[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() > b.Level.Rank()
		}
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		return a.RiskType < b.RiskType
	})
	sort.Slice(r.AttritionRisks, func(i, j int) bool {
		a, b := r.AttritionRisks[i], r.AttritionRisks[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.EmployeeID < b.EmployeeID
	})
	sort.Slice(r.SuccessionRisks, func(i, j int) bool {
		a, b := r.SuccessionRisks[i], r.SuccessionRisks[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() > b.Level.Rank()
		}
		if a.PositionID != b.PositionID {
			return a.PositionID < b.PositionID
		}
		return a.RiskType < b.RiskType
	})
}
