// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/okian/laddr/internal/adapters/repository"
	"github.com/okian/laddr/internal/domain/insight"
	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/readiness"
	"github.com/okian/laddr/internal/domain/risk"
	"github.com/okian/laddr/internal/domain/roadmap"
	"github.com/okian/laddr/internal/domain/succession"
	"github.com/okian/laddr/pkg/logger"
	"github.com/okian/laddr/pkg/metrics"
)

// Service implements the API dependencies for the intelligence engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	predictor  *risk.Predictor
	aggregator *insight.Aggregator

	// Configuration
	scanWorkers      int
	maxCandidates    int
	maxPaths         int
	maxSkills        int
	maxOpportunities int
	maxRisks         int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithScanWorkers sets the fan-out for organization-wide scans.
func WithScanWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.scanWorkers = n
		}
	}
}

// WithMaxCandidates caps the succession candidate list.
func WithMaxCandidates(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxCandidates = n
		}
	}
}

// WithReportCaps overrides the report list caps. Non-positive values keep
// the defaults.
func WithReportCaps(maxPaths, maxSkills, maxOpportunities, maxRisks int) Option {
	return func(s *Service) {
		if maxPaths > 0 {
			s.maxPaths = maxPaths
		}
		if maxSkills > 0 {
			s.maxSkills = maxSkills
		}
		if maxOpportunities > 0 {
			s.maxOpportunities = maxOpportunities
		}
		if maxRisks > 0 {
			s.maxRisks = maxRisks
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scanWorkers:      runtime.NumCPU(),
		maxCandidates:    10,
		maxPaths:         5,
		maxSkills:        5,
		maxOpportunities: 10,
		maxRisks:         8,
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting intelligence engine...")

	s.store = repository.NewMemoryStore()
	s.predictor = risk.NewPredictor(
		risk.WithWorkers(s.scanWorkers),
		risk.WithLogger(s.logger),
	)
	s.aggregator = insight.New(
		insight.WithWorkers(s.scanWorkers),
		insight.WithLogger(s.logger),
		insight.WithCaps(s.maxPaths, s.maxSkills, s.maxOpportunities, s.maxRisks),
	)

	s.started = true
	s.logger.Info(ctx, "intelligence engine started",
		logger.Int("scanWorkers", s.scanWorkers),
		logger.Int("maxCandidates", s.maxCandidates),
		logger.Int("maxRisks", s.maxRisks),
	)

	return nil
}

// Stop gracefully shuts down the service. The engine holds no background
// workers; the snapshot is simply released with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "intelligence engine stopped")
}

// LoadSnapshotFile loads an organizational snapshot from a YAML file.
func (s *Service) LoadSnapshotFile(ctx context.Context, path string) error {
	snap, err := s.store.LoadFile(ctx, path)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "snapshot_load")
		return err
	}
	s.logger.Info(ctx, "snapshot loaded from file",
		logger.String("path", path),
		logger.Int("employees", snap.EmployeeCount()),
		logger.Int("positions", snap.PositionCount()),
	)
	return nil
}

// ReplaceSnapshot validates and atomically swaps in a new snapshot.
func (s *Service) ReplaceSnapshot(ctx context.Context, doc *repository.Document) (*model.Snapshot, error) {
	snap, err := s.store.Replace(ctx, doc)
	if err != nil {
		s.logger.Warn(ctx, "snapshot rejected", logger.Error(err))
		return nil, err
	}
	s.logger.Info(ctx, "snapshot replaced",
		logger.Int("employees", snap.EmployeeCount()),
		logger.Int("positions", snap.PositionCount()),
		logger.Int("careerPaths", snap.PathCount()),
	)
	return snap, nil
}

// Readiness evaluates every active path from the employee's current
// position, ranked best first.
func (s *Service) Readiness(ctx context.Context, employeeID string) ([]readiness.Analysis, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	analyses, err := readiness.AnalyzeAll(snap, employeeID)
	if err != nil {
		metrics.RecordErrorByComponent("readiness", "analyze")
		return nil, err
	}
	metrics.RecordAnalysis("readiness", float64(time.Since(start).Milliseconds()))

	if len(analyses) > s.maxPaths {
		analyses = analyses[:s.maxPaths]
	}
	return analyses, nil
}

// Roadmap builds a direct or two-hop route to the target position.
func (s *Service) Roadmap(ctx context.Context, employeeID, targetPositionID string) (roadmap.Roadmap, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return roadmap.Roadmap{}, err
	}

	start := time.Now()
	rm, err := roadmap.Build(snap, employeeID, targetPositionID)
	if err != nil {
		metrics.RecordErrorByComponent("roadmap", "build")
		return roadmap.Roadmap{}, err
	}
	metrics.RecordAnalysis("roadmap", float64(time.Since(start).Milliseconds()))
	return rm, nil
}

// Candidates scores every active employee against the target position and
// returns those clearing the smart-candidate threshold, best first.
func (s *Service) Candidates(ctx context.Context, positionID string) ([]succession.Candidate, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	candidates, err := succession.SmartCandidates(snap, positionID, s.maxCandidates)
	if err != nil {
		metrics.RecordErrorByComponent("succession", "candidates")
		return nil, err
	}
	metrics.RecordAnalysis("succession", float64(time.Since(start).Milliseconds()))
	return candidates, nil
}

// RiskReport runs the organization-wide risk scan.
func (s *Service) RiskReport(ctx context.Context) (risk.Report, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return risk.Report{}, err
	}

	start := time.Now()
	report, err := s.predictor.Scan(ctx, snap)
	if err != nil {
		metrics.RecordErrorByComponent("risk", "scan")
		return risk.Report{}, err
	}
	metrics.RecordRiskScan(float64(time.Since(start).Milliseconds()))
	metrics.UpdateRisksFound("talent", len(report.TalentRisks))
	metrics.UpdateRisksFound("attrition", len(report.AttritionRisks))
	metrics.UpdateRisksFound("succession", len(report.SuccessionRisks))

	// Gauges reflect the full scan; the response is capped per category.
	if len(report.TalentRisks) > s.maxRisks {
		report.TalentRisks = report.TalentRisks[:s.maxRisks]
	}
	if len(report.AttritionRisks) > s.maxRisks {
		report.AttritionRisks = report.AttritionRisks[:s.maxRisks]
	}
	if len(report.SuccessionRisks) > s.maxRisks {
		report.SuccessionRisks = report.SuccessionRisks[:s.maxRisks]
	}
	return report, nil
}

// EmployeeReport builds the individual dashboard for one employee.
func (s *Service) EmployeeReport(ctx context.Context, employeeID string) (insight.EmployeeReport, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return insight.EmployeeReport{}, err
	}

	start := time.Now()
	report, err := s.aggregator.EmployeeReport(ctx, snap, employeeID)
	if err != nil {
		metrics.RecordErrorByComponent("insight", "employee_report")
		return insight.EmployeeReport{}, err
	}
	metrics.RecordAnalysis("employee_report", float64(time.Since(start).Milliseconds()))
	return report, nil
}

// ManagerReport builds the team view for one department.
func (s *Service) ManagerReport(ctx context.Context, departmentID string) (insight.ManagerReport, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return insight.ManagerReport{}, err
	}

	start := time.Now()
	report, err := s.aggregator.ManagerReport(ctx, snap, departmentID)
	if err != nil {
		metrics.RecordErrorByComponent("insight", "manager_report")
		return insight.ManagerReport{}, err
	}
	metrics.RecordAnalysis("manager_report", float64(time.Since(start).Milliseconds()))
	return report, nil
}

// HRReport builds the organization-wide view for HR/admin users.
func (s *Service) HRReport(ctx context.Context) (insight.HRReport, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return insight.HRReport{}, err
	}

	start := time.Now()
	report, err := s.aggregator.HRReport(ctx, snap)
	if err != nil {
		metrics.RecordErrorByComponent("insight", "hr_report")
		return insight.HRReport{}, err
	}
	metrics.RecordAnalysis("hr_report", float64(time.Since(start).Milliseconds()))
	metrics.UpdateKeyPositionCoverage(report.KeyPositionCoverage)
	return report, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"scanWorkers":     s.scanWorkers,
		"maxCandidates":   s.maxCandidates,
		"maxRisks":        s.maxRisks,
		"snapshot_loaded": false,
	}

	if s.store == nil {
		return stats
	}

	snap, err := s.store.Current(context.Background())
	if err != nil {
		return stats
	}

	stats["snapshot_loaded"] = true
	stats["snapshotAt"] = snap.Now
	stats["employees"] = snap.EmployeeCount()
	stats["positions"] = snap.PositionCount()
	stats["careerPaths"] = snap.PathCount()

	return stats
}
