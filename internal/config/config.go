// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// SnapshotPath points at an organizational snapshot YAML file loaded at
	// startup. Empty means the service starts without data and waits for
	// PUT /snapshot.
	SnapshotPath string `koanf:"snapshot_path"`

	// ScanWorkers sets the fan-out for organization-wide scans.
	ScanWorkers int `koanf:"scan_workers"`

	// MaxCandidates caps GET /positions/{id}/candidates.
	MaxCandidates int `koanf:"max_candidates"`

	// MaxPathRecommendations caps the career paths ranked per employee.
	MaxPathRecommendations int `koanf:"max_path_recommendations"`

	// MaxSkillRecommendations caps development suggestions per report.
	MaxSkillRecommendations int `koanf:"max_skill_recommendations"`

	// MaxOpportunities caps opportunity listings per employee report.
	MaxOpportunities int `koanf:"max_opportunities"`

	// MaxRisksPerCategory caps each risk list in reports and GET /risks.
	MaxRisksPerCategory int `koanf:"max_risks_per_category"`
}

// New creates a Config using provided options. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use (e.g.,
// loading from env/files) and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:                "info",
		Addr:                    ":9080",
		SnapshotPath:            "",
		ScanWorkers:             runtime.NumCPU(),
		MaxCandidates:           10,
		MaxPathRecommendations:  5,
		MaxSkillRecommendations: 5,
		MaxOpportunities:        10,
		MaxRisksPerCategory:     8,
	}
	return c
}
