package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/laddr/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	outputPermission    = 0600
)

// Run generates a synthetic organization, verifies it against the snapshot
// invariants, and writes it as a YAML document the engine can load at
// startup or through PUT /snapshot.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "generating organization snapshot",
		logger.Int("employees", config.Employees),
		logger.Int("departments", config.Departments),
		logger.Any("seed", config.Seed),
		logger.String("output", config.OutputFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Generate the document
	g := newGenerator(config.Seed, time.Now().UTC().Truncate(24*time.Hour))
	doc := g.generate(config.Departments, config.Employees)

	stats.Departments = len(doc.Departments)
	stats.Positions = len(doc.Positions)
	stats.Skills = len(doc.Skills)
	stats.Employees = len(doc.Employees)
	stats.CareerPaths = len(doc.CareerPaths)
	stats.SuccessionPlans = len(doc.SuccessionPlans)

	// Step 2: Verify the document builds a valid snapshot
	if err := verifyDocument(ctx, doc, g.now); err != nil {
		return fmt.Errorf("generated document failed verification: %w", err)
	}

	// Step 3: Save the document to file
	if err := saveDocument(ctx, config, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "generation completed successfully")
	return nil
}

// saveDocument writes the document as YAML.
func saveDocument(ctx context.Context, config *Config, doc interface{}) error {
	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "org_snapshot_" + timestamp + ".yaml"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(filename, data, outputPermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "snapshot saved to file",
		logger.String("filename", filename),
		logger.Int("bytes", len(data)))
	return nil
}

// displayFinalStats prints the final generation statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("departments", stats.Departments),
		logger.Int("positions", stats.Positions),
		logger.Int("skills", stats.Skills),
		logger.Int("employees", stats.Employees),
		logger.Int("careerPaths", stats.CareerPaths),
		logger.Int("successionPlans", stats.SuccessionPlans),
		logger.String("duration", stats.Duration.String()))
}
