package seed

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/laddr/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the seed tool.
func ShowHelp() {
	os.Stdout.WriteString(`Laddr Organization Seeder
=========================

Generates a synthetic organization snapshot for the laddr intelligence
engine. The output YAML can be loaded at startup via LADDR_SNAPSHOT_PATH
or pushed to a running instance with PUT /snapshot.

Usage:
  go run cmd/seed-org/main.go [options]

Options:
  -employees int
        Number of employees to generate (default 200)
  -departments int
        Number of departments to generate (default 4, max 8)
  -seed int
        Random seed; the same seed reproduces the same organization (default 1)
  -output string
        Output file for the snapshot (default: org_snapshot_TIMESTAMP.yaml)
  -log string
        Log file for generator output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate with default settings
  go run cmd/seed-org/main.go

  # Generate a larger organization
  go run cmd/seed-org/main.go -employees 2000 -departments 8

  # Reproducible output to a fixed location
  go run cmd/seed-org/main.go -seed 42 -output testdata/org.yaml
`)
}
