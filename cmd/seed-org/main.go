package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/laddr/internal/seed"
)

// Default configuration constants.
const (
	defaultEmployees   = 200
	defaultDepartments = 4
	defaultSeed        = 1
	defaultRunTimeout  = 2 * time.Minute
)

func main() {
	var (
		employees   = flag.Int("employees", defaultEmployees, "Number of employees to generate")
		departments = flag.Int("departments", defaultDepartments, "Number of departments to generate")
		seedValue   = flag.Int64("seed", defaultSeed, "Random seed; the same seed reproduces the same organization")
		outputFile  = flag.String("output", "", "Output file for the snapshot (default: org_snapshot_TIMESTAMP.yaml)")
		logFile     = flag.String("log", "", "Log file for generator output (default: seed_log_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seed.ShowHelp()
		return
	}

	// Setup logging
	if err := seed.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create generator configuration
	config := &seed.Config{
		Employees:   *employees,
		Departments: *departments,
		Seed:        *seedValue,
		OutputFile:  *outputFile,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the generator
	if err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}
