package seed

import "time"

// Config holds configuration for the organization generator
type Config struct {
	Employees   int    // Number of employees to generate
	Departments int    // Number of departments to generate
	Seed        int64  // Random seed; the same seed reproduces the same organization
	OutputFile  string // Output file for the snapshot document
	LogFile     string // Log file for generator output
	Verbose     bool   // Enable verbose logging
}

// Stats holds generation statistics
type Stats struct {
	Departments     int
	Positions       int
	Skills          int
	Employees       int
	CareerPaths     int
	SuccessionPlans int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
