package config_test

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/okian/laddr/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, runtime.NumCPU())
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 10)
				convey.So(cfg.MaxRisksPerCategory, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("LADDR_ADDR", ":8080")
			_ = os.Setenv("LADDR_SCAN_WORKERS", "16")
			_ = os.Setenv("LADDR_MAX_CANDIDATES", "20")
			_ = os.Setenv("LADDR_MAX_RISKS_PER_CATEGORY", "12")
			_ = os.Setenv("LADDR_SNAPSHOT_PATH", "/var/lib/laddr/org.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 16)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 20)
				convey.So(cfg.MaxRisksPerCategory, convey.ShouldEqual, 12)
				convey.So(cfg.SnapshotPath, convey.ShouldEqual, "/var/lib/laddr/org.yaml")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
scan_workers: 24
max_candidates: 15
max_path_recommendations: 8
snapshot_path: "/data/org.yaml"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("LADDR_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 24)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 15)
				convey.So(cfg.MaxPathRecommendations, convey.ShouldEqual, 8)
				convey.So(cfg.SnapshotPath, convey.ShouldEqual, "/data/org.yaml")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
scan_workers: 24
max_candidates: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("LADDR_CONFIG", tmpFile)
			_ = os.Setenv("LADDR_ADDR", ":8080")        // This should override the file
			_ = os.Setenv("LADDR_SCAN_WORKERS", "32")   // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")      // Overridden by env
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 32)    // Overridden by env
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 15)  // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("LADDR_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("LADDR_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("LADDR_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
addr: ":9090"
scan_workers: 16
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("LADDR_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")             // From file
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 16)           // From file
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 10)         // From defaults
				convey.So(cfg.MaxPathRecommendations, convey.ShouldEqual, 5) // From defaults
				convey.So(cfg.MaxRisksPerCategory, convey.ShouldEqual, 8)    // From defaults
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("LADDR_SCAN_WORKERS", "invalid")
			_ = os.Setenv("LADDR_MAX_CANDIDATES", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderEdgeCases(t *testing.T) {
	convey.Convey("Given config loader edge cases", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with very large values", func() {
			_ = os.Setenv("LADDR_SCAN_WORKERS", "1000")
			_ = os.Setenv("LADDR_MAX_OPPORTUNITIES", "100000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle large values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 1000)
				convey.So(cfg.MaxOpportunities, convey.ShouldEqual, 100000)
			})
		})

		convey.Convey("When loading config with zero values", func() {
			_ = os.Setenv("LADDR_SCAN_WORKERS", "0")
			_ = os.Setenv("LADDR_MAX_CANDIDATES", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle zero values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 0)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with special characters in addr", func() {
			_ = os.Setenv("LADDR_ADDR", "localhost:8080")
			_ = os.Setenv("LADDR_ADDR", "0.0.0.0:9090")
			_ = os.Setenv("LADDR_ADDR", "[::1]:8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle various addr formats", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "[::1]:8080") // Last one wins
			})
		})

		convey.Convey("When loading config with YAML file containing comments", func() {
			yamlContent := `
# This is a comment
addr: ":9090"  # Inline comment
scan_workers: 24
# Another comment
max_candidates: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("LADDR_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse YAML with comments", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 24)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When loading config with YAML file containing empty values", func() {
			yamlContent := `
addr: ""
scan_workers:
max_candidates: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("LADDR_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return validation error for empty addr", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"LADDR_CONFIG",
		"LADDR_ADDR",
		"LADDR_SNAPSHOT_PATH",
		"LADDR_SCAN_WORKERS",
		"LADDR_MAX_CANDIDATES",
		"LADDR_MAX_PATH_RECOMMENDATIONS",
		"LADDR_MAX_SKILL_RECOMMENDATIONS",
		"LADDR_MAX_OPPORTUNITIES",
		"LADDR_MAX_RISKS_PER_CATEGORY",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "laddr-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
