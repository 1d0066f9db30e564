package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/okian/laddr/internal/adapters/http/api"
	"github.com/okian/laddr/internal/adapters/http/swagger"
	app "github.com/okian/laddr/internal/app"
	"github.com/okian/laddr/internal/config"
	"github.com/okian/laddr/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			// Test with environment variables
			_ = os.Setenv("LADDR_ADDR", ":8080")
			_ = os.Setenv("LADDR_SCAN_WORKERS", "4")
			_ = os.Setenv("LADDR_MAX_CANDIDATES", "15")
			defer func() {
				_ = os.Unsetenv("LADDR_ADDR")
				_ = os.Unsetenv("LADDR_SCAN_WORKERS")
				_ = os.Unsetenv("LADDR_MAX_CANDIDATES")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ScanWorkers, convey.ShouldEqual, 4)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithScanWorkers(8),
					app.WithMaxCandidates(20),
					app.WithReportCaps(3, 3, 5, 4),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			ctx := context.Background()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			swagger.Register(ctx, mux)
			apiServer := api.NewServer(svc, svc)
			apiServer.Register(ctx, mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should wire up cleanly", func() {
				convey.So(srv.Handler, convey.ShouldNotBeNil)
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
			})
		})

		convey.Convey("When updating system metrics", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
