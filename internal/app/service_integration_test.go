package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/laddr/internal/app"
	"github.com/okian/laddr/internal/domain/types"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a started service with a loaded organization", t, func() {
		svc := service.New(
			service.WithScanWorkers(2),
			service.WithMaxCandidates(5),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		So(svc.Start(ctx), ShouldBeNil)
		_, err := svc.ReplaceSnapshot(ctx, orgDocument())
		So(err, ShouldBeNil)

		Convey("When analyzing readiness for a strong mid-level engineer", func() {
			analyses, err := svc.Readiness(ctx, "e1")

			Convey("Then the engineer -> senior path should rank first and score high", func() {
				So(err, ShouldBeNil)
				So(len(analyses), ShouldBeGreaterThan, 0)
				So(analyses[0].CareerPathID, ShouldEqual, "cp1")
				So(analyses[0].MeetsExperience, ShouldBeTrue)
				So(analyses[0].MeetsPerformance, ShouldBeTrue)
				So(analyses[0].Readiness, ShouldBeGreaterThan, 80)
			})
		})

		Convey("When building a roadmap to the vacant lead position", func() {
			rm, err := svc.Roadmap(ctx, "e1", "p-lead")

			Convey("Then it should chain the two defined paths", func() {
				So(err, ShouldBeNil)
				So(len(rm.Steps), ShouldEqual, 2)
				So(rm.Steps[0].ToPositionID, ShouldEqual, "p-sen")
				So(rm.Steps[1].ToPositionID, ShouldEqual, "p-lead")
				So(rm.TotalMonths, ShouldEqual, rm.Steps[0].EstimatedMonths+rm.Steps[1].EstimatedMonths)
			})
		})

		Convey("When searching succession candidates for the senior position", func() {
			candidates, err := svc.Candidates(ctx, "p-sen")

			Convey("Then the strong engineer should clear the threshold", func() {
				So(err, ShouldBeNil)
				So(len(candidates), ShouldBeGreaterThan, 0)
				So(candidates[0].EmployeeID, ShouldEqual, "e1")
				So(candidates[0].OverallScore, ShouldBeGreaterThanOrEqualTo, 60)
			})

			Convey("And the current occupant should not compete for their own seat", func() {
				So(err, ShouldBeNil)
				for _, c := range candidates {
					So(c.EmployeeID, ShouldNotEqual, "e3")
				}
			})
		})

		Convey("When running the risk scan", func() {
			report, err := svc.RiskReport(ctx)

			Convey("Then it should scan every active employee", func() {
				So(err, ShouldBeNil)
				So(report.EmployeesScanned, ShouldEqual, 3)
			})

			Convey("And repeating the scan should give identical results", func() {
				So(err, ShouldBeNil)
				again, err := svc.RiskReport(ctx)
				So(err, ShouldBeNil)
				So(again.TalentRisks, ShouldResemble, report.TalentRisks)
				So(again.AttritionRisks, ShouldResemble, report.AttritionRisks)
				So(again.SuccessionRisks, ShouldResemble, report.SuccessionRisks)
			})
		})

		Convey("When building the employee report", func() {
			report, err := svc.EmployeeReport(ctx, "e1")

			Convey("Then it should carry trend and recommendations", func() {
				So(err, ShouldBeNil)
				So(report.EmployeeID, ShouldEqual, "e1")
				So(report.Trend, ShouldEqual, types.TrendStable)
				So(len(report.PathRecommendations), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When building the manager report", func() {
			report, err := svc.ManagerReport(ctx, "d1")

			Convey("Then it should cover the whole active team", func() {
				So(err, ShouldBeNil)
				So(report.TeamSize, ShouldEqual, 3)
				So(len(report.Members), ShouldEqual, 3)
			})
		})

		Convey("When building the HR report", func() {
			report, err := svc.HRReport(ctx)

			Convey("Then coverage should reflect the planned key position", func() {
				So(err, ShouldBeNil)
				So(report.EmployeeCount, ShouldEqual, 3)
				So(report.PositionCount, ShouldEqual, 3)
				So(report.KeyPositionCoverage, ShouldEqual, 100.0)
			})
		})
	})
}
