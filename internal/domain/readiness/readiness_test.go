package readiness_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/readiness"
)

var analysisNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

// pathSnapshot builds one department with a mid -> senior path requiring
// two skills, a rating bar, and a computer science degree.
func pathSnapshot() *model.Snapshot {
	rating := 3.5
	education := "Computer Science"
	snap, err := model.NewSnapshot(analysisNow,
		[]*model.Employee{
			{
				ID: "e1", Name: "Alex", PositionID: "p1", DepartmentID: "d1", Active: true,
				HireDate:  analysisNow.AddDate(-3, 0, 0),
				Education: "BSc Computer Science",
				Skills: []model.EmployeeSkill{
					{SkillID: "s-go", Level: 4},
					{SkillID: "s-sql", Level: 1},
				},
				Reviews: []model.PerformanceReview{
					{Rating: 4.0, PeriodEnd: analysisNow.AddDate(0, -2, 0), Status: model.ReviewCompleted},
				},
			},
			{ID: "e2", Name: "Sam", DepartmentID: "d1", Active: true},
		},
		[]*model.Position{
			{ID: "p1", Title: "Engineer", DepartmentID: "d1", Level: model.LevelMid, Occupants: 1},
			{ID: "p2", Title: "Senior Engineer", DepartmentID: "d1", Level: model.LevelSenior},
			{ID: "p3", Title: "Analyst", DepartmentID: "d1", Level: model.LevelSenior},
		},
		[]*model.Department{{ID: "d1", Name: "Engineering"}},
		[]*model.Skill{
			{ID: "s-go", Name: "Go", Category: model.CategoryTechnical},
			{ID: "s-sql", Name: "SQL", Category: model.CategoryTechnical},
		},
		[]*model.CareerPath{
			{
				ID: "cp1", FromPositionID: "p1", ToPositionID: "p2", Active: true,
				MinYearsInRole: 2, MinTotalExperience: 2,
				MinPerformanceRating: &rating,
				RequiredEducation:    &education,
				RequiredSkills: []model.RequiredSkill{
					{SkillID: "s-go", MinLevel: 4, Mandatory: true},
					{SkillID: "s-sql", MinLevel: 3},
				},
			},
			{
				ID: "cp2", FromPositionID: "p1", ToPositionID: "p3", Active: true,
				MinYearsInRole: 10, MinTotalExperience: 10,
				RequiredSkills: []model.RequiredSkill{
					{SkillID: "s-sql", MinLevel: 5, Mandatory: true},
				},
			},
		},
		nil,
	)
	if err != nil {
		panic(err)
	}
	return snap
}

func TestAnalyze(t *testing.T) {
	Convey("Given a qualified mid-level engineer", t, func() {
		snap := pathSnapshot()

		Convey("When analyzing the senior path", func() {
			a, err := readiness.Analyze(snap, "e1", "cp1")

			Convey("Then every criterion should be met", func() {
				So(err, ShouldBeNil)
				So(a.MeetsExperience, ShouldBeTrue)
				So(a.MeetsTotalExperience, ShouldBeTrue)
				So(a.MeetsPerformance, ShouldBeTrue)
				So(a.MeetsEducation, ShouldBeTrue)
			})

			Convey("And half-met skills should land readiness at exactly 80", func() {
				// Criteria base 100 weighted 0.6 plus 50% skill
				// completion weighted 0.4.
				So(err, ShouldBeNil)
				So(a.SkillCompletion, ShouldEqual, 50)
				So(a.Readiness, ShouldEqual, 80.0)
			})

			Convey("And only the open optional gap should drive recommendations", func() {
				So(err, ShouldBeNil)
				So(len(a.SkillGaps), ShouldEqual, 2)
				// The SQL gap is optional, so no mandatory-skill line and
				// no criteria lines appear.
				So(a.Recommendations, ShouldBeEmpty)
			})
		})

		Convey("When analyzing the demanding analyst path", func() {
			a, err := readiness.Analyze(snap, "e1", "cp2")

			Convey("Then tenure and skill shortfalls should be spelled out", func() {
				So(err, ShouldBeNil)
				So(a.MeetsExperience, ShouldBeFalse)
				So(a.MeetsTotalExperience, ShouldBeFalse)
				So(len(a.Recommendations), ShouldEqual, 3)
				So(a.Recommendations[0], ShouldContainSubstring, "more years in current role")
				So(a.Recommendations[1], ShouldContainSubstring, "total experience")
				So(a.Recommendations[2], ShouldContainSubstring, "Develop SQL from level 1 to level 5")
			})
		})

		Convey("When the employee does not exist", func() {
			_, err := readiness.Analyze(snap, "ghost", "cp1")

			So(err, ShouldWrap, model.ErrEmployeeNotFound)
		})

		Convey("When the career path does not exist", func() {
			_, err := readiness.Analyze(snap, "e1", "cp-ghost")

			So(err, ShouldWrap, model.ErrCareerPathNotFound)
		})
	})
}

func TestAnalyzeAll(t *testing.T) {
	Convey("Given an employee with two outgoing paths", t, func() {
		snap := pathSnapshot()

		Convey("When analyzing all paths", func() {
			analyses, err := readiness.AnalyzeAll(snap, "e1")

			Convey("Then both paths should be evaluated, best first", func() {
				So(err, ShouldBeNil)
				So(len(analyses), ShouldEqual, 2)
				So(analyses[0].CareerPathID, ShouldEqual, "cp1")
				So(analyses[0].Readiness, ShouldBeGreaterThan, analyses[1].Readiness)
			})
		})

		Convey("When the employee has no current position", func() {
			_, err := readiness.AnalyzeAll(snap, "e2")

			So(err, ShouldWrap, model.ErrNoCurrentPosition)
		})

		Convey("When the employee does not exist", func() {
			_, err := readiness.AnalyzeAll(snap, "ghost")

			So(err, ShouldWrap, model.ErrEmployeeNotFound)
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given analyses with equal readiness", t, func() {
		analyses := []readiness.Analysis{
			{CareerPathID: "cp-b", Readiness: 70, Priority: 40},
			{CareerPathID: "cp-a", Readiness: 70, Priority: 40},
			{CareerPathID: "cp-c", Readiness: 70, Priority: 60},
		}

		Convey("When ranking them", func() {
			readiness.Rank(analyses)

			Convey("Then priority then path id should break the ties", func() {
				So(analyses[0].CareerPathID, ShouldEqual, "cp-c")
				So(analyses[1].CareerPathID, ShouldEqual, "cp-a")
				So(analyses[2].CareerPathID, ShouldEqual, "cp-b")
			})
		})
	})
}
