package succession_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/internal/domain/succession"
)

var scoreNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

// orgSnapshot builds two departments: engineering with a defined path into
// the senior seat, and sales with an outsider candidate.
func orgSnapshot() *model.Snapshot {
	snap, err := model.NewSnapshot(scoreNow,
		[]*model.Employee{
			{
				ID: "e-strong", Name: "Alex", PositionID: "p-eng", DepartmentID: "d-eng", Active: true,
				HireDate: scoreNow.AddDate(-6, 0, 0),
				Skills:   []model.EmployeeSkill{{SkillID: "s-go", Level: 5}},
				Reviews: []model.PerformanceReview{
					{Rating: 5.0, PeriodEnd: scoreNow.AddDate(0, -2, 0), Status: model.ReviewCompleted},
					{Rating: 5.0, PeriodEnd: scoreNow.AddDate(0, -8, 0), Status: model.ReviewCompleted},
				},
			},
			{
				ID: "e-partial", Name: "Sam", PositionID: "p-eng", DepartmentID: "d-eng", Active: true,
				HireDate: scoreNow.AddDate(-4, 0, 0),
				Skills:   []model.EmployeeSkill{{SkillID: "s-go", Level: 2}},
				Reviews: []model.PerformanceReview{
					{Rating: 4.0, PeriodEnd: scoreNow.AddDate(0, -3, 0), Status: model.ReviewCompleted},
				},
			},
			{
				ID: "e-outside", Name: "Robin", PositionID: "p-sales", DepartmentID: "d-sales", Active: true,
				HireDate: scoreNow.AddDate(-1, 0, 0),
			},
			{
				ID: "e-occupant", Name: "Jordan", PositionID: "p-sen", DepartmentID: "d-eng", Active: true,
				HireDate: scoreNow.AddDate(-8, 0, 0),
				Reviews: []model.PerformanceReview{
					{Rating: 4.5, PeriodEnd: scoreNow.AddDate(0, -1, 0), Status: model.ReviewCompleted},
				},
			},
			{
				ID: "e-gone", Name: "Casey", PositionID: "p-eng", DepartmentID: "d-eng", Active: false,
				HireDate: scoreNow.AddDate(-9, 0, 0),
			},
		},
		[]*model.Position{
			{ID: "p-eng", Title: "Engineer", DepartmentID: "d-eng", Level: model.LevelMid, Occupants: 2},
			{ID: "p-sen", Title: "Senior Engineer", DepartmentID: "d-eng", Level: model.LevelSenior, KeyPosition: true, Occupants: 1},
			{ID: "p-sales", Title: "Account Executive", DepartmentID: "d-sales", Level: model.LevelJunior, Occupants: 1},
		},
		[]*model.Department{
			{ID: "d-eng", Name: "Engineering"},
			{ID: "d-sales", Name: "Sales"},
		},
		[]*model.Skill{{ID: "s-go", Name: "Go", Category: model.CategoryTechnical}},
		[]*model.CareerPath{
			{
				ID: "cp1", FromPositionID: "p-eng", ToPositionID: "p-sen", Active: true,
				MinYearsInRole: 2,
				RequiredSkills: []model.RequiredSkill{
					{SkillID: "s-go", MinLevel: 4, Mandatory: true},
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

func TestScore(t *testing.T) {
	Convey("Given the organization snapshot", t, func() {
		snap := orgSnapshot()

		Convey("When scoring the strong internal candidate", func() {
			c, err := succession.Score(snap, "e-strong", "p-sen")

			Convey("Then every factor should max out", func() {
				So(err, ShouldBeNil)
				// Tenure over five years, same department, one level
				// below: 40+30+30.
				So(c.ExperienceScore, ShouldEqual, 100)
				// Two 5.0 reviews map onto the top of the rating scale.
				So(c.PerformanceScore, ShouldEqual, 100)
				// The direct path's only requirement is exceeded.
				So(c.SkillsScore, ShouldEqual, 100)
				// A direct career path into the seat.
				So(c.AlignmentScore, ShouldEqual, 100)
				So(c.OverallScore, ShouldEqual, 100)
			})

			Convey("And the strengths should cover all four factors", func() {
				So(err, ShouldBeNil)
				So(len(c.Strengths), ShouldEqual, 4)
				So(c.Weaknesses, ShouldBeEmpty)
			})
		})

		Convey("When scoring an unprofiled outsider", func() {
			c, err := succession.Score(snap, "e-outside", "p-sen")

			Convey("Then each factor should degrade instead of erroring", func() {
				So(err, ShouldBeNil)
				// Short tenure, other department, two levels below:
				// 10+10+10.
				So(c.ExperienceScore, ShouldEqual, 30)
				// No completed reviews reads as neutral.
				So(c.PerformanceScore, ShouldEqual, 50)
				// No defined path into the seat.
				So(c.SkillsScore, ShouldEqual, 50)
				// No path, no two-hop route, different department.
				So(c.AlignmentScore, ShouldEqual, 20)
			})

			Convey("And the weighted overall should come to 39", func() {
				So(err, ShouldBeNil)
				So(c.OverallScore, ShouldAlmostEqual, 39.0, 0.0001)
			})

			Convey("And experience and skills should read as weaknesses", func() {
				So(err, ShouldBeNil)
				So(c.Weaknesses, ShouldContain, "Limited experience relevant to the role")
				So(c.Weaknesses, ShouldContain, "Open skill gaps against the target role")
			})
		})

		Convey("When scoring a candidate with partial skill coverage", func() {
			c, err := succession.Score(snap, "e-partial", "p-sen")

			Convey("Then partial credit should stay below full credit", func() {
				So(err, ShouldBeNil)
				// Level 2 of required 4 earns 2/4 of the partial scale.
				So(c.SkillsScore, ShouldEqual, 30)
			})
		})

		Convey("When the employee is unknown", func() {
			_, err := succession.Score(snap, "ghost", "p-sen")
			So(err, ShouldWrap, model.ErrEmployeeNotFound)
		})

		Convey("When the position is unknown", func() {
			_, err := succession.Score(snap, "e-strong", "p-ghost")
			So(err, ShouldWrap, model.ErrPositionNotFound)
		})
	})
}

func TestSmartCandidates(t *testing.T) {
	Convey("Given the organization snapshot", t, func() {
		snap := orgSnapshot()

		Convey("When listing smart candidates for the senior seat", func() {
			candidates, err := succession.SmartCandidates(snap, "p-sen", 10)
			So(err, ShouldBeNil)

			Convey("Then the strong candidate should rank first", func() {
				So(len(candidates), ShouldBeGreaterThan, 0)
				So(candidates[0].EmployeeID, ShouldEqual, "e-strong")
			})

			Convey("And everyone listed should clear the threshold", func() {
				for _, c := range candidates {
					So(c.OverallScore, ShouldBeGreaterThanOrEqualTo, succession.SmartCandidateThreshold)
				}
			})

			Convey("And the sub-threshold outsider should be excluded", func() {
				for _, c := range candidates {
					So(c.EmployeeID, ShouldNotEqual, "e-outside")
				}
			})

			Convey("And the current occupant should be excluded", func() {
				for _, c := range candidates {
					So(c.EmployeeID, ShouldNotEqual, "e-occupant")
				}
			})

			Convey("And inactive employees should be excluded", func() {
				for _, c := range candidates {
					So(c.EmployeeID, ShouldNotEqual, "e-gone")
				}
			})
		})

		Convey("When capping the list", func() {
			candidates, err := succession.SmartCandidates(snap, "p-sen", 1)

			Convey("Then only the best candidate should remain", func() {
				So(err, ShouldBeNil)
				So(len(candidates), ShouldEqual, 1)
				So(candidates[0].EmployeeID, ShouldEqual, "e-strong")
			})
		})

		Convey("When the position is unknown", func() {
			_, err := succession.SmartCandidates(snap, "p-ghost", 10)
			So(err, ShouldWrap, model.ErrPositionNotFound)
		})
	})
}
