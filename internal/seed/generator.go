package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/okian/laddr/internal/adapters/repository"
	"github.com/okian/laddr/internal/domain/model"
)

// Ladder and distribution constants.
const (
	maxSkillLevel        = 5
	minEmployeeSkills    = 2
	maxEmployeeSkills    = 5
	maxReviews           = 4
	maxTenureYears       = 12
	minTenureMonths      = 6
	reviewPeriodMonths   = 6
	requestChance        = 0.25
	keySeniorChance      = 0.4
	planChance           = 0.6
	minRatingChance      = 0.5
	educationChance      = 0.6
	maxPlanCandidates    = 3
	pathMinYearsPerLevel = 2
)

// ladder is the position ladder generated for every department, lowest
// level first. Lead and above count as key positions.
var ladder = []model.PositionLevel{
	model.LevelJunior,
	model.LevelMid,
	model.LevelSenior,
	model.LevelLead,
	model.LevelManager,
}

var departmentCatalog = []string{
	"Engineering",
	"Product",
	"Sales",
	"Marketing",
	"Finance",
	"People Operations",
	"Customer Success",
	"Data",
}

var skillCatalog = []model.Skill{
	{ID: "skill-go", Name: "Go", Category: model.CategoryTechnical},
	{ID: "skill-sql", Name: "SQL", Category: model.CategoryTechnical},
	{ID: "skill-cloud", Name: "Cloud Infrastructure", Category: model.CategoryTechnical},
	{ID: "skill-analytics", Name: "Data Analytics", Category: model.CategoryTechnical},
	{ID: "skill-mentoring", Name: "Mentoring", Category: model.CategoryLeadership},
	{ID: "skill-team-lead", Name: "Team Leadership", Category: model.CategoryLeadership},
	{ID: "skill-strategy", Name: "Strategic Planning", Category: model.CategoryLeadership},
	{ID: "skill-communication", Name: "Communication", Category: model.CategorySoft},
	{ID: "skill-negotiation", Name: "Negotiation", Category: model.CategorySoft},
	{ID: "skill-facilitation", Name: "Facilitation", Category: model.CategorySoft},
	{ID: "skill-market", Name: "Market Knowledge", Category: model.CategoryDomain},
	{ID: "skill-compliance", Name: "Regulatory Compliance", Category: model.CategoryDomain},
}

var firstNames = []string{
	"Alex", "Sam", "Robin", "Taylor", "Jordan", "Morgan", "Casey", "Riley",
	"Avery", "Quinn", "Dana", "Jamie", "Cameron", "Drew", "Skyler", "Reese",
}

var lastNames = []string{
	"Smith", "Johnson", "Lee", "Brown", "Garcia", "Martinez", "Davis",
	"Wilson", "Anderson", "Thomas", "Moore", "Clark", "Lewis", "Walker",
}

var educationCatalog = []string{
	"BSc Computer Science",
	"BA Business Administration",
	"MSc Data Science",
	"MBA",
	"BA Economics",
}

var readinessStatuses = []string{
	model.CandidateReady,
	"1-2 Years",
	"3-5 Years",
}

// generator produces a complete snapshot document from a seeded RNG so the
// same seed always yields the same organization.
type generator struct {
	rng *rand.Rand
	now time.Time
}

func newGenerator(seed int64, now time.Time) *generator {
	return &generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// generate builds the full document: departments, a position ladder per
// department, the shared skill catalog, employees, the career paths along
// each ladder, and succession plans for a share of the key positions.
func (g *generator) generate(numDepartments, numEmployees int) *repository.Document {
	if numDepartments < 1 {
		numDepartments = 1
	}
	if numDepartments > len(departmentCatalog) {
		numDepartments = len(departmentCatalog)
	}
	if numEmployees < numDepartments {
		numEmployees = numDepartments
	}

	doc := &repository.Document{
		Skills: skillCatalog,
	}

	for i := 0; i < numDepartments; i++ {
		doc.Departments = append(doc.Departments, model.Department{
			ID:   fmt.Sprintf("dept-%02d", i+1),
			Name: departmentCatalog[i],
		})
	}

	for _, dept := range doc.Departments {
		doc.Positions = append(doc.Positions, g.positionsFor(dept)...)
	}

	for i := 0; i < numEmployees; i++ {
		doc.Employees = append(doc.Employees, g.employee(i, doc))
	}

	// Occupant counts derive from the generated assignments, never the
	// other way around, so positions and employees stay consistent.
	occupants := make(map[string]int)
	for _, e := range doc.Employees {
		if e.Active {
			occupants[e.PositionID]++
		}
	}
	for i := range doc.Positions {
		doc.Positions[i].Occupants = occupants[doc.Positions[i].ID]
	}

	for _, dept := range doc.Departments {
		doc.CareerPaths = append(doc.CareerPaths, g.careerPathsFor(dept)...)
	}

	doc.SuccessionPlans = g.successionPlans(doc)

	return doc
}

// positionsFor builds the ladder for one department. Lead and above are
// always key positions; senior roles are key with some probability.
func (g *generator) positionsFor(dept model.Department) []model.Position {
	out := make([]model.Position, 0, len(ladder))
	for _, level := range ladder {
		key := level >= model.LevelLead
		if level == model.LevelSenior && g.rng.Float64() < keySeniorChance {
			key = true
		}
		out = append(out, model.Position{
			ID:           positionID(dept.ID, level),
			Title:        fmt.Sprintf("%s %s", level, dept.Name),
			DepartmentID: dept.ID,
			Level:        level,
			KeyPosition:  key,
		})
	}
	return out
}

func positionID(deptID string, level model.PositionLevel) string {
	return fmt.Sprintf("pos-%s-%s", strings.TrimPrefix(deptID, "dept-"), strings.ToLower(level.String()))
}

// employee generates one employee: department, level-weighted position,
// tenure, skills biased toward their level, a review history, and the
// occasional past request.
func (g *generator) employee(index int, doc *repository.Document) model.Employee {
	dept := doc.Departments[g.rng.Intn(len(doc.Departments))]
	level := g.pickLevel()

	tenureMonths := minTenureMonths + g.rng.Intn(maxTenureYears*12-minTenureMonths)
	hireDate := g.now.AddDate(0, -tenureMonths, 0)

	e := model.Employee{
		ID:           fmt.Sprintf("emp-%04d", index+1),
		Name:         fmt.Sprintf("%s %s", firstNames[g.rng.Intn(len(firstNames))], lastNames[g.rng.Intn(len(lastNames))]),
		HireDate:     hireDate,
		PositionID:   positionID(dept.ID, level),
		DepartmentID: dept.ID,
		Active:       true,
		Skills:       g.employeeSkills(level),
		Reviews:      g.reviews(level),
	}

	if g.rng.Float64() < educationChance {
		e.Education = educationCatalog[g.rng.Intn(len(educationCatalog))]
	}
	if g.rng.Float64() < requestChance {
		e.Requests = []model.Request{g.request()}
	}
	return e
}

// pickLevel draws a ladder level with a pyramid-shaped distribution:
// mostly juniors and mids, few managers.
func (g *generator) pickLevel() model.PositionLevel {
	roll := g.rng.Float64()
	switch {
	case roll < 0.35:
		return model.LevelJunior
	case roll < 0.65:
		return model.LevelMid
	case roll < 0.85:
		return model.LevelSenior
	case roll < 0.95:
		return model.LevelLead
	default:
		return model.LevelManager
	}
}

// employeeSkills draws a distinct subset of the catalog with proficiency
// biased upward for senior levels.
func (g *generator) employeeSkills(level model.PositionLevel) []model.EmployeeSkill {
	count := minEmployeeSkills + g.rng.Intn(maxEmployeeSkills-minEmployeeSkills+1)
	picked := g.rng.Perm(len(skillCatalog))[:count]

	out := make([]model.EmployeeSkill, 0, count)
	for _, idx := range picked {
		proficiency := 1 + g.rng.Intn(3) + int(level)/2
		if proficiency > maxSkillLevel {
			proficiency = maxSkillLevel
		}
		out = append(out, model.EmployeeSkill{
			SkillID:    skillCatalog[idx].ID,
			Level:      proficiency,
			AcquiredAt: g.now.AddDate(-1-g.rng.Intn(3), 0, 0),
			AssessedAt: g.now.AddDate(0, -g.rng.Intn(12), 0),
		})
	}
	return out
}

// reviews generates a completed review history, newest cycle first at
// generation time but stored oldest first; ratings center around a
// per-employee baseline so trends look plausible.
func (g *generator) reviews(level model.PositionLevel) []model.PerformanceReview {
	count := 1 + g.rng.Intn(maxReviews)
	baseline := 2.5 + g.rng.Float64()*1.5 + float64(level)*0.1

	out := make([]model.PerformanceReview, 0, count)
	for i := 0; i < count; i++ {
		rating := baseline + (g.rng.Float64()-0.5)*0.8
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		out = append(out, model.PerformanceReview{
			Rating:    float64(int(rating*10)) / 10,
			PeriodEnd: g.now.AddDate(0, -reviewPeriodMonths*(i+1), 0),
			Status:    model.ReviewCompleted,
		})
	}
	return out
}

func (g *generator) request() model.Request {
	types := []model.RequestType{
		model.RequestPromotion,
		model.RequestTransfer,
		model.RequestTraining,
		model.RequestCompensation,
	}
	statuses := []model.RequestStatus{
		model.RequestApproved,
		model.RequestRejected,
		model.RequestPending,
	}
	return model.Request{
		Type:        types[g.rng.Intn(len(types))],
		Status:      statuses[g.rng.Intn(len(statuses))],
		SubmittedAt: g.now.AddDate(0, -g.rng.Intn(18), 0),
	}
}

// careerPathsFor connects consecutive ladder levels within one department.
// Every step requires tenure; higher steps add rating and skill bars.
func (g *generator) careerPathsFor(dept model.Department) []model.CareerPath {
	out := make([]model.CareerPath, 0, len(ladder)-1)
	for i := 0; i+1 < len(ladder); i++ {
		from, to := ladder[i], ladder[i+1]
		path := model.CareerPath{
			ID:                 fmt.Sprintf("path-%s-%s", strings.TrimPrefix(dept.ID, "dept-"), strings.ToLower(to.String())),
			FromPositionID:     positionID(dept.ID, from),
			ToPositionID:       positionID(dept.ID, to),
			Active:             true,
			MinYearsInRole:     float64(pathMinYearsPerLevel),
			MinTotalExperience: float64(pathMinYearsPerLevel * (i + 1)),
			RequiredSkills:     g.pathSkills(to),
		}
		if g.rng.Float64() < minRatingChance {
			rating := 3.0 + g.rng.Float64()
			rating = float64(int(rating*10)) / 10
			path.MinPerformanceRating = &rating
		}
		out = append(out, path)
	}
	return out
}

// pathSkills picks one or two requirements for a step; transitions into
// Lead and above always demand a leadership skill.
func (g *generator) pathSkills(to model.PositionLevel) []model.RequiredSkill {
	out := []model.RequiredSkill{{
		SkillID:   skillCatalog[g.rng.Intn(len(skillCatalog))].ID,
		MinLevel:  3,
		Mandatory: true,
	}}
	if to >= model.LevelLead {
		out = append(out, model.RequiredSkill{
			SkillID:  "skill-team-lead",
			MinLevel: 3,
		})
	}
	return out
}

// successionPlans covers a share of the key positions with plans whose
// candidates come from the same department.
func (g *generator) successionPlans(doc *repository.Document) []model.SuccessionPlan {
	byDept := make(map[string][]string)
	for _, e := range doc.Employees {
		byDept[e.DepartmentID] = append(byDept[e.DepartmentID], e.ID)
	}

	var out []model.SuccessionPlan
	for _, pos := range doc.Positions {
		if !pos.KeyPosition || g.rng.Float64() >= planChance {
			continue
		}
		pool := byDept[pos.DepartmentID]
		if len(pool) == 0 {
			continue
		}
		count := 1 + g.rng.Intn(maxPlanCandidates)
		if count > len(pool) {
			count = len(pool)
		}
		candidates := make([]model.PlanCandidate, 0, count)
		for _, idx := range g.rng.Perm(len(pool))[:count] {
			candidates = append(candidates, model.PlanCandidate{
				EmployeeID: pool[idx],
				Readiness:  readinessStatuses[g.rng.Intn(len(readinessStatuses))],
			})
		}
		out = append(out, model.SuccessionPlan{
			ID:         "plan-" + pos.ID,
			PositionID: pos.ID,
			Active:     true,
			Candidates: candidates,
		})
	}
	return out
}
