package model

import (
	"fmt"
	"sort"
	"time"
)

// Snapshot is an immutable, internally consistent view of the organization
// at a single point in time. Every engine computation is a pure function of
// one Snapshot; Now is the evaluation instant so repeated runs against the
// same snapshot yield identical results.
type Snapshot struct {
	Now time.Time

	employees   map[string]*Employee
	positions   map[string]*Position
	departments map[string]*Department
	skills      map[string]*Skill

	pathsByID map[string]*CareerPath
	pathsFrom map[string][]*CareerPath
	pathsTo   map[string][]*CareerPath
	plansFor  map[string][]*SuccessionPlan
	deptStaff map[string][]*Employee
	posStaff  map[string][]*Employee

	employeeIDs []string
	positionIDs []string
	paths       []*CareerPath
}

// NewSnapshot indexes and validates the supplied entities. It returns
// ErrInvalidSnapshot (wrapped with detail) when referential integrity or a
// field invariant is broken; the engine relies on callers supplying a
// consistent snapshot.
func NewSnapshot(
	now time.Time,
	employees []*Employee,
	positions []*Position,
	departments []*Department,
	skills []*Skill,
	paths []*CareerPath,
	plans []*SuccessionPlan,
) (*Snapshot, error) {
	s := &Snapshot{
		Now:         now,
		employees:   make(map[string]*Employee, len(employees)),
		positions:   make(map[string]*Position, len(positions)),
		departments: make(map[string]*Department, len(departments)),
		skills:      make(map[string]*Skill, len(skills)),
		pathsByID:   make(map[string]*CareerPath, len(paths)),
		pathsFrom:   make(map[string][]*CareerPath),
		pathsTo:     make(map[string][]*CareerPath),
		plansFor:    make(map[string][]*SuccessionPlan),
		deptStaff:   make(map[string][]*Employee),
		posStaff:    make(map[string][]*Employee),
		paths:       paths,
	}

	for _, d := range departments {
		s.departments[d.ID] = d
	}
	for _, sk := range skills {
		s.skills[sk.ID] = sk
	}
	for _, p := range positions {
		if p.DepartmentID != "" {
			if _, ok := s.departments[p.DepartmentID]; !ok {
				return nil, fmt.Errorf("%w: position %q references unknown department %q", ErrInvalidSnapshot, p.ID, p.DepartmentID)
			}
		}
		s.positions[p.ID] = p
		s.positionIDs = append(s.positionIDs, p.ID)
	}

	for _, e := range employees {
		if e.PositionID != "" {
			if _, ok := s.positions[e.PositionID]; !ok {
				return nil, fmt.Errorf("%w: employee %q references unknown position %q", ErrInvalidSnapshot, e.ID, e.PositionID)
			}
		}
		if e.DepartmentID != "" {
			if _, ok := s.departments[e.DepartmentID]; !ok {
				return nil, fmt.Errorf("%w: employee %q references unknown department %q", ErrInvalidSnapshot, e.ID, e.DepartmentID)
			}
		}
		for _, sk := range e.Skills {
			if sk.Level < 1 || sk.Level > 5 {
				return nil, fmt.Errorf("%w: employee %q skill %q proficiency %d out of range [1,5]", ErrInvalidSnapshot, e.ID, sk.SkillID, sk.Level)
			}
		}
		for _, r := range e.Reviews {
			if r.Status == ReviewCompleted && (r.Rating < 1 || r.Rating > 5) {
				return nil, fmt.Errorf("%w: employee %q completed review rating %.2f out of range [1,5]", ErrInvalidSnapshot, e.ID, r.Rating)
			}
		}
		s.employees[e.ID] = e
		s.employeeIDs = append(s.employeeIDs, e.ID)
		s.deptStaff[e.DepartmentID] = append(s.deptStaff[e.DepartmentID], e)
		if e.PositionID != "" {
			s.posStaff[e.PositionID] = append(s.posStaff[e.PositionID], e)
		}
	}

	for _, p := range paths {
		if _, ok := s.positions[p.FromPositionID]; !ok {
			return nil, fmt.Errorf("%w: career path %q references unknown position %q", ErrInvalidSnapshot, p.ID, p.FromPositionID)
		}
		if _, ok := s.positions[p.ToPositionID]; !ok {
			return nil, fmt.Errorf("%w: career path %q references unknown position %q", ErrInvalidSnapshot, p.ID, p.ToPositionID)
		}
		s.pathsByID[p.ID] = p
		s.pathsFrom[p.FromPositionID] = append(s.pathsFrom[p.FromPositionID], p)
		s.pathsTo[p.ToPositionID] = append(s.pathsTo[p.ToPositionID], p)
	}

	for _, pl := range plans {
		if _, ok := s.positions[pl.PositionID]; !ok {
			return nil, fmt.Errorf("%w: succession plan %q references unknown position %q", ErrInvalidSnapshot, pl.ID, pl.PositionID)
		}
		s.plansFor[pl.PositionID] = append(s.plansFor[pl.PositionID], pl)
	}

	// Sorted iteration orders keep org-wide scans deterministic.
	sort.Strings(s.employeeIDs)
	sort.Strings(s.positionIDs)
	for _, m := range []map[string][]*CareerPath{s.pathsFrom, s.pathsTo} {
		for _, list := range m {
			sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		}
	}

	return s, nil
}

// Employee returns the employee with the given id.
func (s *Snapshot) Employee(id string) (*Employee, bool) {
	e, ok := s.employees[id]
	return e, ok
}

// Position returns the position with the given id.
func (s *Snapshot) Position(id string) (*Position, bool) {
	p, ok := s.positions[id]
	return p, ok
}

// Department returns the department with the given id.
func (s *Snapshot) Department(id string) (*Department, bool) {
	d, ok := s.departments[id]
	return d, ok
}

// CareerPath returns the career path with the given id.
func (s *Snapshot) CareerPath(id string) (*CareerPath, bool) {
	p, ok := s.pathsByID[id]
	return p, ok
}

// Skill returns the catalog entry for the given skill id.
func (s *Snapshot) Skill(id string) (*Skill, bool) {
	sk, ok := s.skills[id]
	return sk, ok
}

// SkillName returns the display name for a skill id, falling back to the
// id itself for skills missing from the catalog.
func (s *Snapshot) SkillName(id string) string {
	if sk, ok := s.skills[id]; ok {
		return sk.Name
	}
	return id
}

// Employees returns all employees in ascending id order.
func (s *Snapshot) Employees() []*Employee {
	out := make([]*Employee, 0, len(s.employeeIDs))
	for _, id := range s.employeeIDs {
		out = append(out, s.employees[id])
	}
	return out
}

// Positions returns all positions in ascending id order.
func (s *Snapshot) Positions() []*Position {
	out := make([]*Position, 0, len(s.positionIDs))
	for _, id := range s.positionIDs {
		out = append(out, s.positions[id])
	}
	return out
}

// EmployeeCount returns the number of employees in the snapshot.
func (s *Snapshot) EmployeeCount() int { return len(s.employees) }

// PositionCount returns the number of positions in the snapshot.
func (s *Snapshot) PositionCount() int { return len(s.positions) }

// PathCount returns the number of career paths in the snapshot.
func (s *Snapshot) PathCount() int { return len(s.paths) }

// ActivePathsFrom returns the active career paths originating at the given
// position, ordered by path id.
func (s *Snapshot) ActivePathsFrom(positionID string) []*CareerPath {
	var out []*CareerPath
	for _, p := range s.pathsFrom[positionID] {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// PathBetween returns the active career path from one position to another,
// if one is defined.
func (s *Snapshot) PathBetween(fromPositionID, toPositionID string) (*CareerPath, bool) {
	for _, p := range s.pathsFrom[fromPositionID] {
		if p.Active && p.ToPositionID == toPositionID {
			return p, true
		}
	}
	return nil, false
}

// PathsInto returns the active career paths terminating at the given
// position, ordered by path id.
func (s *Snapshot) PathsInto(positionID string) []*CareerPath {
	var out []*CareerPath
	for _, p := range s.pathsTo[positionID] {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// HasActivePlan reports whether the position has an active succession plan.
func (s *Snapshot) HasActivePlan(positionID string) bool {
	for _, pl := range s.plansFor[positionID] {
		if pl.Active {
			return true
		}
	}
	return false
}

// HasReadyCandidate reports whether any active succession plan for the
// position lists a candidate with "Ready" status.
func (s *Snapshot) HasReadyCandidate(positionID string) bool {
	for _, pl := range s.plansFor[positionID] {
		if !pl.Active {
			continue
		}
		for _, c := range pl.Candidates {
			if c.Readiness == CandidateReady {
				return true
			}
		}
	}
	return false
}

// PlanCandidacies returns the position ids of active plans that list the
// employee as a candidate, in ascending position id order.
func (s *Snapshot) PlanCandidacies(employeeID string) []string {
	var out []string
	for _, positionID := range s.positionIDs {
		for _, pl := range s.plansFor[positionID] {
			if !pl.Active {
				continue
			}
			for _, c := range pl.Candidates {
				if c.EmployeeID == employeeID {
					out = append(out, positionID)
				}
			}
		}
	}
	return out
}

// EmployeesInDepartment returns the employees assigned to a department,
// in ascending id order.
func (s *Snapshot) EmployeesInDepartment(departmentID string) []*Employee {
	staff := s.deptStaff[departmentID]
	out := make([]*Employee, len(staff))
	copy(out, staff)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EmployeesInPosition returns the employees currently holding a position,
// in ascending id order.
func (s *Snapshot) EmployeesInPosition(positionID string) []*Employee {
	staff := s.posStaff[positionID]
	out := make([]*Employee, len(staff))
	copy(out, staff)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DepartmentTurnover returns the inactive-member ratio for a department,
// the engine's proxy for turnover rate. Empty departments report 0.
func (s *Snapshot) DepartmentTurnover(departmentID string) float64 {
	staff := s.deptStaff[departmentID]
	if len(staff) == 0 {
		return 0
	}
	inactive := 0
	for _, e := range staff {
		if !e.Active {
			inactive++
		}
	}
	return float64(inactive) / float64(len(staff))
}
