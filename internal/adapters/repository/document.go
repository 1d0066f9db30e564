package repository

import (
	"fmt"
	"time"

	"github.com/okian/laddr/internal/domain/model"
)

// Document is the wire form of an organizational snapshot: the flat
// entity lists as they arrive from the HR system of record, before any
// index is built over them.
type Document struct {
	Employees       []model.Employee       `yaml:"employees" json:"employees"`
	Positions       []model.Position       `yaml:"positions" json:"positions"`
	Departments     []model.Department     `yaml:"departments" json:"departments"`
	Skills          []model.Skill          `yaml:"skills" json:"skills"`
	CareerPaths     []model.CareerPath     `yaml:"career_paths" json:"career_paths"`
	SuccessionPlans []model.SuccessionPlan `yaml:"succession_plans" json:"succession_plans"`
}

// Snapshot builds an indexed, validated snapshot from the document,
// stamped with the given observation time.
func (d *Document) Snapshot(now time.Time) (*model.Snapshot, error) {
	if d == nil {
		return nil, fmt.Errorf("nil document: %w", ErrInvalidDocument)
	}

	employees := make([]*model.Employee, len(d.Employees))
	for i := range d.Employees {
		employees[i] = &d.Employees[i]
	}
	positions := make([]*model.Position, len(d.Positions))
	for i := range d.Positions {
		positions[i] = &d.Positions[i]
	}
	departments := make([]*model.Department, len(d.Departments))
	for i := range d.Departments {
		departments[i] = &d.Departments[i]
	}
	skills := make([]*model.Skill, len(d.Skills))
	for i := range d.Skills {
		skills[i] = &d.Skills[i]
	}
	paths := make([]*model.CareerPath, len(d.CareerPaths))
	for i := range d.CareerPaths {
		paths[i] = &d.CareerPaths[i]
	}
	plans := make([]*model.SuccessionPlan, len(d.SuccessionPlans))
	for i := range d.SuccessionPlans {
		plans[i] = &d.SuccessionPlans[i]
	}

	return model.NewSnapshot(now, employees, positions, departments, skills, paths, plans)
}
