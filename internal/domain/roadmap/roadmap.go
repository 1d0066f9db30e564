// Package roadmap builds multi-step career roadmaps between positions
// using a bounded greedy search over defined career paths.
package roadmap

import (
	"fmt"

	"github.com/okian/laddr/internal/domain/model"
)

// Search and estimation constants.
const (
	monthsPerYear = 12
	minStepMonths = 12
	// maxBranches bounds how many outgoing paths the two-hop search
	// explores from the current position.
	maxBranches = 2
)

// Step is one position transition on a roadmap.
type Step struct {
	CareerPathID    string `json:"career_path_id"`
	FromPositionID  string `json:"from_position_id"`
	ToPositionID    string `json:"to_position_id"`
	EstimatedMonths int    `json:"estimated_months"`
}

// Roadmap is an ordered sequence of transitions toward a target position.
// An empty Steps list means no path was found; that is a valid outcome,
// not an error.
type Roadmap struct {
	EmployeeID       string `json:"employee_id"`
	TargetPositionID string `json:"target_position_id"`
	Steps            []Step `json:"steps"`
	TotalMonths      int    `json:"total_months"`
}

// Build finds a direct or two-hop route from the employee's current
// position to the target. The two-hop search returns the first matching
// intermediate, not the fastest; this greedy shortcut is intentional and
// keeps the search bounded.
func Build(snap *model.Snapshot, employeeID, targetPositionID string) (Roadmap, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return Roadmap{}, fmt.Errorf("build roadmap %q: %w", employeeID, model.ErrEmployeeNotFound)
	}
	if emp.PositionID == "" {
		return Roadmap{}, fmt.Errorf("build roadmap %q: %w", employeeID, model.ErrNoCurrentPosition)
	}
	if _, ok := snap.Position(targetPositionID); !ok {
		return Roadmap{}, fmt.Errorf("build roadmap to %q: %w", targetPositionID, model.ErrPositionNotFound)
	}

	rm := Roadmap{EmployeeID: employeeID, TargetPositionID: targetPositionID}

	if direct, ok := snap.PathBetween(emp.PositionID, targetPositionID); ok {
		rm.Steps = []Step{stepFrom(direct)}
		rm.TotalMonths = rm.Steps[0].EstimatedMonths
		return rm, nil
	}

	branches := snap.ActivePathsFrom(emp.PositionID)
	if len(branches) > maxBranches {
		branches = branches[:maxBranches]
	}
	for _, first := range branches {
		second, ok := snap.PathBetween(first.ToPositionID, targetPositionID)
		if !ok {
			continue
		}
		rm.Steps = []Step{stepFrom(first), stepFrom(second)}
		rm.TotalMonths = rm.Steps[0].EstimatedMonths + rm.Steps[1].EstimatedMonths
		return rm, nil
	}

	// No route within two hops; empty roadmap.
	return rm, nil
}

func stepFrom(path *model.CareerPath) Step {
	months := int(path.MinYearsInRole * monthsPerYear)
	if months < minStepMonths {
		months = minStepMonths
	}
	return Step{
		CareerPathID:    path.ID,
		FromPositionID:  path.FromPositionID,
		ToPositionID:    path.ToPositionID,
		EstimatedMonths: months,
	}
}
