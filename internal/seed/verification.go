package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/laddr/internal/adapters/repository"
	"github.com/okian/laddr/pkg/logger"
)

// verifyDocument builds the document into a snapshot, exercising the same
// referential-integrity and range checks the engine applies on load. A
// document that fails here would be rejected by PUT /snapshot too.
func verifyDocument(ctx context.Context, doc *repository.Document, now time.Time) error {
	snap, err := doc.Snapshot(now)
	if err != nil {
		return err
	}

	// Spot checks beyond the snapshot invariants: every position the
	// generator marked occupied must actually hold someone.
	for _, pos := range snap.Positions() {
		holders := snap.EmployeesInPosition(pos.ID)
		if pos.Occupants != len(holders) {
			return fmt.Errorf("position %q reports %d occupants but %d employees hold it", pos.ID, pos.Occupants, len(holders))
		}
	}

	keyTotal, keyVacant := 0, 0
	for _, pos := range snap.Positions() {
		if !pos.KeyPosition {
			continue
		}
		keyTotal++
		if pos.Vacant() {
			keyVacant++
		}
	}

	logger.Get().Info(ctx, "document verified",
		logger.Int("employees", snap.EmployeeCount()),
		logger.Int("positions", snap.PositionCount()),
		logger.Int("careerPaths", snap.PathCount()),
		logger.Int("keyPositions", keyTotal),
		logger.Int("vacantKeyPositions", keyVacant))
	return nil
}
