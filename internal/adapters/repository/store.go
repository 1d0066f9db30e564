// Package repository defines the snapshot store interface and errors.
package repository

import (
	"context"

	"github.com/okian/laddr/internal/domain/model"
)

// Store provides access to the current organizational snapshot.
type Store interface {
	// Replace validates a document and atomically swaps it in as the
	// current snapshot. Returns the built snapshot or a wrapped
	// ErrInvalidDocument / model.ErrInvalidSnapshot.
	Replace(ctx context.Context, doc *Document) (*model.Snapshot, error)

	// Current returns the current snapshot.
	// Returns ErrNoSnapshot when no document has been loaded yet.
	Current(ctx context.Context) (*model.Snapshot, error)

	// LoadFile reads a YAML document from disk and replaces the current
	// snapshot with it.
	LoadFile(ctx context.Context, path string) (*model.Snapshot, error)
}
