package repository

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/laddr/internal/domain/model"
	"github.com/okian/laddr/pkg/metrics"
)

// In-memory Store implementation.
//
// The snapshot is immutable once built, so reads take no lock: the
// current pointer is swapped atomically on Replace and every analysis
// in flight keeps the snapshot it started with.

// MemoryStore holds the current snapshot behind an atomic pointer.
type MemoryStore struct {
	current atomic.Pointer[model.Snapshot]
	clock   func() time.Time
}

// NewMemoryStore creates an empty store with configuration options.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace validates the document, builds the indexed snapshot, and
// swaps it in as current.
func (s *MemoryStore) Replace(_ context.Context, doc *Document) (*model.Snapshot, error) {
	start := time.Now()
	snap, err := doc.Snapshot(s.clock())
	if err != nil {
		metrics.RecordSnapshotLoadError()
		return nil, err
	}

	s.current.Store(snap)

	metrics.RecordSnapshotLoad(float64(time.Since(start).Milliseconds()))
	metrics.UpdateSnapshotCounts(snap.EmployeeCount(), snap.PositionCount(), snap.PathCount())
	return snap, nil
}

// Current returns the current snapshot, or ErrNoSnapshot before the
// first Replace.
func (s *MemoryStore) Current(_ context.Context) (*model.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// LoadFile reads a YAML document from disk and replaces the current
// snapshot with it.
func (s *MemoryStore) LoadFile(ctx context.Context, path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.RecordSnapshotLoadError()
		return nil, fmt.Errorf("read snapshot file %q: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		metrics.RecordSnapshotLoadError()
		return nil, fmt.Errorf("decode snapshot file %q: %w: %v", path, ErrInvalidDocument, err)
	}

	return s.Replace(ctx, &doc)
}
