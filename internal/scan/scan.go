// Package scan provides bounded parallel evaluation over snapshot keys.
// Org-wide computations are embarrassingly parallel: per-entity evaluation
// has no cross-entity dependency, so a parallel map with an ordered
// collect preserves deterministic output.
package scan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the fan-out used when callers pass a non-positive
// worker count.
func DefaultWorkers() int { return runtime.NumCPU() }

// Map evaluates fn over items with at most workers goroutines and returns
// the results in input order. The first error cancels the remaining work;
// callers that want skip-and-continue semantics handle errors inside fn.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	out := make([]R, len(items))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
