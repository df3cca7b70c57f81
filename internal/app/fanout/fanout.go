// Package fanout runs one call per item with a cap on concurrency. The info
// reporter uses it to count documents in every collection at once without
// opening a connection per collection.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All calls fn for every item with at most workers calls in flight and
// returns the results in item order. The first error cancels the context
// handed to the other calls, items not yet started are skipped, and that
// error is returned with a nil slice.
//
// A workers value below one runs the items one at a time.
func All[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, items[i])
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
