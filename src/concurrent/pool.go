// Package concurrent holds the bounded fan-out primitive used by the answer
// compiler.
package concurrent

import (
	"context"
	"sync"
	"time"
)

// ParallelMap runs fn over items with bounded concurrency and returns the
// results in input order, regardless of completion order. When perCallTimeout
// is positive each call gets its own deadline derived from ctx; fn observes
// cancellation through its context and reports failure through its return
// value, so a slow or dead item never blocks the others.
func ParallelMap[T, R any](ctx context.Context, items []T, fn func(context.Context, T) R, maxConcurrency int, perCallTimeout time.Duration) []R {
	if len(items) == 0 {
		return nil
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 10
	}

	results := make([]R, len(items))
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrency)

	for i, item := range items {
		wg.Add(1)
		go func(idx int, val T) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
				defer func() { <-sem }()
			}

			callCtx := ctx
			if perCallTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, perCallTimeout)
				defer cancel()
			}
			results[idx] = fn(callCtx, val)
		}(i, item)
	}

	wg.Wait()
	return results
}
