package build

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cruciblehq/xpack/internal/target"
)

// Controls how target pipelines are scheduled.
type dispatchOptions struct {
	jobs       int                 // Maximum concurrent pipelines; 0 is unlimited.
	failFast   bool                // Cancel the remaining pipelines after the first failure.
	onComplete func(*TargetResult) // Optional completion callback.
}

// Runs fn for every target concurrently and waits for all of them.
//
// Results are returned in the order of targets. Targets that had not
// started when the context was cancelled are recorded as cancelled without
// running fn. With failFast, the first failed target cancels the context
// shared by the others, which kills in-flight compiler processes.
func dispatch(ctx context.Context, targets []target.Target, opts dispatchOptions, fn func(context.Context, target.Target) *TargetResult) []*TargetResult {
	results := make([]*TargetResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}

	var mu sync.Mutex
	complete := func(r *TargetResult) {
		if opts.onComplete == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		opts.onComplete(r)
	}

	for i, t := range targets {
		g.Go(func() error {
			var r *TargetResult
			if err := gctx.Err(); err != nil {
				r = &TargetResult{Target: t, Status: StatusCancelled, Err: err}
			} else {
				r = fn(gctx, t)
			}

			results[i] = r
			complete(r)

			if opts.failFast && r.Status == StatusFailed {
				return r.Err
			}
			return nil
		})
	}

	// Failures are carried by the results; the group error only drives
	// cancellation.
	_ = g.Wait()

	return results
}
