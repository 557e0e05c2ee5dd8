// Package loader provides the batch load orchestration logic for
// assetbatch.
//
// # Loader
//
// The Loader coordinates one batch at a time:
//
//  1. Resolve every descriptor's bundle and expected unit count
//  2. Keep up to Parallel load operations in flight
//  3. Aggregate fractional progress across items of different sizes
//  4. Retry failures: whole-batch re-initialization while bundle
//     resolution keeps failing, per-item re-dispatch afterwards
//  5. Report one terminal complete or fail outcome
//
// # Basic Usage
//
//	ldr := loader.New(source, sink, log)
//	defer ldr.Close()
//
//	ldr.Start(ctx, descriptors, loader.Options{
//	    Parallel:   4,
//	    Retry:      3,
//	    OnProgress: func(f float64) { fmt.Printf("%.0f%%\n", f*100) },
//	    OnComplete: func() { close(done) },
//	    OnFail:     func(msg string, err error) { log.Error(msg, "err", err) },
//	})
//
// # Scheduling Model
//
// Scheduling is pull-based and single-threaded: one goroutine owns the
// batch state and consumes completion events from a channel. Collaborator
// calls (bundle resolution, directory and file loads) run in worker
// goroutines and report back as events, so state mutation never needs a
// lock and a freed slot always triggers exactly one scheduling pass.
// "Parallelism" is strictly the number of outstanding collaborator calls,
// never concurrent state mutation.
//
// # Retry Policy
//
// Both retry tiers share one budget (Options.Retry). While
// initialization has never succeeded, a bundle resolution failure
// restarts the whole initializer with the retry counter incremented. Once
// initialization has succeeded, a drained window with Error items left
// triggers an item-level pass that resets those items to Wait and refills
// the window; finished items keep their recorded progress and are never
// reloaded. When the budget is exhausted with failures still present the
// batch fails terminally, naming the last failing bundle and path.
//
// Cancellation of a running batch is unsupported: Retry is the only
// external control surface.
package loader
