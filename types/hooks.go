package types

import "context"

// Hooks defines callbacks for Optimizer lifecycle events.
//
// All hooks are optional. They run synchronously on the goroutine that performed
// the run, so a slow hook delays the caller (and, in a batch, occupies one
// concurrency slot). Hook errors are logged but never fail the run.
//
// Example:
//
//	hooks := &coldplan.Hooks{
//	    OnPlanComplete: func(ctx context.Context, name string, res *coldplan.Result) error {
//	        log.Printf("%s: best hot weight %s", name, res.BestHotWeight.RatString())
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPlanComplete is called after a run succeeds.
	// name is the batch key of the run ("" for a single Run).
	OnPlanComplete func(ctx context.Context, name string, result *Result) error

	// OnPlanFailed is called after a run is rejected.
	OnPlanFailed func(ctx context.Context, name string, err error) error
}
