// Package coldplan plans which elements of an ordered sequence go to a cold storage
// tier and which stay hot.
//
// Elements have non-negative weights (access frequency, cost, heat). Cold elements
// are grouped into contiguous cold partitions, each bounded by a maximum element
// count and a maximum cumulative weight, and only a limited number of partition
// slots exist. Every element left out of a cold partition stays hot, and the
// planner minimizes the total hot weight exactly, using rational arithmetic.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/coldplan"
//
//	cfg := coldplan.DefaultConfig()
//	cfg.Limits.MaxColdElems = 10
//	cfg.Limits.MaxColdWeight = "2"
//	cfg.Limits.MaxPartitions = 10
//
//	opt, err := coldplan.NewOptimizer(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := opt.Run(ctx, weights)
//	fmt.Println(res.BestHotWeight.RatString(), res.Layout.Cold)
//
// # Pipeline
//
// Each run goes through four stages, all exposed by the planner package:
//
//	weights → ComputeColdSpan → InvertColdSpan → HotWeightPlanner.Plan → Reconstruct
//
// The span stage finds, for every start index, the end of the longest window that
// respects both limits. The plan stage fills a table indexed by (elements consumed,
// cold partitions used) with the minimum hot weight reaching that state. The
// reconstruction stage walks the table backwards to recover one optimal layout.
//
// # Advanced Usage
//
// Batches, hooks and metrics:
//
//	hooks := &coldplan.Hooks{
//	    OnPlanComplete: func(ctx context.Context, name string, res *coldplan.Result) error {
//	        return publish(name, res.Layout)
//	    },
//	}
//
//	opt, err := coldplan.NewOptimizer(&cfg,
//	    coldplan.WithHooks(hooks),
//	    coldplan.WithMetrics(coldplan.NewPrometheusMetrics(nil, "")),
//	)
//	results, err := opt.RunBatch(ctx, map[string][]*big.Rat{"a": a, "b": b})
//
// See the examples/ directory and cmd/coldplan for complete working programs.
package coldplan
