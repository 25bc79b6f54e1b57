package coldplan

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/coldplan/internal/hooks"
	"github.com/arloliu/coldplan/internal/logging"
	"github.com/arloliu/coldplan/internal/metrics"
	"github.com/arloliu/coldplan/planner"
	"github.com/arloliu/coldplan/types"
)

// Failure reasons reported to MetricsCollector.RecordPlanFailure.
const (
	reasonInvalidLimit  = "invalid_limit"
	reasonInvalidWeight = "invalid_weight"
	reasonSource        = "source"
	reasonCanceled      = "canceled"
	reasonOther         = "other"
)

// Optimizer plans cold/hot layouts for weight sequences under fixed limits.
//
// Optimizer is the main entry point of the coldplan library. Each run:
//   - Validates the weights
//   - Computes the maximal cold window per start index
//   - Inverts the windows by end index
//   - Fills the plan table of minimum hot weights
//   - Reconstructs one layout achieving the best hot weight
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Every run allocates its own spans and table; nothing is shared between runs
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type LayoutPlanner interface {
//	    Run(ctx context.Context, weights []*big.Rat) (*coldplan.Result, error)
//	}
type Optimizer struct {
	cfg    Config
	limits types.Limits

	planner *planner.HotWeightPlanner

	// Optional dependencies
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// NewOptimizer creates a new Optimizer instance with the provided configuration.
//
// Returns a concrete *Optimizer struct following the "accept interfaces, return structs" principle.
//
// Parameters:
//   - cfg: Configuration; missing values are filled in place with defaults
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Optimizer: Initialized optimizer instance
//   - error: ErrInvalidConfig if configuration is nil or invalid
//
// Example:
//
//	cfg := coldplan.DefaultConfig()
//	cfg.Limits.MaxPartitions = 4
//	opt, err := coldplan.NewOptimizer(&cfg)
//	res, err := opt.Run(ctx, weights)
func NewOptimizer(cfg *Config, opts ...Option) (*Optimizer, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limits, err := cfg.LimitsValue()
	if err != nil {
		return nil, err
	}

	options := &optimizerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	return &Optimizer{
		cfg:     *cfg,
		limits:  limits,
		planner: planner.NewHotWeightPlanner(planner.WithLogger(loggerInstance)),
		hooks:   hooks.Fill(options.hooks),
		metrics: metricsCollector,
		logger:  loggerInstance,
	}, nil
}

// Config returns a copy of the effective configuration.
func (o *Optimizer) Config() Config {
	return o.cfg
}

// Limits returns a copy of the parsed limits.
func (o *Optimizer) Limits() Limits {
	return cloneLimits(o.limits)
}

// Run plans one weight sequence.
//
// Parameters:
//   - ctx: Context checked between planning stages
//   - weights: Non-negative element weights in element order (not modified)
//
// Returns:
//   - *Result: Spans, plan table, best hot weight and a layout achieving it
//   - error: ErrInvalidWeight on malformed weights, ErrContextCanceled on cancellation
func (o *Optimizer) Run(ctx context.Context, weights []*big.Rat) (*Result, error) {
	return o.run(ctx, "", weights)
}

// RunSource loads weights from src and plans them.
//
// Parameters:
//   - ctx: Context passed to the source and checked between planning stages
//   - src: Weight source
//
// Returns:
//   - *Result: Planning result
//   - error: ErrWeightSourceRequired if src is nil, source errors wrapped, or Run errors
func (o *Optimizer) RunSource(ctx context.Context, src WeightSource) (*Result, error) {
	if src == nil {
		return nil, o.fail(ctx, "", reasonSource, ErrWeightSourceRequired)
	}

	weights, err := src.Weights(ctx)
	if err != nil {
		return nil, o.fail(ctx, "", reasonSource, fmt.Errorf("failed to load weights: %w", err))
	}

	return o.run(ctx, "", weights)
}

// RunWorkload plans the workload described by the configuration.
//
// Returns:
//   - *Result: Planning result
//   - error: Source or Run errors
func (o *Optimizer) RunWorkload(ctx context.Context) (*Result, error) {
	src, err := o.cfg.Workload.Source()
	if err != nil {
		return nil, o.fail(ctx, "", reasonSource, err)
	}

	return o.RunSource(ctx, src)
}

// RunBatch plans several independent weight sequences concurrently.
//
// At most Config.BatchConcurrency runs execute at once. The first failing run
// cancels the remaining ones.
//
// Parameters:
//   - ctx: Context for cancellation
//   - runs: Weight sequences keyed by run name
//
// Returns:
//   - map[string]*Result: One result per run name
//   - error: First run error, wrapped with the run name
//
// Example:
//
//	results, err := opt.RunBatch(ctx, map[string][]*big.Rat{
//	    "orders":    orderWeights,
//	    "shipments": shipmentWeights,
//	})
func (o *Optimizer) RunBatch(ctx context.Context, runs map[string][]*big.Rat) (map[string]*Result, error) {
	results := xsync.NewMap[string, *Result]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.BatchConcurrency)

	for name, weights := range runs {
		g.Go(func() error {
			res, err := o.run(gctx, name, weights)
			if err != nil {
				return fmt.Errorf("run %q: %w", name, err)
			}
			results.Store(name, res)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Result, results.Size())
	results.Range(func(name string, res *Result) bool {
		out[name] = res
		return true
	})

	return out, nil
}

func (o *Optimizer) run(ctx context.Context, name string, weights []*big.Rat) (*Result, error) {
	start := time.Now()

	// Step 1: Validate and snapshot the input so callers may reuse their slice
	if err := ctx.Err(); err != nil {
		return nil, o.fail(ctx, name, reasonCanceled, fmt.Errorf("%w: %w", ErrContextCanceled, err))
	}
	if err := types.ValidateWeights(weights); err != nil {
		return nil, o.fail(ctx, name, reasonInvalidWeight, err)
	}
	weights = lo.Map(weights, func(w *big.Rat, _ int) *big.Rat {
		return new(big.Rat).Set(w)
	})

	// Step 2: Maximal cold windows
	span, err := planner.ComputeColdSpan(weights, o.limits.MaxColdElems, o.limits.MaxColdWeight)
	if err != nil {
		return nil, o.fail(ctx, name, classify(err), err)
	}
	if oversized := planner.OversizedElements(weights, o.limits.MaxColdWeight); len(oversized) > 0 {
		o.logger.Debug("elements exceed maxColdWeight on their own",
			"run", name,
			"indices", oversized,
			"maxColdWeight", o.limits.MaxColdWeight.RatString(),
		)
	}

	// Step 3: Windows by end index
	reverse, err := planner.InvertColdSpan(span)
	if err != nil {
		return nil, o.fail(ctx, name, classify(err), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, o.fail(ctx, name, reasonCanceled, fmt.Errorf("%w: %w", ErrContextCanceled, err))
	}

	// Step 4: Plan table
	table, err := o.planner.Plan(weights, span, o.limits.MaxPartitions)
	if err != nil {
		return nil, o.fail(ctx, name, classify(err), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, o.fail(ctx, name, reasonCanceled, fmt.Errorf("%w: %w", ErrContextCanceled, err))
	}

	// Step 5: Layout achieving the optimum
	layout, err := planner.Reconstruct(weights, span, reverse, table)
	if err != nil {
		return nil, o.fail(ctx, name, classify(err), err)
	}

	best, parts := table.Best()
	res := &Result{
		Limits:         cloneLimits(o.limits),
		Weights:        weights,
		Span:           span,
		Reverse:        reverse,
		Table:          table,
		BestHotWeight:  best,
		BestPartitions: parts,
		Layout:         layout,
	}

	elapsed := time.Since(start)
	bestFloat, _ := best.Float64()
	o.metrics.RecordPlanDuration(elapsed.Seconds())
	o.metrics.RecordPlanResult(len(weights), parts, bestFloat)

	o.logger.Info("plan complete",
		"run", name,
		"elements", len(weights),
		"bestHotWeight", best.RatString(),
		"coldPartitions", parts,
		"duration", elapsed,
	)

	if err := o.hooks.OnPlanComplete(ctx, name, res); err != nil {
		o.logger.Warn("OnPlanComplete hook failed", "run", name, "error", err)
	}

	return res, nil
}

// fail records a rejected run and returns err unchanged.
func (o *Optimizer) fail(ctx context.Context, name, reason string, err error) error {
	o.metrics.RecordPlanFailure(reason)
	o.logger.Error("plan failed", "run", name, "reason", reason, "error", err)

	if hookErr := o.hooks.OnPlanFailed(ctx, name, err); hookErr != nil {
		o.logger.Warn("OnPlanFailed hook failed", "run", name, "error", hookErr)
	}

	return err
}

func classify(err error) string {
	switch {
	case errors.Is(err, ErrInvalidLimit):
		return reasonInvalidLimit
	case errors.Is(err, ErrInvalidWeight):
		return reasonInvalidWeight
	case errors.Is(err, ErrContextCanceled):
		return reasonCanceled
	default:
		return reasonOther
	}
}

func cloneLimits(l types.Limits) types.Limits {
	if l.MaxColdWeight != nil {
		l.MaxColdWeight = new(big.Rat).Set(l.MaxColdWeight)
	}

	return l
}
