package planner

import (
	"fmt"
	"math/big"

	"github.com/arloliu/coldplan/internal/logging"
	"github.com/arloliu/coldplan/types"
)

// HotWeightPlanner fills the plan table of minimum hot-tier weights.
type HotWeightPlanner struct {
	logger types.Logger
}

// HotWeightPlannerOption configures a HotWeightPlanner.
type HotWeightPlannerOption func(*HotWeightPlanner)

// NewHotWeightPlanner creates a new planner.
//
// Parameters:
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *HotWeightPlanner: Planner ready for use; safe for concurrent Plan calls
func NewHotWeightPlanner(opts ...HotWeightPlannerOption) *HotWeightPlanner {
	p := &HotWeightPlanner{logger: logging.NewNop()}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if p.logger == nil {
		p.logger = logging.NewNop()
	}

	return p
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger types.Logger) HotWeightPlannerOption {
	return func(p *HotWeightPlanner) {
		p.logger = logger
	}
}

// Plan runs the dynamic program over (elements consumed, cold partitions used).
//
// From every reachable cell (elems, parts) holding value v, two transitions relax
// their target when it is unreached or the proposal is strictly smaller:
//   - Leave element elems hot: (elems+1, parts) ← v + weight(elems)
//   - Commit a cold partition at elems: (span[elems], parts+1) ← v, only if parts+1 < maxPartitions
//
// Both transitions strictly increase elems (spans are never empty), so the row-major
// sweep elems = 0..N-1, parts = 0..maxPartitions-1 is a topological order and every
// cell is final before it is expanded.
//
// Parameters:
//   - weights: Non-negative element weights in planning order
//   - span: ColdSpan for weights (from ComputeColdSpan)
//   - maxPartitions: Column count; cold partitions used never exceed maxPartitions-1
//
// Returns:
//   - *types.PlanTable: (N+1) × maxPartitions table, base cell (0, 0) = 0
//   - error: ErrInvalidLimit, ErrInvalidWeight or ErrSpanMismatch on malformed input
//
// Example:
//
//	table, err := planner.NewHotWeightPlanner().Plan(weights, span, 3)
//	best, parts := table.Best()
func (p *HotWeightPlanner) Plan(weights []*big.Rat, span types.ColdSpan, maxPartitions int) (*types.PlanTable, error) {
	// Step 1: Validate inputs up front; the sweep itself cannot fail
	if maxPartitions <= 0 {
		return nil, fmt.Errorf("%w: maxPartitions must be > 0, got %d", types.ErrInvalidLimit, maxPartitions)
	}
	if err := types.ValidateWeights(weights); err != nil {
		return nil, err
	}
	n := len(weights)
	if err := validateSpan(span, n); err != nil {
		return nil, err
	}

	// Step 2: Seed the only base case
	table := types.NewPlanTable(n, maxPartitions)
	table.Relax(0, 0, new(big.Rat))

	// Step 3: Forward relaxation in topological order
	next := new(big.Rat)
	for elems := range n {
		for parts := range maxPartitions {
			here, ok := table.At(elems, parts)
			if !ok {
				continue
			}

			if parts+1 < maxPartitions {
				table.Relax(span[elems], parts+1, here)
			}

			next.Add(here, weights[elems])
			table.Relax(elems+1, parts, next)
		}
	}

	best, bestParts := table.Best()
	p.logger.Debug(
		"hot weight plan complete",
		"elements", n,
		"max_partitions", maxPartitions,
		"reachable_cells", table.ReachableCount(),
		"best_hot_weight", best.RatString(),
		"best_partitions", bestParts,
	)

	return table, nil
}
