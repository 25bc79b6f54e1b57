package types

import (
	"context"
	"math/big"
)

// WeightSource provides the ordered element weights for a planning run.
//
// Implementations can produce weights from various places:
//   - Static: fixed list, e.g. measured query counts
//   - Generators: uniform, piecewise-constant and zipfian distributions
//   - Custom: any query-statistics backend
//
// The element order returned is the planning order; the optimizer never reorders.
type WeightSource interface {
	// Weights returns one non-negative weight per element.
	//
	// Implementations should:
	//   - Return a fresh slice (callers may keep it)
	//   - Handle context cancellation gracefully
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []*big.Rat: Element weights in planning order
	//   - error: Source error (nil on success)
	Weights(ctx context.Context) ([]*big.Rat, error)
}
