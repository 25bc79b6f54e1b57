package source

import (
	"context"
	"math/big"
	"sync"

	"github.com/samber/lo"

	"github.com/arloliu/coldplan/types"
)

// Static implements a weight source with a fixed list of weights.
type Static struct {
	mu      sync.RWMutex
	weights []*big.Rat
}

var _ types.WeightSource = (*Static)(nil)

// NewStatic creates a new static weight source.
//
// The source keeps its own copy of weights, so later changes to the caller's
// slice or values do not leak into planning runs.
//
// Parameters:
//   - weights: Element weights in planning order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]*big.Rat{big.NewRat(3, 1), big.NewRat(1, 10)})
//	res, err := optimizer.RunSource(ctx, src)
func NewStatic(weights []*big.Rat) *Static {
	return &Static{weights: cloneWeights(weights)}
}

// Weights returns a deep copy of the static weights.
//
// Returns:
//   - []*big.Rat: The fixed list of weights
//   - error: ctx.Err() if the context is already done
func (s *Static) Weights(ctx context.Context) ([]*big.Rat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneWeights(s.weights), nil
}

// Update replaces the weight list.
//
// Example:
//
//	src := source.NewStatic(initial)
//	// Later: fresh query statistics arrived
//	src.Update(measured)
func (s *Static) Update(weights []*big.Rat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weights = cloneWeights(weights)
}

func cloneWeights(weights []*big.Rat) []*big.Rat {
	return lo.Map(weights, func(w *big.Rat, _ int) *big.Rat {
		if w == nil {
			return nil
		}

		return new(big.Rat).Set(w)
	})
}
