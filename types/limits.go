package types

import (
	"fmt"
	"math/big"
)

// Limits bounds every cold partition and the number of partition slots.
//
// A cold partition may hold at most MaxColdElems consecutive elements whose
// cumulative weight does not exceed MaxColdWeight. MaxPartitions is the size of
// the slot pool and the column count of a PlanTable; committing a cold partition
// from column k lands in column k+1, which must stay below MaxPartitions.
type Limits struct {
	// MaxColdElems is the maximum element count per cold partition (inclusive).
	MaxColdElems int `json:"maxColdElems"`

	// MaxColdWeight is the maximum cumulative weight per cold partition (inclusive).
	MaxColdWeight *big.Rat `json:"maxColdWeight"`

	// MaxPartitions is the number of partition slots available to the planner.
	MaxPartitions int `json:"maxPartitions"`
}

// Validate checks that every limit is present and strictly positive.
//
// Returns:
//   - error: ErrInvalidLimit wrapped with the offending field, nil if valid
func (l Limits) Validate() error {
	if l.MaxColdElems <= 0 {
		return fmt.Errorf("%w: maxColdElems must be > 0, got %d", ErrInvalidLimit, l.MaxColdElems)
	}
	if l.MaxColdWeight == nil {
		return fmt.Errorf("%w: maxColdWeight is required", ErrInvalidLimit)
	}
	if l.MaxColdWeight.Sign() <= 0 {
		return fmt.Errorf("%w: maxColdWeight must be > 0, got %s", ErrInvalidLimit, l.MaxColdWeight.RatString())
	}
	if l.MaxPartitions <= 0 {
		return fmt.Errorf("%w: maxPartitions must be > 0, got %d", ErrInvalidLimit, l.MaxPartitions)
	}

	return nil
}

// ValidateWeights rejects nil or negative weights. Zero weights are legal.
//
// Parameters:
//   - weights: Element weights in element order
//
// Returns:
//   - error: ErrInvalidWeight wrapped with the element index, nil if valid
func ValidateWeights(weights []*big.Rat) error {
	for i, w := range weights {
		if w == nil {
			return fmt.Errorf("%w: element %d has no weight", ErrInvalidWeight, i)
		}
		if w.Sign() < 0 {
			return fmt.Errorf("%w: element %d has negative weight %s", ErrInvalidWeight, i, w.RatString())
		}
	}

	return nil
}

// TotalWeight returns the exact sum of weights in [from, to).
func TotalWeight(weights []*big.Rat, from, to int) *big.Rat {
	sum := new(big.Rat)
	for i := from; i < to; i++ {
		sum.Add(sum, weights[i])
	}

	return sum
}
