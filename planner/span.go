package planner

import (
	"fmt"
	"math/big"

	"github.com/arloliu/coldplan/types"
)

// ComputeColdSpan computes the maximal cold window for every start index.
//
// The algorithm is a two-pointer sliding window over [begin, end]:
//  1. Admit element end and add its weight to the running sum
//  2. If the window now holds more than maxElems elements, close the window at begin
//  3. While the sum exceeds maxWeight and begin is still before end, close the window at begin
//  4. Every start still open after the pass extends to N
//
// Closing the window at begin records span[begin] = end and drops begin's weight.
// Step 3 never evicts the element being admitted, so an element heavier than
// maxWeight occupies a singleton window of its own.
//
// Parameters:
//   - weights: Non-negative element weights in planning order
//   - maxElems: Maximum elements per cold partition (> 0)
//   - maxWeight: Maximum cumulative weight per cold partition (> 0)
//
// Returns:
//   - types.ColdSpan: span[i] is the exclusive end of the window starting at i
//   - error: ErrInvalidLimit or ErrInvalidWeight on malformed input
//
// Example:
//
//	span, err := planner.ComputeColdSpan(weights, 2, big.NewRat(2, 1))
//	// weights [3 1 1 1] → span [1 3 4 4]
func ComputeColdSpan(weights []*big.Rat, maxElems int, maxWeight *big.Rat) (types.ColdSpan, error) {
	if maxElems <= 0 {
		return nil, fmt.Errorf("%w: maxColdElems must be > 0, got %d", types.ErrInvalidLimit, maxElems)
	}
	if maxWeight == nil || maxWeight.Sign() <= 0 {
		return nil, fmt.Errorf("%w: maxColdWeight must be > 0", types.ErrInvalidLimit)
	}
	if err := types.ValidateWeights(weights); err != nil {
		return nil, err
	}

	n := len(weights)
	span := make(types.ColdSpan, n)
	sum := new(big.Rat)
	begin := 0

	for end := range n {
		sum.Add(sum, weights[end])

		if end-begin+1 > maxElems {
			span[begin] = end
			sum.Sub(sum, weights[begin])
			begin++
		}

		for begin < end && sum.Cmp(maxWeight) > 0 {
			span[begin] = end
			sum.Sub(sum, weights[begin])
			begin++
		}
	}

	for ; begin < n; begin++ {
		span[begin] = n
	}

	return span, nil
}

// OversizedElements returns the indices of elements whose own weight exceeds maxWeight.
//
// These elements are planned as singleton cold windows; the optimizer reports them
// so operators can spot limits that are tighter than individual elements.
func OversizedElements(weights []*big.Rat, maxWeight *big.Rat) []int {
	var oversized []int
	for i, w := range weights {
		if w.Cmp(maxWeight) > 0 {
			oversized = append(oversized, i)
		}
	}

	return oversized
}

// validateSpan checks that span is a well-formed ColdSpan over n elements:
// every window is non-empty, ends within [1, n] and ends are non-decreasing.
func validateSpan(span types.ColdSpan, n int) error {
	if len(span) != n {
		return fmt.Errorf("%w: span covers %d elements, weights have %d", types.ErrSpanMismatch, len(span), n)
	}

	prev := 0
	for start, end := range span {
		if end <= start || end > n {
			return fmt.Errorf("%w: span[%d]=%d is outside (%d, %d]", types.ErrSpanMismatch, start, end, start, n)
		}
		if end < prev {
			return fmt.Errorf("%w: span[%d]=%d decreases from %d", types.ErrSpanMismatch, start, end, prev)
		}
		prev = end
	}

	return nil
}
