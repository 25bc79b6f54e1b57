package planner

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/arloliu/coldplan/types"
)

// Reconstruct recovers a concrete Layout achieving the table's best hot weight.
//
// Starting at the best cell of the final row, each step finds a predecessor whose
// transition produces the current value exactly:
//   - Cold: a start s with span[s] == elems and cell (s, parts-1) equal to the current
//     value. Candidate starts come from reverse.StartsEndingAt and are tried first.
//   - Hot: cell (elems-1, parts) plus weight(elems-1) equal to the current value.
//
// Parameters:
//   - weights: The weights the table was planned with
//   - span: The ColdSpan the table was planned with
//   - reverse: InvertColdSpan(span)
//   - table: Output of HotWeightPlanner.Plan
//
// Returns:
//   - *types.Layout: Cold ranges in element order, hot indices ascending
//   - error: ErrSpanMismatch if the inputs do not belong to the same run
func Reconstruct(
	weights []*big.Rat,
	span types.ColdSpan,
	reverse types.ReverseColdSpan,
	table *types.PlanTable,
) (*types.Layout, error) {
	n := len(weights)
	if table.Elems() != n || len(span) != n || len(reverse) != n+1 {
		return nil, fmt.Errorf("%w: table, span and reverse span disagree on element count", types.ErrSpanMismatch)
	}

	cur, parts := table.Best()
	if cur == nil {
		return nil, fmt.Errorf("%w: plan table has no partition columns", types.ErrInvalidLimit)
	}

	layout := &types.Layout{HotWeight: new(big.Rat).Set(cur)}
	elems := n
	candidate := new(big.Rat)

	for elems > 0 {
		if start, ok := coldPredecessor(span, reverse, table, elems, parts, cur); ok {
			layout.Cold = append(layout.Cold, types.ColdRange{
				Start:  start,
				End:    elems,
				Weight: types.TotalWeight(weights, start, elems),
			})
			elems = start
			parts--

			continue
		}

		prev, ok := table.At(elems-1, parts)
		if ok && candidate.Add(prev, weights[elems-1]).Cmp(cur) == 0 {
			layout.Hot = append(layout.Hot, elems-1)
			cur = prev
			elems--

			continue
		}

		return nil, fmt.Errorf("%w: no predecessor for cell (%d, %d)", types.ErrSpanMismatch, elems, parts)
	}

	if parts != 0 || cur.Sign() != 0 {
		return nil, fmt.Errorf("%w: walk ended at partitions=%d value=%s", types.ErrSpanMismatch, parts, cur.RatString())
	}

	slices.Reverse(layout.Cold)
	slices.Reverse(layout.Hot)

	return layout, nil
}

func coldPredecessor(
	span types.ColdSpan,
	reverse types.ReverseColdSpan,
	table *types.PlanTable,
	elems, parts int,
	cur *big.Rat,
) (int, bool) {
	if parts == 0 {
		return 0, false
	}

	lo, hi := reverse.StartsEndingAt(span, elems)
	for start := lo; start < hi; start++ {
		prev, ok := table.At(start, parts-1)
		if ok && prev.Cmp(cur) == 0 {
			return start, true
		}
	}

	return 0, false
}
