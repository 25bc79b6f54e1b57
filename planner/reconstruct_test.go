package planner

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coldplan/types"
)

func reconstructFor(t *testing.T, weights []*big.Rat, maxElems int, maxWeight *big.Rat, maxPartitions int) (types.ColdSpan, *types.PlanTable, *types.Layout) {
	t.Helper()

	span, table := planFor(t, weights, maxElems, maxWeight, maxPartitions)
	reverse, err := InvertColdSpan(span)
	require.NoError(t, err)

	layout, err := Reconstruct(weights, span, reverse, table)
	require.NoError(t, err)

	return span, table, layout
}

// requireLayoutConsistent checks that layout is a valid placement achieving the
// table's best value.
func requireLayoutConsistent(t *testing.T, weights []*big.Rat, span types.ColdSpan, table *types.PlanTable, layout *types.Layout) {
	t.Helper()

	best, parts := table.Best()
	require.Equal(t, best.RatString(), layout.HotWeight.RatString())
	require.Equal(t, parts, layout.Partitions())

	covered := make([]int, len(weights))
	for _, r := range layout.Cold {
		require.Equal(t, span[r.Start], r.End, "cold range must be a maximal span")
		require.Equal(t, types.TotalWeight(weights, r.Start, r.End).RatString(), r.Weight.RatString())
		for i := r.Start; i < r.End; i++ {
			covered[i]++
		}
	}

	hotSum := new(big.Rat)
	for _, i := range layout.Hot {
		covered[i]++
		hotSum.Add(hotSum, weights[i])
	}
	require.Equal(t, best.RatString(), hotSum.RatString())

	for i, c := range covered {
		require.Equal(t, 1, c, "element %d must be placed exactly once", i)
	}
}

func TestReconstruct_Scenario(t *testing.T) {
	weights := rats(3, 1, 1, 1)

	span, table, layout := reconstructFor(t, weights, 2, big.NewRat(2, 1), 3)

	require.Len(t, layout.Cold, 2)
	require.Equal(t, [2]int{0, 1}, [2]int{layout.Cold[0].Start, layout.Cold[0].End})
	require.Equal(t, "3", layout.Cold[0].Weight.RatString())
	require.Equal(t, [2]int{2, 4}, [2]int{layout.Cold[1].Start, layout.Cold[1].End})
	require.Equal(t, "2", layout.Cold[1].Weight.RatString())
	require.Equal(t, []int{1}, layout.Hot)
	requireLayoutConsistent(t, weights, span, table, layout)
}

func TestReconstruct_Reference(t *testing.T) {
	weights := referenceWeights()

	span, table, layout := reconstructFor(t, weights, 10, big.NewRat(2, 1), 10)

	require.Len(t, layout.Cold, 9)
	require.Len(t, layout.Hot, 20)
	require.Equal(t, "2", layout.HotWeight.RatString())
	requireLayoutConsistent(t, weights, span, table, layout)
}

func TestReconstruct_AllHot(t *testing.T) {
	weights := rats(2, 0, 5)

	span, table, layout := reconstructFor(t, weights, 2, big.NewRat(1, 1), 1)

	require.Empty(t, layout.Cold)
	require.Equal(t, []int{0, 1, 2}, layout.Hot)
	requireLayoutConsistent(t, weights, span, table, layout)
}

func TestReconstruct_Empty(t *testing.T) {
	_, _, layout := reconstructFor(t, nil, 1, big.NewRat(1, 1), 2)

	require.Empty(t, layout.Cold)
	require.Empty(t, layout.Hot)
	require.Equal(t, 0, layout.HotWeight.Sign())
}

func TestReconstruct_Random(t *testing.T) {
	for _, tc := range randomCases(99, 300, 10) {
		span, table, layout := reconstructFor(t, tc.weights, tc.maxElems, tc.maxWeight, tc.maxPartitions)
		requireLayoutConsistent(t, tc.weights, span, table, layout)
	}
}

func TestReconstruct_MismatchedInputs(t *testing.T) {
	weights := rats(3, 1, 1, 1)
	span, table := planFor(t, weights, 2, big.NewRat(2, 1), 3)
	reverse, err := InvertColdSpan(span)
	require.NoError(t, err)

	_, err = Reconstruct(weights[:3], span, reverse, table)
	require.ErrorIs(t, err, types.ErrSpanMismatch)

	_, err = Reconstruct(weights, span, reverse[:4], table)
	require.ErrorIs(t, err, types.ErrSpanMismatch)
}
