package planner

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coldplan/types"
)

func TestComputeColdSpan_OversizedHead(t *testing.T) {
	weights := rats(3, 1, 1, 1)

	span, err := ComputeColdSpan(weights, 2, big.NewRat(2, 1))

	require.NoError(t, err)
	require.Equal(t, types.ColdSpan{1, 3, 4, 4}, span)
	requireSpanProperties(t, weights, span, 2, big.NewRat(2, 1))
}

func TestComputeColdSpan_ElementCap(t *testing.T) {
	weights := rats(0, 0, 0, 0, 0)

	span, err := ComputeColdSpan(weights, 2, big.NewRat(1, 1))

	require.NoError(t, err)
	require.Equal(t, types.ColdSpan{2, 3, 4, 5, 5}, span)
}

func TestComputeColdSpan_AllFit(t *testing.T) {
	weights := rats(1, 1, 1)

	span, err := ComputeColdSpan(weights, 10, big.NewRat(10, 1))

	require.NoError(t, err)
	require.Equal(t, types.ColdSpan{3, 3, 3}, span)
}

func TestComputeColdSpan_OversizedInMiddle(t *testing.T) {
	weights := rats(1, 5, 1, 1)

	span, err := ComputeColdSpan(weights, 4, big.NewRat(2, 1))

	require.NoError(t, err)
	// element 1 alone exceeds the cap and forms the singleton window [1,2)
	require.Equal(t, types.ColdSpan{1, 2, 4, 4}, span)
	requireSpanProperties(t, weights, span, 4, big.NewRat(2, 1))
}

func TestComputeColdSpan_ConsecutiveOversized(t *testing.T) {
	weights := rats(9, 9, 9)

	span, err := ComputeColdSpan(weights, 3, big.NewRat(1, 1))

	require.NoError(t, err)
	require.Equal(t, types.ColdSpan{1, 2, 3}, span)
}

func TestComputeColdSpan_ExactRationalBoundary(t *testing.T) {
	// 1/3 + 1/3 + 1/3 equals the cap exactly; a float sum would drift.
	third := big.NewRat(1, 3)
	weights := []*big.Rat{third, third, third, third}

	span, err := ComputeColdSpan(weights, 10, big.NewRat(1, 1))

	require.NoError(t, err)
	require.Equal(t, types.ColdSpan{3, 4, 4, 4}, span)
}

func TestComputeColdSpan_Reference(t *testing.T) {
	weights := referenceWeights()
	maxWeight := big.NewRat(2, 1)

	span, err := ComputeColdSpan(weights, 10, maxWeight)

	require.NoError(t, err)
	require.Equal(t, 2, span[0])
	require.Equal(t, 10, span[8])
	require.Equal(t, 19, span[9], "one heavy element plus nine light ones")
	require.Equal(t, 20, span[10])
	require.Equal(t, 70, span[60])
	requireSpanProperties(t, weights, span, 10, maxWeight)
}

func TestComputeColdSpan_Empty(t *testing.T) {
	span, err := ComputeColdSpan(nil, 1, big.NewRat(1, 1))

	require.NoError(t, err)
	require.Empty(t, span)
}

func TestComputeColdSpan_InvalidInput(t *testing.T) {
	weights := rats(1, 2)

	_, err := ComputeColdSpan(weights, 0, big.NewRat(1, 1))
	require.ErrorIs(t, err, types.ErrInvalidLimit)

	_, err = ComputeColdSpan(weights, 2, nil)
	require.ErrorIs(t, err, types.ErrInvalidLimit)

	_, err = ComputeColdSpan(weights, 2, big.NewRat(-1, 1))
	require.ErrorIs(t, err, types.ErrInvalidLimit)

	_, err = ComputeColdSpan([]*big.Rat{big.NewRat(-1, 2)}, 2, big.NewRat(1, 1))
	require.ErrorIs(t, err, types.ErrInvalidWeight)
}

func TestComputeColdSpan_RandomProperties(t *testing.T) {
	for i, tc := range randomCases(7, 300, 12) {
		span, err := ComputeColdSpan(tc.weights, tc.maxElems, tc.maxWeight)
		require.NoError(t, err, "case %d", i)
		requireSpanProperties(t, tc.weights, span, tc.maxElems, tc.maxWeight)
	}
}

func TestOversizedElements(t *testing.T) {
	weights := rats(3, 1, 2, 5)

	require.Equal(t, []int{0, 3}, OversizedElements(weights, big.NewRat(2, 1)))
	require.Empty(t, OversizedElements(weights, big.NewRat(5, 1)))
}
