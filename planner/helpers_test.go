package planner

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coldplan/types"
)

func rats(values ...int64) []*big.Rat {
	out := make([]*big.Rat, len(values))
	for i, v := range values {
		out[i] = big.NewRat(v, 1)
	}

	return out
}

// referenceWeights is the 70-element reference workload: 10 elements of weight 1
// followed by 60 elements of weight 1/10.
func referenceWeights() []*big.Rat {
	weights := make([]*big.Rat, 0, 70)
	for range 10 {
		weights = append(weights, big.NewRat(1, 1))
	}
	for range 60 {
		weights = append(weights, big.NewRat(1, 10))
	}

	return weights
}

type randomCase struct {
	weights       []*big.Rat
	maxElems      int
	maxWeight     *big.Rat
	maxPartitions int
}

func randomCases(seed int64, count, maxN int) []randomCase {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test input

	cases := make([]randomCase, count)
	for i := range cases {
		n := rng.Intn(maxN + 1)
		weights := make([]*big.Rat, n)
		for j := range weights {
			weights[j] = big.NewRat(rng.Int63n(5), rng.Int63n(3)+1)
		}
		cases[i] = randomCase{
			weights:       weights,
			maxElems:      rng.Intn(4) + 1,
			maxWeight:     big.NewRat(rng.Int63n(6)+1, 2),
			maxPartitions: rng.Intn(4) + 1,
		}
	}

	return cases
}

// bruteForceBest enumerates every placement where cold partitions are arbitrary
// feasible contiguous windows (not only maximal ones) and returns the minimum hot
// weight using at most maxColdPartitions cold partitions.
func bruteForceBest(weights []*big.Rat, maxElems int, maxWeight *big.Rat, maxColdPartitions int) *big.Rat {
	n := len(weights)

	var solve func(i, remaining int) *big.Rat
	solve = func(i, remaining int) *big.Rat {
		if i == n {
			return new(big.Rat)
		}

		best := new(big.Rat).Add(weights[i], solve(i+1, remaining))
		if remaining == 0 {
			return best
		}

		window := new(big.Rat)
		for end := i + 1; end <= n && end-i <= maxElems; end++ {
			window.Add(window, weights[end-1])
			if end-i > 1 && window.Cmp(maxWeight) > 0 {
				break
			}
			if cand := solve(end, remaining-1); cand.Cmp(best) < 0 {
				best = cand
			}
		}

		return best
	}

	return solve(0, maxColdPartitions)
}

// requireSpanProperties checks monotonicity, feasibility (with the oversized
// singleton exception) and maximality of span.
func requireSpanProperties(t *testing.T, weights []*big.Rat, span types.ColdSpan, maxElems int, maxWeight *big.Rat) {
	t.Helper()

	n := len(weights)
	require.Len(t, span, n)

	for i := range n {
		end := span[i]
		require.Greater(t, end, i, "span[%d] must be non-empty", i)
		require.LessOrEqual(t, end, n)
		if i > 0 {
			require.LessOrEqual(t, span[i-1], end, "span must be non-decreasing at %d", i)
		}

		length := end - i
		sum := types.TotalWeight(weights, i, end)
		require.LessOrEqual(t, length, maxElems, "window %d too long", i)
		if length > 1 || weights[i].Cmp(maxWeight) <= 0 {
			require.LessOrEqual(t, sum.Cmp(maxWeight), 0, "window [%d,%d) too heavy: %s", i, end, sum.RatString())
		}

		if end < n {
			extended := new(big.Rat).Add(sum, weights[end])
			require.True(t, length+1 > maxElems || extended.Cmp(maxWeight) > 0,
				"window [%d,%d) could be extended", i, end)
		}
	}
}

func ratStrings(rows [][]*big.Rat) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			if v == nil {
				out[i][j] = "-"

				continue
			}
			out[i][j] = v.RatString()
		}
	}

	return out
}
