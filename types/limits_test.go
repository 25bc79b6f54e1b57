package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimitsValidate(t *testing.T) {
	t.Parallel()

	valid := Limits{MaxColdElems: 2, MaxColdWeight: big.NewRat(2, 1), MaxPartitions: 3}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		limits Limits
	}{
		{"zero elems", Limits{MaxColdElems: 0, MaxColdWeight: big.NewRat(2, 1), MaxPartitions: 3}},
		{"negative elems", Limits{MaxColdElems: -1, MaxColdWeight: big.NewRat(2, 1), MaxPartitions: 3}},
		{"missing weight", Limits{MaxColdElems: 2, MaxPartitions: 3}},
		{"zero weight", Limits{MaxColdElems: 2, MaxColdWeight: new(big.Rat), MaxPartitions: 3}},
		{"negative weight", Limits{MaxColdElems: 2, MaxColdWeight: big.NewRat(-1, 2), MaxPartitions: 3}},
		{"zero partitions", Limits{MaxColdElems: 2, MaxColdWeight: big.NewRat(2, 1), MaxPartitions: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.limits.Validate(), ErrInvalidLimit)
		})
	}
}

func TestValidateWeights(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateWeights(nil))
	require.NoError(t, ValidateWeights([]*big.Rat{new(big.Rat), big.NewRat(1, 10)}))

	err := ValidateWeights([]*big.Rat{big.NewRat(1, 1), big.NewRat(-1, 3)})
	require.ErrorIs(t, err, ErrInvalidWeight)
	require.Contains(t, err.Error(), "element 1")

	require.ErrorIs(t, ValidateWeights([]*big.Rat{nil}), ErrInvalidWeight)
}

func TestTotalWeight(t *testing.T) {
	t.Parallel()

	weights := []*big.Rat{big.NewRat(1, 1), big.NewRat(1, 10), big.NewRat(1, 10)}

	require.Equal(t, 0, TotalWeight(weights, 0, 3).Cmp(big.NewRat(6, 5)))
	require.Equal(t, 0, TotalWeight(weights, 1, 1).Sign())
}
