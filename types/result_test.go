package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	table := NewPlanTable(1, 2)
	table.Relax(0, 0, new(big.Rat))
	table.Relax(1, 0, big.NewRat(1, 10))
	table.Relax(1, 1, new(big.Rat))

	return &Result{
		Span:    ColdSpan{1},
		Reverse: ReverseColdSpan{0, 0},
		Table:   table,
	}
}

func TestResultFingerprint(t *testing.T) {
	t.Parallel()

	a := sampleResult()
	b := sampleResult()
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Table.Relax(1, 0, big.NewRat(1, 20))
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := sampleResult()
	c.Span = ColdSpan{0}
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
