package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("wrapped errors keep identity", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: maxColdElems=%d", ErrInvalidLimit, 0)
		require.ErrorIs(t, wrapped, ErrInvalidLimit)
		require.NotErrorIs(t, wrapped, ErrInvalidWeight)

		joined := errors.Join(ErrInvalidWeight, errors.New("additional context"))
		require.ErrorIs(t, joined, ErrInvalidWeight)
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidLimit,
			ErrInvalidWeight,
			ErrSpanMismatch,
			ErrInvalidConfig,
			ErrWeightSourceRequired,
			ErrContextCanceled,
		}

		for i, a := range allErrors {
			for j, b := range allErrors {
				if i == j {
					continue
				}
				require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	})
}
