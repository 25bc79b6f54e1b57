package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/arloliu/coldplan/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()

	require.NotNil(t, hooks.OnPlanComplete)
	require.NotNil(t, hooks.OnPlanFailed)
}

func TestNopHooks_OnPlanComplete(t *testing.T) {
	hooks := NewNop()

	err := hooks.OnPlanComplete(context.Background(), "run", &types.Result{})
	require.NoError(t, err)
}

func TestNopHooks_OnPlanFailed(t *testing.T) {
	hooks := NewNop()

	err := hooks.OnPlanFailed(context.Background(), "run", context.Canceled)
	require.NoError(t, err)
}

func TestFill(t *testing.T) {
	t.Run("nil hooks become no-ops", func(t *testing.T) {
		filled := Fill(nil)

		require.NotNil(t, filled.OnPlanComplete)
		require.NotNil(t, filled.OnPlanFailed)
	})

	t.Run("keeps caller callbacks", func(t *testing.T) {
		sentinel := errors.New("from caller")
		filled := Fill(&types.Hooks{
			OnPlanFailed: func(context.Context, string, error) error { return sentinel },
		})

		require.NoError(t, filled.OnPlanComplete(context.Background(), "", nil))
		require.ErrorIs(t, filled.OnPlanFailed(context.Background(), "", nil), sentinel)
	})
}
