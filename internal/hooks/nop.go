package hooks

import (
	"context"

	"github.com/arloliu/coldplan/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, string, *types.Result) error = (*NopHooks)(nil).OnPlanComplete
	_ func(context.Context, string, error) error         = (*NopHooks)(nil).OnPlanFailed
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPlanComplete: h.OnPlanComplete,
		OnPlanFailed:   h.OnPlanFailed,
	}
}

// Fill returns a copy of h with every nil callback replaced by its no-op version.
//
// Parameters:
//   - h: Caller-supplied hooks, may be nil or partially populated
//
// Returns:
//   - *types.Hooks: Hooks whose callbacks are all non-nil
func Fill(h *types.Hooks) *types.Hooks {
	filled := NewNop()
	if h == nil {
		return &filled
	}

	if h.OnPlanComplete != nil {
		filled.OnPlanComplete = h.OnPlanComplete
	}
	if h.OnPlanFailed != nil {
		filled.OnPlanFailed = h.OnPlanFailed
	}

	return &filled
}

// OnPlanComplete is a no-op implementation.
func (h *NopHooks) OnPlanComplete(ctx context.Context, name string, result *types.Result) error {
	return nil
}

// OnPlanFailed is a no-op implementation.
func (h *NopHooks) OnPlanFailed(ctx context.Context, name string, err error) error {
	return nil
}
