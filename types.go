package coldplan

import "github.com/arloliu/coldplan/types"

// Re-export types from the internal types package.
//
// Internal packages depend on `types` rather than the root package, which keeps
// the import graph acyclic while still offering `coldplan.Result`,
// `coldplan.Logger` and friends to users.
type (
	Limits          = types.Limits
	ColdSpan        = types.ColdSpan
	ReverseColdSpan = types.ReverseColdSpan
	PlanTable       = types.PlanTable
	ColdRange       = types.ColdRange
	Layout          = types.Layout
	Result          = types.Result
)

// Re-export interfaces from the internal types package for convenience.
type (
	WeightSource     = types.WeightSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)
