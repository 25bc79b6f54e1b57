package coldplan

import "github.com/arloliu/coldplan/types"

// Sentinel errors returned by the Optimizer.
//
// They are aliases of the types package errors, so errors.Is works no matter
// which package the caller imports.
var (
	// ErrInvalidLimit is returned when a limit is missing or non-positive.
	ErrInvalidLimit = types.ErrInvalidLimit

	// ErrInvalidWeight is returned when an element weight is missing or negative.
	ErrInvalidWeight = types.ErrInvalidWeight

	// ErrSpanMismatch is returned when planner stages are fed inconsistent inputs.
	ErrSpanMismatch = types.ErrSpanMismatch

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrWeightSourceRequired is returned when the weight source is nil.
	ErrWeightSourceRequired = types.ErrWeightSourceRequired

	// ErrContextCanceled is returned when a run is canceled before it starts.
	ErrContextCanceled = types.ErrContextCanceled
)
