package types

import "errors"

// Sentinel errors for the coldplan library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Validation wraps them with context using fmt.Errorf("%w: ...", ErrX, ...), so
// callers should never compare error strings.

// Input errors - structural problems detected before any computation starts.
var (
	// ErrInvalidLimit is returned when MaxColdElems, MaxColdWeight or MaxPartitions
	// is missing or non-positive.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidWeight is returned when an element weight is missing or negative.
	// Zero weights are legal.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrSpanMismatch is returned when a ColdSpan does not match the weight sequence
	// it is combined with (length mismatch or out-of-range entries).
	ErrSpanMismatch = errors.New("cold span does not match weights")
)

// Optimizer errors - returned by the root Optimizer facade.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWeightSourceRequired is returned when no weight source is available.
	ErrWeightSourceRequired = errors.New("weight source is required")

	// ErrContextCanceled is returned when a run is canceled before it starts.
	ErrContextCanceled = errors.New("operation canceled by context")
)
