package planner

import "github.com/arloliu/coldplan/types"

// InvertColdSpan computes, for every end in [0, N], the smallest start whose cold
// window reaches at least that end.
//
// A cursor spanEnd walks [0, N] once: for each start in order, every end up to
// span[start] not yet assigned gets that start. Monotonicity of span guarantees each
// end is assigned exactly once, so the pass is O(N).
//
// Parameters:
//   - span: A ColdSpan produced by ComputeColdSpan
//
// Returns:
//   - types.ReverseColdSpan: N+1 entries; [0] for an empty span
//   - error: ErrSpanMismatch if span is not a well-formed ColdSpan
func InvertColdSpan(span types.ColdSpan) (types.ReverseColdSpan, error) {
	n := len(span)
	if err := validateSpan(span, n); err != nil {
		return nil, err
	}

	reverse := make(types.ReverseColdSpan, n+1)
	spanEnd := 0
	for elemIdx := range n {
		for spanEnd <= span[elemIdx] {
			reverse[spanEnd] = elemIdx
			spanEnd++
		}
	}

	return reverse, nil
}
