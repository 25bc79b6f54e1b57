package types

// ColdSpan maps a start index to the exclusive end of the longest cold window
// beginning there: elements [start, ColdSpan[start]) fit in one cold partition.
//
// Values are non-decreasing in start. An element whose own weight exceeds the
// cold weight cap still forms the singleton window [start, start+1).
type ColdSpan []int

// End returns the exclusive end of the cold window starting at start.
func (s ColdSpan) End(start int) int {
	return s[start]
}

// Len returns the number of elements the span was computed for.
func (s ColdSpan) Len() int {
	return len(s)
}

// ReverseColdSpan maps an end index in [0, N] to the smallest start whose cold
// window reaches at least that far: ColdSpan[ReverseColdSpan[end]] >= end.
type ReverseColdSpan []int

// MinStart returns the smallest start whose cold window reaches end.
func (r ReverseColdSpan) MinStart(end int) int {
	return r[end]
}

// StartsEndingAt returns the half-open range [lo, hi) of starts whose cold window
// ends exactly at end. The range is empty (lo == hi) when no window ends there.
//
// Parameters:
//   - span: The ColdSpan this reverse table was derived from
//   - end: Exclusive window end in [0, N]
//
// Returns:
//   - lo: First start with span[start] == end
//   - hi: One past the last such start
func (r ReverseColdSpan) StartsEndingAt(span ColdSpan, end int) (lo, hi int) {
	lo = r[end]
	hi = lo
	for hi < len(span) && span[hi] == end {
		hi++
	}

	return lo, hi
}
