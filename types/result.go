package types

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/xxh3"
)

// Result is the complete output of one planning run.
//
// Every field is freshly allocated for the run and never shared with another run.
type Result struct {
	// Limits are the limits the run was planned with.
	Limits Limits

	// Weights are the element weights the run was planned with.
	Weights []*big.Rat

	// Span is the maximal cold window per start index.
	Span ColdSpan

	// Reverse is the inverse of Span over [0, N].
	Reverse ReverseColdSpan

	// Table is the filled plan table.
	Table *PlanTable

	// BestHotWeight is the minimum hot-tier weight over all partition counts.
	BestHotWeight *big.Rat

	// BestPartitions is the cold partition count achieving BestHotWeight.
	BestPartitions int

	// Layout is the placement achieving BestHotWeight.
	Layout *Layout
}

// Fingerprint returns a 64-bit xxh3 digest of the spans and every table cell.
//
// Two runs over identical inputs produce identical fingerprints; it is a cheap way
// to compare plans without walking the table.
//
// Returns:
//   - uint64: Digest of the run output
func (r *Result) Fingerprint() uint64 {
	hasher := xxh3.New()

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = hasher.Write(buf[:])
	}

	writeInt(len(r.Span))
	for _, end := range r.Span {
		writeInt(end)
	}
	writeInt(len(r.Reverse))
	for _, start := range r.Reverse {
		writeInt(start)
	}

	if r.Table != nil {
		writeInt(r.Table.Elems())
		writeInt(r.Table.Partitions())
		for _, row := range r.Table.cells {
			for _, v := range row {
				if v == nil {
					_, _ = hasher.Write([]byte{0})

					continue
				}
				_, _ = hasher.Write([]byte{1})
				_, _ = hasher.WriteString(v.RatString())
				_, _ = hasher.Write([]byte{0})
			}
		}
	}

	return hasher.Sum64()
}
