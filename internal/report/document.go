// Package report renders planning results for humans (aligned text) and for
// machines (JSON).
//
// Rationals are rendered with big.Rat.RatString ("2", "1/10") in both formats, so
// values round-trip exactly.
package report

import (
	"fmt"
	"math/big"

	"github.com/samber/lo"

	"github.com/arloliu/coldplan/types"
)

// Document is the serializable form of a types.Result.
type Document struct {
	Limits         LimitsDocument `json:"limits"`
	Elements       int            `json:"elements"`
	Span           []int          `json:"span"`
	Reverse        []int          `json:"reverse"`
	Table          [][]*string    `json:"table,omitempty"`
	BestHotWeight  string         `json:"bestHotWeight"`
	BestPartitions int            `json:"bestPartitions"`
	Layout         LayoutDocument `json:"layout"`
	Fingerprint    string         `json:"fingerprint"`
}

// LimitsDocument mirrors types.Limits with a textual weight.
type LimitsDocument struct {
	MaxColdElems  int    `json:"maxColdElems"`
	MaxColdWeight string `json:"maxColdWeight"`
	MaxPartitions int    `json:"maxPartitions"`
}

// RangeDocument is one cold partition [Start, End).
type RangeDocument struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Weight string `json:"weight"`
}

// LayoutDocument mirrors types.Layout.
type LayoutDocument struct {
	Cold      []RangeDocument `json:"cold"`
	Hot       []int           `json:"hot"`
	HotWeight string          `json:"hotWeight"`
}

// NewDocument converts res into its serializable form.
//
// Parameters:
//   - res: Planning result
//   - withTable: Include every plan table cell (null for unreachable cells)
//
// Returns:
//   - *Document: Snapshot independent of res
func NewDocument(res *types.Result, withTable bool) *Document {
	doc := &Document{
		Limits: LimitsDocument{
			MaxColdElems:  res.Limits.MaxColdElems,
			MaxColdWeight: ratString(res.Limits.MaxColdWeight),
			MaxPartitions: res.Limits.MaxPartitions,
		},
		Elements:       len(res.Weights),
		Span:           append([]int{}, res.Span...),
		Reverse:        append([]int{}, res.Reverse...),
		BestHotWeight:  ratString(res.BestHotWeight),
		BestPartitions: res.BestPartitions,
		Fingerprint:    fmt.Sprintf("%016x", res.Fingerprint()),
	}

	if res.Layout != nil {
		doc.Layout = LayoutDocument{
			Cold: lo.Map(res.Layout.Cold, func(r types.ColdRange, _ int) RangeDocument {
				return RangeDocument{Start: r.Start, End: r.End, Weight: ratString(r.Weight)}
			}),
			Hot:       append([]int{}, res.Layout.Hot...),
			HotWeight: ratString(res.Layout.HotWeight),
		}
	}

	if withTable && res.Table != nil {
		doc.Table = lo.Map(res.Table.Rows(), func(row []*big.Rat, _ int) []*string {
			return lo.Map(row, func(v *big.Rat, _ int) *string {
				if v == nil {
					return nil
				}
				s := v.RatString()

				return &s
			})
		})
	}

	return doc
}

func ratString(r *big.Rat) string {
	if r == nil {
		return ""
	}

	return r.RatString()
}
