package types

import "math/big"

// ColdRange is one committed cold partition covering elements [Start, End).
type ColdRange struct {
	Start  int      `json:"start"`
	End    int      `json:"end"`
	Weight *big.Rat `json:"weight"`
}

// Len returns the number of elements in the range.
func (r ColdRange) Len() int {
	return r.End - r.Start
}

// Layout is a concrete placement recovered from a PlanTable.
type Layout struct {
	// Cold lists the cold partitions in element order.
	Cold []ColdRange `json:"cold"`

	// Hot lists the indices of elements left in the hot tier, ascending.
	Hot []int `json:"hot"`

	// HotWeight is the total weight of the hot elements.
	HotWeight *big.Rat `json:"hotWeight"`
}

// Partitions returns the number of cold partitions used.
func (l *Layout) Partitions() int {
	return len(l.Cold)
}
