package types

import "math/big"

// PlanTable holds the minimum hot-tier weight for every (elems, parts) state.
//
// Cell (elems, parts) is the smallest cumulative hot weight achievable after the
// first elems elements have been disposed of (kept hot or placed cold) using
// exactly parts cold partitions. A nil cell means the state is unreachable.
// The table is immutable once built; accessors return copies.
type PlanTable struct {
	cells [][]*big.Rat
}

// NewPlanTable allocates an empty table with elems+1 rows and parts columns.
// Every cell starts unreachable.
func NewPlanTable(elems, parts int) *PlanTable {
	cells := make([][]*big.Rat, elems+1)
	for i := range cells {
		cells[i] = make([]*big.Rat, parts)
	}

	return &PlanTable{cells: cells}
}

// Elems returns N, the number of elements the table covers (rows - 1).
func (t *PlanTable) Elems() int {
	return len(t.cells) - 1
}

// Partitions returns the column count (MaxPartitions).
func (t *PlanTable) Partitions() int {
	if len(t.cells) == 0 {
		return 0
	}

	return len(t.cells[0])
}

// Reachable reports whether the state (elems, parts) can be reached.
func (t *PlanTable) Reachable(elems, parts int) bool {
	return t.cells[elems][parts] != nil
}

// At returns a copy of cell (elems, parts) and whether it is reachable.
func (t *PlanTable) At(elems, parts int) (*big.Rat, bool) {
	v := t.cells[elems][parts]
	if v == nil {
		return nil, false
	}

	return new(big.Rat).Set(v), true
}

// Relax stores value into (elems, parts) when the cell is unreachable or value is
// strictly smaller than the current one. The table keeps its own copy of value.
//
// Returns:
//   - bool: true if the cell was updated
func (t *PlanTable) Relax(elems, parts int, value *big.Rat) bool {
	cur := t.cells[elems][parts]
	if cur != nil && value.Cmp(cur) >= 0 {
		return false
	}
	t.cells[elems][parts] = new(big.Rat).Set(value)

	return true
}

// Best returns the minimum over the final row (all elements disposed of) and the
// partition count that achieves it. Ties resolve to the fewest cold partitions.
//
// Returns:
//   - *big.Rat: bestHotWeight (nil only for a table without columns)
//   - int: Cold partitions used by the best plan (-1 when nil)
func (t *PlanTable) Best() (*big.Rat, int) {
	return t.BestWithin(t.Elems(), t.Partitions()-1)
}

// BestWithin returns the minimum of row elems over columns [0, maxParts].
//
// Unlike a single cell, this value never increases as maxParts grows, which is the
// "more cold slots never hurt" view of the table.
//
// Returns:
//   - *big.Rat: Copy of the minimum, nil if no cell in range is reachable
//   - int: Column of the minimum (-1 when nil)
func (t *PlanTable) BestWithin(elems, maxParts int) (*big.Rat, int) {
	var best *big.Rat
	bestParts := -1

	row := t.cells[elems]
	for parts := 0; parts <= maxParts && parts < len(row); parts++ {
		v := row[parts]
		if v == nil {
			continue
		}
		if best == nil || v.Cmp(best) < 0 {
			best = v
			bestParts = parts
		}
	}

	if best == nil {
		return nil, -1
	}

	return new(big.Rat).Set(best), bestParts
}

// ReachableCount returns the number of reachable cells.
func (t *PlanTable) ReachableCount() int {
	count := 0
	for _, row := range t.cells {
		for _, v := range row {
			if v != nil {
				count++
			}
		}
	}

	return count
}

// Rows returns a deep copy of all cells, row-major. Unreachable cells are nil.
func (t *PlanTable) Rows() [][]*big.Rat {
	rows := make([][]*big.Rat, len(t.cells))
	for i, row := range t.cells {
		rows[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			if v != nil {
				rows[i][j] = new(big.Rat).Set(v)
			}
		}
	}

	return rows
}
