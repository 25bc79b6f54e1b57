// Package planner implements the hot/cold capacity-planning optimizer.
//
// Given element weights (expected query frequency) in a fixed order and per-partition
// limits, the planner decides which contiguous runs of elements go to bounded cold
// partitions so that the weight left in the hot tier is minimal.
//
// The pipeline has four stages, each consuming the previous stage's output:
//
//   - ComputeColdSpan: Sliding-window pass giving, for every start, the exclusive end of
//     the longest run that fits one cold partition
//   - InvertColdSpan: Cursor pass giving, for every end, the smallest start reaching it
//   - HotWeightPlanner.Plan: Forward-relaxation dynamic program over
//     (elements consumed, cold partitions used)
//   - Reconstruct: Walks the plan table back from the best cell to a concrete Layout
//
// # Numeric Model
//
// Weights and sums are exact rationals (math/big.Rat). Feasibility checks are exact
// threshold comparisons, and reconstruction matches table cells by equality, so no
// floating-point tolerance is involved anywhere.
//
// # Oversized Elements
//
// An element whose own weight exceeds the cold weight cap is not an error: the window
// never evicts the element it is currently admitting, so such an element forms a
// singleton cold window [i, i+1).
//
// All functions are pure. Each call allocates its own output; nothing is cached or
// shared between calls, so independent runs may execute concurrently.
package planner
