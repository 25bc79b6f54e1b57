// Package source provides built-in weight source implementations.
//
// Weight sources supply the ordered per-element query weights a planning run
// consumes. The package includes:
//
//   - Static: Fixed list of weights (e.g. measured query counts)
//   - Uniform: Every element carries the same weight
//   - Piecewise: Consecutive runs of equal weight, e.g. a hot head and a cold tail
//   - Zipfian: Weight proportional to 1/(rank+1)^s, quantized to exact rationals
//
// ParseWeights reads weights from text ("1", "1/10", "0.5"), one or many per line.
//
// Custom sources can be implemented by satisfying the types.WeightSource interface.
package source
