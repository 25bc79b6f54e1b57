package source

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/samber/lo"

	"github.com/arloliu/coldplan/types"
)

const defaultZipfianPrecision = int64(1_000_000)

// ErrInvalidGenerator is returned when a generator is configured with unusable parameters.
var ErrInvalidGenerator = errors.New("invalid weight generator")

// Uniform generates count elements of identical weight.
type Uniform struct {
	count  int
	weight *big.Rat
}

var _ types.WeightSource = (*Uniform)(nil)

// NewUniform creates a new uniform weight generator.
//
// Parameters:
//   - count: Number of elements (>= 0)
//   - weight: Weight of every element (>= 0)
//
// Returns:
//   - *Uniform: Initialized generator
//   - error: ErrInvalidGenerator on negative count or weight
func NewUniform(count int, weight *big.Rat) (*Uniform, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: uniform count must be >= 0, got %d", ErrInvalidGenerator, count)
	}
	if weight == nil || weight.Sign() < 0 {
		return nil, fmt.Errorf("%w: uniform weight must be >= 0", ErrInvalidGenerator)
	}

	return &Uniform{count: count, weight: new(big.Rat).Set(weight)}, nil
}

// Weights creates the uniform weight sequence.
func (g *Uniform) Weights(ctx context.Context) ([]*big.Rat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return lo.Times(g.count, func(_ int) *big.Rat {
		return new(big.Rat).Set(g.weight)
	}), nil
}

// Segment is a run of Count consecutive elements sharing Weight.
type Segment struct {
	Count  int
	Weight *big.Rat
}

// Piecewise generates consecutive runs of equal weight.
//
// For segments [{10, 1}, {60, 1/10}] it produces ten elements of weight 1
// followed by sixty elements of weight 1/10.
type Piecewise struct {
	segments []Segment
}

var _ types.WeightSource = (*Piecewise)(nil)

// NewPiecewise creates a new piecewise-constant weight generator.
//
// Parameters:
//   - segments: Runs in element order; zero-count runs are allowed and skipped
//
// Returns:
//   - *Piecewise: Initialized generator
//   - error: ErrInvalidGenerator on a negative count or a nil/negative weight
func NewPiecewise(segments []Segment) (*Piecewise, error) {
	copied := make([]Segment, len(segments))
	for i, seg := range segments {
		if seg.Count < 0 {
			return nil, fmt.Errorf("%w: segment %d count must be >= 0, got %d", ErrInvalidGenerator, i, seg.Count)
		}
		if seg.Weight == nil || seg.Weight.Sign() < 0 {
			return nil, fmt.Errorf("%w: segment %d weight must be >= 0", ErrInvalidGenerator, i)
		}
		copied[i] = Segment{Count: seg.Count, Weight: new(big.Rat).Set(seg.Weight)}
	}

	return &Piecewise{segments: copied}, nil
}

// Weights creates the piecewise-constant weight sequence.
func (g *Piecewise) Weights(ctx context.Context) ([]*big.Rat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := lo.SumBy(g.segments, func(seg Segment) int { return seg.Count })
	weights := make([]*big.Rat, 0, total)
	for _, seg := range g.segments {
		for range seg.Count {
			weights = append(weights, new(big.Rat).Set(seg.Weight))
		}
	}

	return weights, nil
}

// Zipfian generates weights proportional to 1/(rank+1)^exponent, scaled so they sum
// to roughly total.
//
// Weights are quantized to multiples of 1/precision so the planner receives short
// exact rationals instead of binary float expansions.
type Zipfian struct {
	count     int
	exponent  float64
	total     float64
	precision int64
}

var _ types.WeightSource = (*Zipfian)(nil)

// ZipfianOption configures a Zipfian generator.
type ZipfianOption func(*Zipfian)

// WithPrecision sets the quantization denominator (default 1,000,000).
func WithPrecision(precision int64) ZipfianOption {
	return func(z *Zipfian) {
		z.precision = precision
	}
}

// NewZipfian creates a new zipfian weight generator.
//
// Parameters:
//   - count: Number of elements (>= 0)
//   - exponent: Skew; 0 is uniform, 0.99 matches the usual YCSB workload (>= 0)
//   - total: Target sum of all weights (> 0, total*precision must fit in int64)
//   - opts: Optional configuration (WithPrecision)
//
// Returns:
//   - *Zipfian: Initialized generator
//   - error: ErrInvalidGenerator on unusable parameters
func NewZipfian(count int, exponent, total float64, opts ...ZipfianOption) (*Zipfian, error) {
	z := &Zipfian{count: count, exponent: exponent, total: total, precision: defaultZipfianPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(z)
		}
	}

	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: zipfian count must be >= 0, got %d", ErrInvalidGenerator, count)
	case exponent < 0 || math.IsNaN(exponent) || math.IsInf(exponent, 0):
		return nil, fmt.Errorf("%w: zipfian exponent must be a finite value >= 0, got %v", ErrInvalidGenerator, exponent)
	case total <= 0 || math.IsNaN(total) || math.IsInf(total, 0):
		return nil, fmt.Errorf("%w: zipfian total must be a finite value > 0, got %v", ErrInvalidGenerator, total)
	case z.precision <= 0:
		return nil, fmt.Errorf("%w: zipfian precision must be > 0, got %d", ErrInvalidGenerator, z.precision)
	case total*float64(z.precision) >= math.MaxInt64:
		return nil, fmt.Errorf("%w: zipfian total %v times precision %d overflows int64", ErrInvalidGenerator, total, z.precision)
	}

	return z, nil
}

// Weights creates the zipfian weight sequence, heaviest element first.
func (g *Zipfian) Weights(ctx context.Context) ([]*big.Rat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := lo.Times(g.count, func(rank int) float64 {
		return 1 / math.Pow(float64(rank+1), g.exponent)
	})
	harmonic := lo.Sum(raw)

	return lo.Map(raw, func(v float64, _ int) *big.Rat {
		scaled := math.Round(v / harmonic * g.total * float64(g.precision))
		return big.NewRat(int64(scaled), g.precision)
	}), nil
}
