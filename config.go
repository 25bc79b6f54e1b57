package coldplan

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/coldplan/source"
	"github.com/arloliu/coldplan/types"
)

// Workload kinds accepted by WorkloadConfig.Kind.
const (
	WorkloadStatic    = "static"
	WorkloadUniform   = "uniform"
	WorkloadPiecewise = "piecewise"
	WorkloadZipfian   = "zipfian"
)

// LimitsConfig bounds every cold partition and the partition slot pool.
//
// A zero MaxColdElems or MaxPartitions and an empty MaxColdWeight mean "unset"
// and are replaced by the default in SetDefaults. Negative values are rejected
// by Validate.
type LimitsConfig struct {
	// MaxColdElems is the maximum element count per cold partition.
	// Default: 10 (also used for 0)
	MaxColdElems int `yaml:"maxColdElems"`

	// MaxColdWeight is the maximum cumulative weight per cold partition.
	// Accepts any rational literal: "2", "3/2", "0.75".
	MaxColdWeight string `yaml:"maxColdWeight"`

	// MaxPartitions is the number of partition slots. At most MaxPartitions-1
	// cold partitions are ever committed.
	// Default: 10 (also used for 0)
	MaxPartitions int `yaml:"maxPartitions"`
}

// SegmentConfig is one run of a piecewise workload.
type SegmentConfig struct {
	Count  int    `yaml:"count"`
	Weight string `yaml:"weight"`
}

// WorkloadConfig describes where element weights come from.
//
// Only the fields relevant to Kind are read:
//   - static: Weights
//   - uniform: Count, Weight
//   - piecewise: Segments
//   - zipfian: Count, Exponent, Total, Precision
type WorkloadConfig struct {
	// Kind selects the generator: static, uniform, piecewise or zipfian.
	Kind string `yaml:"kind"`

	// Weights lists explicit rational weights for the static kind.
	Weights []string `yaml:"weights"`

	// Count is the element count for uniform and zipfian workloads.
	Count int `yaml:"count"`

	// Weight is the per-element weight of a uniform workload.
	Weight string `yaml:"weight"`

	// Segments are the runs of a piecewise workload, in element order.
	Segments []SegmentConfig `yaml:"segments"`

	// Exponent is the zipfian skew (0 = uniform).
	Exponent float64 `yaml:"exponent"`

	// Total is the target sum of zipfian weights.
	// Default: Count (mean weight 1)
	Total float64 `yaml:"total"`

	// Precision is the zipfian quantization denominator.
	// Default: 1,000,000
	Precision int64 `yaml:"precision"`
}

// Config is the configuration for the Optimizer.
type Config struct {
	// Limits bounds cold partitions.
	Limits LimitsConfig `yaml:"limits"`

	// Workload is the default weight source used by Optimizer.RunWorkload.
	Workload WorkloadConfig `yaml:"workload"`

	// BatchConcurrency bounds how many runs RunBatch plans at once.
	// Default: 4
	BatchConcurrency int `yaml:"batchConcurrency"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// The defaults describe a hot head followed by a long light tail: ten elements of
// weight 1 then sixty of weight 1/10, with windows of at most 10 elements and
// weight 2 and 10 partition slots.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Limits: LimitsConfig{
			MaxColdElems:  10,
			MaxColdWeight: "2",
			MaxPartitions: 10,
		},
		Workload: WorkloadConfig{
			Kind: WorkloadPiecewise,
			Segments: []SegmentConfig{
				{Count: 10, Weight: "1"},
				{Count: 60, Weight: "1/10"},
			},
		},
		BatchConcurrency: 4,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// An empty workload kind becomes static when explicit weights are present and the
// default piecewise workload otherwise.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Limits.MaxColdElems == 0 {
		cfg.Limits.MaxColdElems = defaults.Limits.MaxColdElems
	}
	if cfg.Limits.MaxColdWeight == "" {
		cfg.Limits.MaxColdWeight = defaults.Limits.MaxColdWeight
	}
	if cfg.Limits.MaxPartitions == 0 {
		cfg.Limits.MaxPartitions = defaults.Limits.MaxPartitions
	}
	if cfg.BatchConcurrency == 0 {
		cfg.BatchConcurrency = defaults.BatchConcurrency
	}

	if cfg.Workload.Kind == "" {
		if len(cfg.Workload.Weights) > 0 {
			cfg.Workload.Kind = WorkloadStatic
		} else {
			cfg.Workload = defaults.Workload
		}
	}
	if cfg.Workload.Kind == WorkloadZipfian && cfg.Workload.Total == 0 {
		cfg.Workload.Total = float64(cfg.Workload.Count)
	}
	// Note: Exponent of 0 is valid (uniform zipfian), so we don't apply a default
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig wrapping the first problem found, nil if valid
func (cfg *Config) Validate() error {
	limits, err := cfg.LimitsValue()
	if err != nil {
		return err
	}
	if err := limits.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.BatchConcurrency <= 0 {
		return fmt.Errorf("%w: batchConcurrency must be > 0, got %d", ErrInvalidConfig, cfg.BatchConcurrency)
	}

	if _, err := cfg.Workload.Source(); err != nil {
		return err
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but suspicious values.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Limits.MaxPartitions == 1 {
		logger.Warn(
			"maxPartitions is 1, no cold partition can be committed",
			"maxPartitions", cfg.Limits.MaxPartitions,
		)
	}
}

// LimitsValue converts the textual limits into planner limits.
//
// Returns:
//   - types.Limits: Parsed limits (not yet range-checked)
//   - error: ErrInvalidConfig when maxColdWeight is not a rational literal
func (cfg *Config) LimitsValue() (types.Limits, error) {
	maxWeight, err := source.ParseRat(cfg.Limits.MaxColdWeight)
	if err != nil {
		return types.Limits{}, fmt.Errorf("%w: limits.maxColdWeight: %w", ErrInvalidConfig, err)
	}

	return types.Limits{
		MaxColdElems:  cfg.Limits.MaxColdElems,
		MaxColdWeight: maxWeight,
		MaxPartitions: cfg.Limits.MaxPartitions,
	}, nil
}

// Source builds the weight source described by the workload.
//
// Returns:
//   - types.WeightSource: Ready-to-use source
//   - error: ErrInvalidConfig wrapping the parse or generator error
func (w *WorkloadConfig) Source() (types.WeightSource, error) {
	switch w.Kind {
	case WorkloadStatic:
		weights, err := parseRats(w.Weights)
		if err != nil {
			return nil, fmt.Errorf("%w: workload.weights: %w", ErrInvalidConfig, err)
		}

		return source.NewStatic(weights), nil

	case WorkloadUniform:
		weight, err := source.ParseRat(w.Weight)
		if err != nil {
			return nil, fmt.Errorf("%w: workload.weight: %w", ErrInvalidConfig, err)
		}
		gen, err := source.NewUniform(w.Count, weight)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		return gen, nil

	case WorkloadPiecewise:
		segments := make([]source.Segment, 0, len(w.Segments))
		for i, seg := range w.Segments {
			weight, err := source.ParseRat(seg.Weight)
			if err != nil {
				return nil, fmt.Errorf("%w: workload.segments[%d].weight: %w", ErrInvalidConfig, i, err)
			}
			segments = append(segments, source.Segment{Count: seg.Count, Weight: weight})
		}
		gen, err := source.NewPiecewise(segments)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		return gen, nil

	case WorkloadZipfian:
		var opts []source.ZipfianOption
		if w.Precision != 0 {
			opts = append(opts, source.WithPrecision(w.Precision))
		}
		gen, err := source.NewZipfian(w.Count, w.Exponent, w.Total, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		return gen, nil

	default:
		return nil, fmt.Errorf("%w: unknown workload kind %q", ErrInvalidConfig, w.Kind)
	}
}

// ParseConfig decodes YAML configuration, applies defaults and validates it.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: Ready-to-use configuration
//   - error: Decode or validation error
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads a YAML configuration file.
//
// Parameters:
//   - path: File path
//
// Returns:
//   - *Config: Ready-to-use configuration
//   - error: Read, decode or validation error
//
// Example:
//
//	cfg, err := coldplan.LoadConfig("coldplan.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opt, err := coldplan.NewOptimizer(cfg)
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

func parseRats(values []string) ([]*big.Rat, error) {
	weights := make([]*big.Rat, 0, len(values))
	for i, v := range values {
		w, err := source.ParseRat(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		weights = append(weights, w)
	}

	return weights, nil
}
