package coldplan

// Option configures an Optimizer with optional dependencies.
type Option func(*optimizerOptions)

// optimizerOptions holds optional Optimizer configuration.
type optimizerOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewOptimizer
//
// Example:
//
//	hooks := &coldplan.Hooks{
//	    OnPlanComplete: func(ctx context.Context, name string, res *coldplan.Result) error {
//	        return publish(name, res.Layout)
//	    },
//	}
//	opt, err := coldplan.NewOptimizer(&cfg, coldplan.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *optimizerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewOptimizer
//
// Example:
//
//	collector := coldplan.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")
//	opt, err := coldplan.NewOptimizer(&cfg, coldplan.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *optimizerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewOptimizer
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	opt, err := coldplan.NewOptimizer(&cfg, coldplan.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *optimizerOptions) {
		o.logger = logger
	}
}
