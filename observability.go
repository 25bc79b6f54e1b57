package coldplan

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/coldplan/internal/logging"
	"github.com/arloliu/coldplan/internal/metrics"
)

// NewPrometheusMetrics creates a MetricsCollector that exports planner metrics to Prometheus.
//
// Parameters:
//   - reg: Registerer for the collectors (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("coldplan" if empty)
//
// Returns:
//   - MetricsCollector: Collector suitable for WithMetrics
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
//
// Parameters:
//   - logger: slog logger (slog.Default() if nil)
//
// Returns:
//   - Logger: Logger suitable for WithLogger
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		return logging.NewSlogDefault()
	}

	return logging.NewSlog(logger)
}
