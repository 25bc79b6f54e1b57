package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/coldplan/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// collector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runs          *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      prometheus.Histogram
	elements      prometheus.Gauge
	partitions    prometheus.Gauge
	bestHotWeight prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "coldplan" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "coldplan"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "runs_total",
			Help:      "Total planning runs by result (success, failure).",
		}, []string{"result"})

		p.failures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "failures_total",
			Help:      "Rejected planning runs by reason.",
		}, []string{"reason"})

		p.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one planning run in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		})

		p.elements = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "elements",
			Help:      "Element count of the most recent successful run.",
		})

		p.partitions = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "cold_partitions",
			Help:      "Cold partitions used by the most recent best plan.",
		})

		p.bestHotWeight = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "best_hot_weight",
			Help:      "Minimum hot-tier weight of the most recent run (float approximation).",
		})

		p.reg.MustRegister(p.runs)
		p.reg.MustRegister(p.failures)
		p.reg.MustRegister(p.duration)
		p.reg.MustRegister(p.elements)
		p.reg.MustRegister(p.partitions)
		p.reg.MustRegister(p.bestHotWeight)
	})
}

// RecordPlanDuration observes the wall time of one run.
func (p *PrometheusCollector) RecordPlanDuration(duration float64) {
	p.ensureRegistered()
	p.duration.Observe(duration)
}

// RecordPlanResult counts a successful run and updates the last-run gauges.
func (p *PrometheusCollector) RecordPlanResult(elements, partitions int, bestHotWeight float64) {
	p.ensureRegistered()
	p.runs.WithLabelValues("success").Inc()
	p.elements.Set(float64(elements))
	p.partitions.Set(float64(partitions))
	p.bestHotWeight.Set(bestHotWeight)
}

// RecordPlanFailure counts a rejected run.
func (p *PrometheusCollector) RecordPlanFailure(reason string) {
	p.ensureRegistered()
	p.runs.WithLabelValues("failure").Inc()
	p.failures.WithLabelValues(reason).Inc()
}
