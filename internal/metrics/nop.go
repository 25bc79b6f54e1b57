// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/coldplan/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the Optimizer default.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	opt, err := coldplan.NewOptimizer(&cfg, coldplan.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPlanDuration discards the duration metric.
func (n *NopMetrics) RecordPlanDuration(_ /* duration */ float64) {}

// RecordPlanResult discards the result metric.
func (n *NopMetrics) RecordPlanResult(_ /* elements */, _ /* partitions */ int, _ /* bestHotWeight */ float64) {
}

// RecordPlanFailure discards the failure metric.
func (n *NopMetrics) RecordPlanFailure(_ /* reason */ string) {}
