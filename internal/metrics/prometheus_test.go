package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_RecordPlanResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	collector.RecordPlanResult(70, 9, 2)
	collector.RecordPlanResult(4, 2, 1)

	require.InDelta(t, 2, testutil.ToFloat64(collector.runs.WithLabelValues("success")), 0)
	require.InDelta(t, 4, testutil.ToFloat64(collector.elements), 0)
	require.InDelta(t, 2, testutil.ToFloat64(collector.partitions), 0)
	require.InDelta(t, 1, testutil.ToFloat64(collector.bestHotWeight), 0)
}

func TestPrometheusCollector_RecordPlanFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	collector.RecordPlanFailure("invalid_weight")
	collector.RecordPlanFailure("invalid_weight")
	collector.RecordPlanFailure("invalid_limit")

	require.InDelta(t, 3, testutil.ToFloat64(collector.runs.WithLabelValues("failure")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(collector.failures.WithLabelValues("invalid_weight")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(collector.failures.WithLabelValues("invalid_limit")), 0)
}

func TestPrometheusCollector_RegistersLazily(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)

	collector.RecordPlanDuration(0.001)

	count, err := testutil.GatherAndCount(reg, "coldplan_planner_run_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
