package testing

import (
	"slices"
	"sync"

	"github.com/arloliu/coldplan/types"
)

// PlanRecord is one RecordPlanResult call.
type PlanRecord struct {
	Elements      int
	Partitions    int
	BestHotWeight float64
}

// RecordingMetrics implements types.MetricsCollector by remembering every call.
//
// Safe for concurrent use, so it can observe batch runs.
type RecordingMetrics struct {
	mu        sync.Mutex
	durations []float64
	results   []PlanRecord
	failures  []string
}

var _ types.MetricsCollector = (*RecordingMetrics)(nil)

// NewRecordingMetrics creates an empty recorder.
func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{}
}

// RecordPlanDuration records a run duration.
func (m *RecordingMetrics) RecordPlanDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.durations = append(m.durations, duration)
}

// RecordPlanResult records a successful run.
func (m *RecordingMetrics) RecordPlanResult(elements, partitions int, bestHotWeight float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = append(m.results, PlanRecord{Elements: elements, Partitions: partitions, BestHotWeight: bestHotWeight})
}

// RecordPlanFailure records a rejected run.
func (m *RecordingMetrics) RecordPlanFailure(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures = append(m.failures, reason)
}

// Durations returns a copy of the recorded durations.
func (m *RecordingMetrics) Durations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.durations)
}

// Results returns a copy of the recorded successful runs.
func (m *RecordingMetrics) Results() []PlanRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.results)
}

// Failures returns a copy of the recorded failure reasons.
func (m *RecordingMetrics) Failures() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.failures)
}
