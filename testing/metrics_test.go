package testing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordingMetrics(t *testing.T) {
	rec := NewRecordingMetrics()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordPlanDuration(0.5)
			rec.RecordPlanResult(i, 1, 2)
		}()
	}
	wg.Wait()
	rec.RecordPlanFailure("invalid_weight")

	require.Len(t, rec.Durations(), 8)
	require.Len(t, rec.Results(), 8)
	require.Equal(t, []string{"invalid_weight"}, rec.Failures())

	failures := rec.Failures()
	failures[0] = "mutated"
	require.Equal(t, []string{"invalid_weight"}, rec.Failures())
}

func TestNewTestLogger(t *testing.T) {
	log := NewTestLogger(t)

	log.Debug("span computed", "elements", 4)
	log.Info("plan complete", "bestHotWeight", "1")
}
