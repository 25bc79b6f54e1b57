// Package testing provides test utilities for the coldplan library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger writing through testing.T
//   - RecordingMetrics: MetricsCollector that remembers every call
//
// Example usage:
//
//	import (
//	    "testing"
//	    coldplantest "github.com/arloliu/coldplan/testing"
//	)
//
//	func TestMyPipeline(t *testing.T) {
//	    rec := coldplantest.NewRecordingMetrics()
//	    opt, _ := coldplan.NewOptimizer(&cfg,
//	        coldplan.WithLogger(coldplantest.NewTestLogger(t)),
//	        coldplan.WithMetrics(rec),
//	    )
//	    // ...
//	    require.Empty(t, rec.Failures())
//	}
package testing
