package types

// MetricsCollector defines methods for recording planning metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Batch runs call these methods from several goroutines, so they must be thread-safe.
type MetricsCollector interface {
	PlannerMetrics
}

// PlannerMetrics defines metrics for individual planning runs.
type PlannerMetrics interface {
	// RecordPlanDuration records the wall time of one planning run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	RecordPlanDuration(duration float64)

	// RecordPlanResult records the outcome of a successful run.
	//
	// Parameters:
	//   - elements: Number of elements planned (N)
	//   - partitions: Cold partitions used by the best plan
	//   - bestHotWeight: Minimum hot-tier weight (approximated as float64)
	RecordPlanResult(elements, partitions int, bestHotWeight float64)

	// RecordPlanFailure records a rejected run.
	//
	// Parameters:
	//   - reason: Failure class ("invalid_limit", "invalid_weight", "source", "canceled", "other")
	RecordPlanFailure(reason string)
}
