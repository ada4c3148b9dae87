package measure

import "time"

// Measure collects one metric per named operation.
type Measure interface {
	// AddMetric registers a metric for name, returning the existing one if already there.
	AddMetric(name string) Metric
	// GetMetric returns the metric for name, nil if it was never added.
	GetMetric(name string) Metric
	// AllMetrics returns every metric by name.
	AllMetrics() map[string]Metric
}

// Metric accumulates the durations and failures of an operation.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddFailure(elapsed time.Duration)
	AVGDuration() time.Duration
	LastDuration() time.Duration
	Total() int64
	Failures() int64
}
