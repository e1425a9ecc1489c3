package usecase

import "time"

// Metrics receives pipeline counters. Implementations must be safe for concurrent use.
type Metrics interface {
	ObserveFetch(resource, source string)
	ObserveSummary(kind, source string)
	ObserveAssembly(duration time.Duration, events int, err error)
	ObserveBackfill(artifact, status string)
}

const (
	sourceCache    = "cache"
	sourceUpstream = "upstream"
	sourceBuilt    = "built"
	sourceError    = "error"
)

type noopMetrics struct{}

func (noopMetrics) ObserveFetch(string, string)               {}
func (noopMetrics) ObserveSummary(string, string)             {}
func (noopMetrics) ObserveAssembly(time.Duration, int, error) {}
func (noopMetrics) ObserveBackfill(string, string)            {}

func metricsOrNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
