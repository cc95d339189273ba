// Package metrics provides Prometheus instrumentation for Prism.
// Metrics cover field-configuration resolution: how many resolutions run,
// how many fields and series they touch, how often override rules match,
// and how long a resolution takes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResolutionsTotal counts resolution calls.
	// Labels: status (resolved/passthrough/empty)
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prism_resolutions_total",
			Help: "Total number of field configuration resolutions",
		},
		[]string{"status"},
	)

	// FieldsResolved counts fields that went through resolution
	FieldsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prism_fields_resolved_total",
			Help: "Total number of fields resolved",
		},
	)

	// RulesMatched counts override rule matches against fields
	RulesMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prism_override_rules_matched_total",
			Help: "Total number of override rule matches",
		},
	)

	// RulesDropped counts override rules dropped at compile time
	RulesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prism_override_rules_dropped_total",
			Help: "Total number of override rules dropped during compilation",
		},
		[]string{"reason"},
	)

	// ResolutionDuration tracks resolution latency in seconds
	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prism_resolution_duration_seconds",
			Help:    "Field configuration resolution duration",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)

// Timer measures an operation's duration
type Timer struct {
	start time.Time
}

// NewTimer starts a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveResolution records the elapsed time into ResolutionDuration
func (t *Timer) ObserveResolution() time.Duration {
	elapsed := time.Since(t.start)
	ResolutionDuration.Observe(elapsed.Seconds())
	return elapsed
}
