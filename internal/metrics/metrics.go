// Package metrics exposes Prometheus instrumentation for the matching
// engine: scorer throughput, suggestion and transition counts, and sweep
// outcomes. Collectors register on the default registry via promauto and
// are served by the /metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoresComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reclaim_scores_computed_total",
			Help: "Total number of lost/found pairs scored",
		},
	)

	MatchesSuggested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reclaim_matches_suggested_total",
			Help: "Total number of new match suggestions persisted",
		},
	)

	MatchTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reclaim_match_transitions_total",
			Help: "Total number of match status transitions",
		},
		[]string{"status"},
	)

	SweepRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reclaim_sweep_runs_total",
			Help: "Total number of auto-match sweep executions",
		},
	)

	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reclaim_sweep_duration_seconds",
			Help:    "Duration of auto-match sweep executions in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	SweepItemsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reclaim_sweep_items_processed_total",
			Help: "Total number of lost items examined by sweeps",
		},
	)

	SweepErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reclaim_sweep_errors_total",
			Help: "Total number of per-item failures during sweeps",
		},
	)

	NotificationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reclaim_notifications_created_total",
			Help: "Total number of notification rows written",
		},
	)
)

// ObserveSweep records the outcome of one sweep execution.
func ObserveSweep(processed, errors int, duration time.Duration) {
	SweepRuns.Inc()
	SweepDuration.Observe(duration.Seconds())
	SweepItemsProcessed.Add(float64(processed))
	SweepErrors.Add(float64(errors))
}
