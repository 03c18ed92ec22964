package aggregators

import (
	"reading-stats/internal/shared/metrics"
)

var (
	// metricRebuildDuration observes how long a full read pass takes, rotation excluded.
	metricRebuildDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "rebuild_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)

	// metricHistoryDays reports how many distinct days have reading time after the last rebuild.
	metricHistoryDays = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "history_days",
		},
	)

	metricSourceFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "source_failures_total",
		},
		[]string{metrics.FieldSource},
	)
)
