package stores

import (
	"reading-stats/internal/shared/metrics"
)

var (
	// metricRotationsTotal counts rotation passes by outcome; error_code is empty on success.
	metricRotationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRotation,
			Name:      "rotations_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricFilesMergedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRotation,
			Name:      "files_merged_total",
		},
	)

	metricRotationDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRotation,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
