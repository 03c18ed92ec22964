package syncs

import (
	"reading-stats/internal/shared/metrics"
)

var (
	metricSyncTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSync,
			Name:      "uploads_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricUploadedBytesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSync,
			Name:      "uploaded_bytes_total",
		},
	)

	metricSyncDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSync,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
