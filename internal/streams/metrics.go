package streams

import (
	"reading-stats/internal/shared/metrics"
)

var (
	metricRefreshProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "refresh_published_total",
		},
		[]string{metrics.FieldReason},
	)

	metricRefreshConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "refresh_consumed_total",
		},
		[]string{metrics.FieldReason, metrics.FieldErrorCode},
	)

	// metricRefreshQueueWait measures the time between enqueue, read from the ULID of the event, and
	// the start of processing.
	metricRefreshQueueWait = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "refresh_queue_wait_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
