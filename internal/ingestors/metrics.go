package ingestors

import (
	"reading-stats/internal/shared/metrics"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldSource},
	)

	metricEventsAcceptedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_accepted_total",
		},
		[]string{metrics.FieldSource},
	)

	metricLinesRejectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_rejected_total",
		},
		[]string{metrics.FieldReason},
	)
)
