package sessions

import (
	"reading-stats/internal/shared/metrics"
)

var (
	metricReloadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "reloads_total",
		},
		[]string{metrics.FieldReason},
	)

	metricRolloverRotationsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRotation,
			Name:      "rollover_rotations_total",
		},
	)
)
