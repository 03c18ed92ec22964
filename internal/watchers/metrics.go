package watchers

import (
	"reading-stats/internal/shared/metrics"
)

var metricWatchEventsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubWatch,
		Name:      "events_total",
	},
	[]string{"op"},
)
