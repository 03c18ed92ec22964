package streams

import (
	"context"
	"time"

	"reading-stats/internal/events"
	"reading-stats/internal/shared/ulid"
)

// refreshPartitionKey routes every refresh to the same lane. The consumer runs one worker per lane,
// so rotations and full reloads are applied strictly one after another.
const refreshPartitionKey = "stats"

// RefreshProducer enqueues refresh requests for the refresh consumer.
//
//go:generate mockgen -source=refresh_producer.go -destination=./mocks/refresh_producer_mock.go -package=mocks
type RefreshProducer interface {
	// Produce stamps event with an ID and request time when missing and enqueues it.
	Produce(ctx context.Context, event *events.RefreshEvent) error
}

type refreshProducer struct {
	queue *PartitionedQueue[*events.RefreshEvent]
	now   func() time.Time
}

func NewRefreshProducer(queue *PartitionedQueue[*events.RefreshEvent]) RefreshProducer {
	return &refreshProducer{queue: queue, now: time.Now}
}

func (producer *refreshProducer) Produce(ctx context.Context, event *events.RefreshEvent) error {
	if event.ID == "" {
		event.ID = ulid.NewULID()
	}
	if event.RequestedAt.IsZero() {
		event.RequestedAt = producer.now().UTC()
	}

	if err := producer.queue.Publish(ctx, refreshPartitionKey, event); err != nil {
		return err
	}
	metricRefreshProducedTotal.WithLabelValues(event.Reason).Inc()
	return nil
}
