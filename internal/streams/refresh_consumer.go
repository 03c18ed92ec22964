package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"reading-stats/internal/events"
	"reading-stats/internal/sessions"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/shared/metrics"
	"reading-stats/internal/shared/svcerrors"
	"reading-stats/internal/shared/ulid"
)

//go:generate mockgen -source=refresh_consumer.go -destination=./mocks/refresh_consumer_mock.go -package=mocks
type RefreshConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type refreshConsumer struct {
	queue          *PartitionedQueue[*events.RefreshEvent]
	refreshService sessions.RefreshService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewRefreshConsumer(queue *PartitionedQueue[*events.RefreshEvent], refreshService sessions.RefreshService, logger loggers.Logger) RefreshConsumer {
	return &refreshConsumer{
		queue:          queue,
		refreshService: refreshService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for the stats session.
func (consumer *refreshConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown). A refresh already running is
// allowed to finish.
func (consumer *refreshConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *refreshConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan *events.RefreshEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, event)
		}
	}
}

func (consumer *refreshConsumer) handle(ctx context.Context, partitionIndex int, event *events.RefreshEvent) {
	requestID := event.ID
	if requestID == "" {
		requestID = ulid.NewULID()
	}
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, requestID).
		Str(loggers.FieldReason, event.Reason).
		Logger().WithContext(ctx)

	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricRefreshConsumedTotal.WithLabelValues(event.Reason, svcErr.Code).Inc()
		}
	}()

	if enqueuedAt := ulid.Time(event.ID); !enqueuedAt.IsZero() {
		metricRefreshQueueWait.Observe(time.Since(enqueuedAt).Seconds())
	}

	startedAt := time.Now()
	svcError := consumer.refreshService.Refresh(ctx, event)
	logger := loggers.Ctx(ctx)
	if svcError != nil {
		logger.Error().Err(svcError).Str(loggers.FieldErrorCode, svcError.Code).Msg("refresh failed")
		metricRefreshConsumedTotal.WithLabelValues(event.Reason, svcError.Code).Inc()
		return
	}
	logger.Info().Dur(loggers.FieldDuration, time.Since(startedAt)).Msg("refresh completed")
	metricRefreshConsumedTotal.WithLabelValues(event.Reason, metrics.ValueNoError).Inc()
}
