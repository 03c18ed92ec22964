// Package watchers turns changes in the log directory into refresh requests.
package watchers

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"reading-stats/internal/events"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/streams"

	"github.com/fsnotify/fsnotify"
)

// LogWatcher watches the log directory and enqueues one refresh per burst of writes to period files.
type LogWatcher interface {
	Start(ctx context.Context) error
	Stop()
}

type logWatcher struct {
	dir      string
	prefix   string
	debounce time.Duration
	producer streams.RefreshProducer
	logger   loggers.Logger

	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewLogWatcher(dir, prefix string, debounce time.Duration, producer streams.RefreshProducer, logger loggers.Logger) LogWatcher {
	return &logWatcher{
		dir:      dir,
		prefix:   prefix,
		debounce: debounce,
		producer: producer,
		logger:   logger.With().Str(loggers.FieldComponent, "log_watcher").Logger(),
		stopCh:   make(chan struct{}),
	}
}

func (w *logWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return err
	}
	w.watcher = watcher

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
	w.logger.Info().Str(loggers.FieldFile, w.dir).Msg("watching log directory")
	return nil
}

func (w *logWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
	})
	w.wg.Wait()
}

func (w *logWatcher) run(ctx context.Context) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			metricWatchEventsTotal.WithLabelValues(event.Op.String()).Inc()
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("log watcher error")
		case <-fire:
			fire = nil
			w.publish(ctx)
		}
	}
}

func (w *logWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), w.prefix)
}

func (w *logWatcher) publish(ctx context.Context) {
	event := &events.RefreshEvent{Reason: events.ReasonLogChanged}
	if err := w.producer.Produce(ctx, event); err != nil {
		w.logger.Error().Err(err).Msg("failed to enqueue refresh")
		return
	}
	w.logger.Debug().Str(loggers.FieldRequestID, event.ID).Msg("log change enqueued")
}
