package aggregators

import (
	"context"
	"errors"
	"time"

	"reading-stats/internal/calendar"
	"reading-stats/internal/ingestors"
	"reading-stats/internal/models"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/stores"
)

// RebuildResult summarizes one full read pass.
type RebuildResult struct {
	Windows  models.Windows
	Sources  []*ingestors.IngestResult
	Lines    int
	Accepted int
	Rejected int
	Duration time.Duration
}

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Rebuild clears stats and repopulates it from every log source. Missing or unreadable sources
	// contribute nothing; the pass itself never fails.
	Rebuild(ctx context.Context, stats *models.Stats, now time.Time) *RebuildResult
}

type aggregationService struct {
	logStore         stores.LogStore
	ingestionService ingestors.IngestionService
	eventRolluper    EventRolluper
	loc              *time.Location
}

func NewAggregationService(logStore stores.LogStore, ingestionService ingestors.IngestionService, eventRolluper EventRolluper, loc *time.Location) AggregationService {
	return &aggregationService{
		logStore:         logStore,
		ingestionService: ingestionService,
		eventRolluper:    eventRolluper,
		loc:              loc,
	}
}

func (s *aggregationService) Rebuild(ctx context.Context, stats *models.Stats, now time.Time) *RebuildResult {
	logger := loggers.Ctx(ctx)
	startedAt := time.Now()

	now = now.In(s.loc)
	windows := calendar.CurrentWindows(now)
	result := &RebuildResult{Windows: windows}

	stats.Reset()
	sink := func(event models.Event) {
		s.eventRolluper.Rollup(stats, event, windows)
	}

	for _, source := range s.logStore.ReadSources(now) {
		ingested := s.ingestSource(ctx, source, sink)
		if ingested == nil {
			continue
		}
		result.Sources = append(result.Sources, ingested)
		result.Lines += ingested.Lines
		result.Accepted += ingested.Accepted
		result.Rejected += ingested.RejectedTotal()
	}

	result.Duration = time.Since(startedAt)
	metricRebuildDuration.Observe(result.Duration.Seconds())
	metricHistoryDays.Set(float64(len(stats.History)))

	logger.Info().
		Int(loggers.FieldLines, result.Lines).
		Int(loggers.FieldAccepted, result.Accepted).
		Int(loggers.FieldRejected, result.Rejected).
		Int64("total_seconds", stats.TotalSeconds).
		Dur(loggers.FieldDuration, result.Duration).
		Msg("stats rebuilt from logs")
	return result
}

func (s *aggregationService) ingestSource(ctx context.Context, source stores.LogSource, sink ingestors.EventSink) *ingestors.IngestResult {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSource, source.Name).Str(loggers.FieldFile, source.Path).Logger()

	rc, err := s.logStore.Open(ctx, source.Path)
	if err != nil {
		if errors.Is(err, stores.ErrLogNotFound) {
			logger.Info().Msg("log source missing, nothing to read")
		} else {
			metricSourceFailuresTotal.WithLabelValues(source.Name).Inc()
			logger.Warn().Err(err).Msg("log source cannot be opened, skipped")
		}
		return nil
	}
	defer rc.Close()

	ingested, err := s.ingestionService.Ingest(logger.WithContext(ctx), source.Name, rc, sink)
	if err != nil {
		// Events read before the failure stay counted.
		metricSourceFailuresTotal.WithLabelValues(source.Name).Inc()
		logger.Warn().Err(err).Msg("log source read incomplete")
	}
	return ingested
}
