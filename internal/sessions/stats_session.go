package sessions

import (
	"context"
	"sync"
	"time"

	"reading-stats/internal/aggregators"
	"reading-stats/internal/calendar"
	"reading-stats/internal/models"
	"reading-stats/internal/projections"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/stores"
)

// StatsSession owns the single models.Stats of the process. Mutations take the write lock; readers
// get deep copies through Snapshot and never observe a half-applied reload.
//
//go:generate mockgen -source=stats_session.go -destination=./mocks/stats_session_mock.go -package=mocks
type StatsSession interface {
	// LoadAndProject rebuilds stats from disk when forceReload is set or nothing was loaded yet,
	// then projects the given month and the viewed day. Paging between months without
	// forceReload never touches the disk. A rebuild after the period rolled over since the last
	// Rotate rotates first, so the closed month lands in the archive instead of being skipped.
	// The returned snapshot is taken before the lock is released.
	LoadAndProject(ctx context.Context, year, month int, forceReload bool) (*models.Stats, error)
	// SelectDay moves the viewed day to the day containing day and refreshes its projection.
	SelectDay(ctx context.Context, day time.Time) *models.Stats
	// ShiftViewedDay moves the viewed day by days calendar days.
	ShiftViewedDay(ctx context.Context, days int) *models.Stats
	ViewedMonth() (year, month int)
	Snapshot() *models.Stats
	// Rotate compacts closed period files into the archive under the write lock.
	Rotate(ctx context.Context) (*stores.RotationResult, error)
}

type statsSession struct {
	mu    sync.RWMutex
	stats *models.Stats

	aggregationService aggregators.AggregationService
	logStore           stores.LogStore
	loc                *time.Location
	now                func() time.Time

	// rotatedPeriod is the current period file name at the last rotation attempt; empty until the
	// first Rotate.
	rotatedPeriod string
}

func NewStatsSession(aggregationService aggregators.AggregationService, logStore stores.LogStore, loc *time.Location, now func() time.Time) StatsSession {
	current := now().In(loc)
	stats := models.NewStats()
	stats.ViewedYear = current.Year()
	stats.ViewedMonth = int(current.Month())
	stats.ViewedDay = calendar.DayStart(current).Unix()

	return &statsSession{
		stats:              stats,
		aggregationService: aggregationService,
		logStore:           logStore,
		loc:                loc,
		now:                now,
	}
}

func (s *statsSession) LoadAndProject(ctx context.Context, year, month int, forceReload bool) (*models.Stats, error) {
	if !calendar.ValidMonth(year, month) {
		return nil, errInvalidMonth(year, month)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if forceReload || !s.stats.Loaded {
		now := s.now().In(s.loc)
		s.rotateOnRollover(ctx, now)

		viewedDay := s.stats.ViewedDay
		s.aggregationService.Rebuild(ctx, s.stats, now)
		s.stats.ViewedDay = viewedDay
		s.stats.Loaded = true
		metricReloadsTotal.WithLabelValues(reloadReason(forceReload)).Inc()
	}

	projections.ProjectViewedMonth(s.stats, year, month, s.loc)
	projections.RefreshViewedDay(s.stats, s.stats.ViewedDay)

	loggers.Ctx(ctx).Debug().Int("year", year).Int("month", month).Bool("force_reload", forceReload).Msg("stats projected")
	return s.stats.Clone(), nil
}

func (s *statsSession) SelectDay(ctx context.Context, day time.Time) *models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	projections.RefreshViewedDay(s.stats, calendar.DayStart(day.In(s.loc)).Unix())
	return s.stats.Clone()
}

func (s *statsSession) ShiftViewedDay(ctx context.Context, days int) *models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := time.Unix(s.stats.ViewedDay, 0).In(s.loc)
	projections.RefreshViewedDay(s.stats, calendar.DayStart(current).AddDate(0, 0, days).Unix())
	return s.stats.Clone()
}

func (s *statsSession) ViewedMonth() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats.ViewedYear, s.stats.ViewedMonth
}

func (s *statsSession) Snapshot() *models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats.Clone()
}

func (s *statsSession) Rotate(ctx context.Context) (*stores.RotationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rotateLocked(ctx, s.logStore.CurrentPeriodFilename(s.now().In(s.loc)))
}

// rotateOnRollover rotates when the month changed since the last rotation. The previous period file
// is otherwise neither in the scratch file nor the current period and would drop out of History.
func (s *statsSession) rotateOnRollover(ctx context.Context, now time.Time) {
	if s.rotatedPeriod == "" {
		return
	}
	period := s.logStore.CurrentPeriodFilename(now)
	if period == s.rotatedPeriod {
		return
	}

	logger := loggers.Ctx(ctx)
	logger.Info().Str("previous_period", s.rotatedPeriod).Str("period", period).Msg("period rolled over, rotating before reload")
	metricRolloverRotationsTotal.Inc()
	if _, err := s.rotateLocked(ctx, period); err != nil {
		logger.Error().Err(err).Msg("rollover rotation failed, reloading anyway")
	}
}

// rotateLocked records the attempt even when it fails, so a broken archive is retried on the next
// rollover rather than on every reload.
func (s *statsSession) rotateLocked(ctx context.Context, period string) (*stores.RotationResult, error) {
	s.rotatedPeriod = period
	return s.logStore.RotateAndCompact(ctx, period)
}

func reloadReason(forced bool) string {
	if forced {
		return "forced"
	}
	return "first_load"
}
