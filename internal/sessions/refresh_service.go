package sessions

import (
	"context"

	"reading-stats/internal/events"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/shared/svcerrors"
	"reading-stats/internal/syncs"
)

//go:generate mockgen -source=refresh_service.go -destination=./mocks/refresh_service_mock.go -package=mocks
type RefreshService interface {
	// Refresh optionally rotates the logs, always reloads the viewed month from disk and optionally
	// uploads to the sync server afterwards.
	Refresh(ctx context.Context, event *events.RefreshEvent) *svcerrors.ServiceError
}

type refreshService struct {
	session     StatsSession
	syncService syncs.SyncService
}

// NewRefreshService builds the refresh pipeline. syncService may be nil when sync is disabled.
func NewRefreshService(session StatsSession, syncService syncs.SyncService) RefreshService {
	return &refreshService{session: session, syncService: syncService}
}

func (s *refreshService) Refresh(ctx context.Context, event *events.RefreshEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldReason, event.Reason).Bool("rotate", event.Rotate).Bool("upload", event.Upload).Msg("started refresh")

	if event.Rotate {
		if _, err := s.session.Rotate(ctx); err != nil {
			// Rotation leaves the archive intact on failure, so the reload still sees every line.
			logger.Error().Err(err).Msg("log rotation failed, reloading anyway")
		}
	}

	year, month := s.session.ViewedMonth()
	if _, err := s.session.LoadAndProject(ctx, year, month, true); err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return svcErr
		}
		return errInternalReloadFailed(err)
	}

	if !event.Upload {
		return nil
	}
	if s.syncService == nil {
		return errSyncDisabled()
	}
	if _, err := s.syncService.Sync(ctx); err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return svcErr
		}
		return errInternalUploadFailed(err)
	}
	return nil
}
