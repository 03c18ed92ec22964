package syncs

import (
	"context"
	"time"

	"reading-stats/internal/models"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/shared/metrics"
	"reading-stats/internal/shared/svcerrors"
	"reading-stats/internal/stores"
)

// StatsReader provides the totals sent along with an upload.
type StatsReader interface {
	Snapshot() *models.Stats
}

type SyncResult struct {
	Files        int       `json:"files"`
	Bytes        int64     `json:"bytes"`
	TodaySeconds int64     `json:"todaySeconds"`
	MonthSeconds int64     `json:"monthSeconds"`
	SyncedAt     time.Time `json:"syncedAt"`
}

type SyncStatus struct {
	LoggedIn     bool   `json:"loggedIn"`
	Nickname     string `json:"nickname,omitempty"`
	DeviceName   string `json:"deviceName,omitempty"`
	LastSync     int64  `json:"lastSync"`
	LastSyncText string `json:"lastSyncText"`
}

//go:generate mockgen -source=sync_service.go -destination=./mocks/sync_service_mock.go -package=mocks
type SyncService interface {
	// Sync checks the device login and uploads every period file plus the archive.
	Sync(ctx context.Context) (*SyncResult, error)
	Status(ctx context.Context) *SyncStatus
}

type syncService struct {
	client          Client
	credentialStore CredentialStore
	logStore        stores.LogStore
	statsReader     StatsReader
	now             func() time.Time
}

func NewSyncService(client Client, credentialStore CredentialStore, logStore stores.LogStore, statsReader StatsReader, now func() time.Time) SyncService {
	return &syncService{
		client:          client,
		credentialStore: credentialStore,
		logStore:        logStore,
		statsReader:     statsReader,
		now:             now,
	}
}

func (s *syncService) Sync(ctx context.Context) (*SyncResult, error) {
	startedAt := time.Now()
	result, svcErr := s.sync(ctx)
	metricSyncDuration.Observe(time.Since(startedAt).Seconds())
	if svcErr != nil {
		metricSyncTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	metricSyncTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricUploadedBytesTotal.Add(float64(result.Bytes))
	return result, nil
}

func (s *syncService) sync(ctx context.Context) (*SyncResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	creds, err := s.credentialStore.LoadCredentials(ctx)
	if err != nil {
		return nil, errInternalCredentialsFailed(err)
	}
	if !creds.LoggedIn() {
		return nil, errNotLoggedIn()
	}

	if !s.client.Reachable(ctx) {
		return nil, errUnreachable(nil)
	}

	state := s.credentialStore.LoadState(ctx)
	check, err := s.client.CheckDevice(ctx, creds.DeviceCode)
	if err != nil {
		return nil, errUnreachable(err)
	}
	if check.Expired() {
		logger.Warn().Msg("device login expired, clearing local credentials")
		if err := s.credentialStore.Clear(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to clear local credentials")
		}
		return nil, errDeviceExpired()
	}
	if check.Status == statusSuccess {
		state.Nickname = check.Nickname
		state.DeviceName = check.DeviceName
	}

	files, err := s.logStore.UploadFiles(ctx)
	if err != nil {
		return nil, errInternalListFilesFailed(err)
	}
	result := &SyncResult{}
	parts := make([]UploadPart, 0, len(files))
	for _, f := range files {
		if f.Size == 0 {
			continue
		}
		parts = append(parts, UploadPart{Name: f.Name, Path: f.Path})
		result.Files++
		result.Bytes += f.Size
	}

	snapshot := s.statsReader.Snapshot()
	result.TodaySeconds = snapshot.TodaySeconds
	result.MonthSeconds = snapshot.MonthSeconds

	resp, err := s.client.Upload(ctx, UploadRequest{
		AccessToken:  creds.AccessToken,
		TodaySeconds: result.TodaySeconds,
		MonthSeconds: result.MonthSeconds,
		Parts:        parts,
	})
	if err != nil {
		return nil, errUnreachable(err)
	}
	if resp.Status != statusSuccess {
		return nil, errServerRejected(resp.Msg)
	}

	result.SyncedAt = s.now().UTC()
	state.LastSync = result.SyncedAt.Unix()
	if err := s.credentialStore.SaveState(ctx, state); err != nil {
		logger.Warn().Err(err).Msg("failed to save sync state")
	}

	logger.Info().Int("files", result.Files).Int64("bytes", result.Bytes).Msg("logs uploaded")
	return result, nil
}

func (s *syncService) Status(ctx context.Context) *SyncStatus {
	status := &SyncStatus{}
	if creds, err := s.credentialStore.LoadCredentials(ctx); err == nil {
		status.LoggedIn = creds.LoggedIn()
	}
	state := s.credentialStore.LoadState(ctx)
	status.Nickname = state.Nickname
	status.DeviceName = state.DeviceName
	status.LastSync = state.LastSync
	status.LastSyncText = LastSyncText(state.LastSync, s.now())
	return status
}
