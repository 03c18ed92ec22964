package sessions

import (
	"fmt"

	"reading-stats/internal/shared/svcerrors"
)

// StatsSession and RefreshService errors
const (
	codeInvalidMonth = "STATS_1000"
	codeSyncDisabled = "STATS_1001"

	codeInternalReloadFailed = "STATS_9000"
	codeInternalUploadFailed = "STATS_9001"
)

// errInvalidMonth returns an error when a month outside 1..12 or a year outside 1970..9999 is requested.
func errInvalidMonth(year, month int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidMonth, fmt.Sprintf("invalid month %04d-%02d", year, month), nil)
}

// errSyncDisabled returns an error when an upload is requested but sync is not configured.
func errSyncDisabled() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeSyncDisabled, "sync is disabled", nil)
}

func errInternalReloadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReloadFailed, fmt.Errorf("reloadFailed: %w", cause))
}

func errInternalUploadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUploadFailed, fmt.Errorf("uploadFailed: %w", cause))
}
