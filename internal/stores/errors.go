package stores

import (
	"fmt"

	"reading-stats/internal/shared/svcerrors"
)

// LogStore rotation errors
const (
	codeArchiveUnreadable          = "ROT_9000"
	codeInternalLogDirFailed       = "ROT_9001"
	codeInternalMergeFailed        = "ROT_9002"
	codeInternalArchiveWriteFailed = "ROT_9003"
)

// errArchiveUnreadable returns an error when the archive exists but cannot be decompressed. The archive
// is left as it was and no period file is merged.
func errArchiveUnreadable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeArchiveUnreadable, fmt.Errorf("archiveUnreadable: %w", cause))
}

// errInternalLogDirFailed returns an error when the log directory cannot be listed.
func errInternalLogDirFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogDirFailed, fmt.Errorf("logDirFailed: %w", cause))
}

// errInternalMergeFailed returns an error when a period file cannot be appended to the scratch file.
func errInternalMergeFailed(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMergeFailed, fmt.Errorf("mergeFailed %s: %w", name, cause))
}

// errInternalArchiveWriteFailed returns an error when the scratch file cannot be compressed over the archive.
func errInternalArchiveWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArchiveWriteFailed, fmt.Errorf("archiveWriteFailed: %w", cause))
}
