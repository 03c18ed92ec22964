package syncs

import (
	"fmt"

	"reading-stats/internal/shared/svcerrors"
)

// SyncService errors
const (
	codeNotLoggedIn    = "SYNC_1000"
	codeDeviceExpired  = "SYNC_1001"
	codeUnreachable    = "SYNC_1002"
	codeServerRejected = "SYNC_1003"

	codeInternalCredentialsFailed = "SYNC_9000"
	codeInternalListFilesFailed   = "SYNC_9001"
)

const unknownServerError = "Unknown server error"

// errNotLoggedIn returns an error when the token file holds no access token.
func errNotLoggedIn() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeNotLoggedIn, "device is not logged in", nil)
}

// errDeviceExpired returns an error when the server no longer accepts the device. Local credentials
// are already cleared when this is returned.
func errDeviceExpired() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeDeviceExpired, "device login expired, please log in again", nil)
}

// errUnreachable returns an error when the sync server cannot be reached or answers garbage.
func errUnreachable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnreachable, "sync server is unreachable", cause)
}

// errServerRejected returns an error carrying the message of a non-success upload response.
func errServerRejected(msg string) *svcerrors.ServiceError {
	if msg == "" {
		msg = unknownServerError
	}
	return svcerrors.NewUnavailableError(codeServerRejected, msg, nil)
}

func errInternalCredentialsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCredentialsFailed, fmt.Errorf("credentialsFailed: %w", cause))
}

func errInternalListFilesFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalListFilesFailed, fmt.Errorf("listFilesFailed: %w", cause))
}

// IsDeviceExpired reports whether err says the server no longer accepts this device. Local
// credentials are already cleared when it is returned.
func IsDeviceExpired(err error) bool {
	return svcerrors.HasCode(err, codeDeviceExpired)
}
