package http

import (
	"fmt"

	"reading-stats/internal/shared/svcerrors"
)

// Handler errors
const (
	codeInvalidQueryParam = "HTTP_1000"
	codeInvalidDate       = "HTTP_1001"
	codeSyncDisabled      = "HTTP_1002"

	codeEnqueueFailed = "HTTP_9000"
)

const dateLayout = "2006-01-02"

// errInvalidQueryParam returns an error when a numeric query parameter cannot be parsed.
func errInvalidQueryParam(name, value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %s=%q", name, value), nil)
}

// errInvalidDate returns an error when the date parameter is not YYYY-MM-DD.
func errInvalidDate(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, fmt.Sprintf("invalid date %q, expected %s", value, dateLayout), cause)
}

// errSyncDisabled returns an error when a sync endpoint is called while sync is turned off.
func errSyncDisabled() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeSyncDisabled, "sync is disabled", nil)
}

// errEnqueueFailed returns an error when the refresh queue does not accept the request in time.
func errEnqueueFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeEnqueueFailed, "refresh queue is busy, try again", cause)
}
