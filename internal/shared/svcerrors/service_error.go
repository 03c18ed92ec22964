package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryResourceConflict = "resource_conflict"
	categoryUnavailable      = "unavailable"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

const messageInternal = "internal server error"

// ServiceError is the error every service and handler returns to its caller. Code is stable and owned
// by the package that declares it (STATS_1000, SYNC_1001, ...); Message is safe to show to clients.
type ServiceError struct {
	Category       string
	Code           string
	Message        string
	Cause          error
	HttpStatusCode int
}

func newServiceError(category string, status int, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: status,
	}
}

// NewInvalidArgumentError reports a request the caller must fix (bad month, bad date).
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, http.StatusBadRequest, code, message, cause)
}

// NewResourceConflictError reports a request that is valid but cannot run in the current state, such
// as syncing without a token.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryResourceConflict, http.StatusConflict, code, message, cause)
}

// NewUnavailableError reports a collaborator that cannot be reached: the sync server or the refresh lane.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryUnavailable, http.StatusServiceUnavailable, code, message, cause)
}

// NewInternalError hides cause behind a generic message.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, http.StatusInternalServerError, code, messageInternal, cause)
}

// NewInternalErrorUndefined wraps an error that was not a ServiceError.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, a ServiceError with the given code.
func HasCode(err error, code string) bool {
	svcErr, ok := AsServiceError(err)
	return ok && svcErr.Code == code
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
