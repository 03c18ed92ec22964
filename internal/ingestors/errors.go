package ingestors

import (
	"fmt"

	"reading-stats/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeInternalSourceReadFailed = "ING_9000"
)

// errInternalSourceReadFailed returns an error when a log source cannot be read to its end.
func errInternalSourceReadFailed(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed %s: %w", source, cause))
}
