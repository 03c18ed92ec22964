package http

import (
	"net/http"

	"reading-stats/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter remembers the ServiceError written by the adapter so the metrics and completion
// log middlewares can label the request with its error code.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// Outcome returns the response status and error code. A handler that never called WriteHeader
// answered 200.
func (w *appResponseWriter) Outcome() (int, string) {
	status := w.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return status, w.ErrorCode()
}
