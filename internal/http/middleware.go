package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/shared/svcerrors"
	"reading-stats/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/mileusna/useragent"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwObserve)
	router.Use(mwRecoverer)
}

func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwRequestID reuses the caller's X-Request-ID or mints a ULID, and puts a logger carrying it into
// the request context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			ctx := httpLogger.With().Str(loggers.FieldRequestID, id).Logger().WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// mwObserve records the request metrics and writes the completion log line once the handler returns.
// Metrics are labelled by route pattern, never the raw path.
func mwObserve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			elapsed := time.Since(start)
			status, errorCode := responseOutcome(w)
			client := clientFamily(r.UserAgent())

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			metricHTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status), errorCode, client).Inc()
			metricHTTPRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())

			loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Str(loggers.FieldErrorCode, errorCode).
				Str(loggers.FieldUserAgent, client).
				Int64(loggers.FieldDuration, elapsed.Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 response. It sits inside mwObserve so the
// recovered request is still counted and logged.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			err, ok := p.(error)
			if !ok {
				err = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(err))
		}()

		next.ServeHTTP(w, r)
	})
}

// responseOutcome reports 200 with no error code when w was not wrapped by mwAppResponseWriter.
func responseOutcome(w http.ResponseWriter) (int, string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.Outcome()
	}
	return http.StatusOK, ""
}

const clientUnknown = "unknown"

// clientFamily reduces a User-Agent header to a low-cardinality browser or tool name.
func clientFamily(ua string) string {
	if ua == "" {
		return clientUnknown
	}
	parsed := useragent.Parse(ua)
	switch {
	case parsed.Bot:
		return "bot"
	case parsed.Name != "":
		return parsed.Name
	default:
		return clientUnknown
	}
}
