package http

import (
	"net/http"

	"reading-stats/internal/sessions"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/shared/metrics"
	"reading-stats/internal/stores"
	"reading-stats/internal/streams"
	"reading-stats/internal/syncs"

	"github.com/go-chi/chi/v5"
)

// RouterDeps are the collaborators of the HTTP API. SyncService is nil when sync is disabled.
type RouterDeps struct {
	Session     sessions.StatsSession
	LogStore    stores.LogStore
	Producer    streams.RefreshProducer
	SyncService syncs.SyncService
	GoalMinutes int
	ShareDomain string
	Clock       Clock
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Route("/stats", func(r chi.Router) {
		r.Get("/overview", errorHandlingAdapter(NewOverviewHandler(deps.Session, deps.LogStore, deps.GoalMinutes, deps.Clock)))
		r.Get("/week", errorHandlingAdapter(NewWeekHandler(deps.Session, deps.Clock)))
		r.Get("/month", errorHandlingAdapter(NewMonthHandler(deps.Session)))
		r.Get("/day", errorHandlingAdapter(NewDayHandler(deps.Session, deps.Clock)))
		r.Post("/reload", errorHandlingAdapter(NewReloadHandler(deps.Producer)))
	})
	router.Post("/sync", errorHandlingAdapter(NewSyncHandler(deps.Producer, deps.SyncService)))
	router.Get("/sync", errorHandlingAdapter(NewSyncStatusHandler(deps.SyncService)))
	router.Get("/share", errorHandlingAdapter(NewShareHandler(deps.Session, deps.ShareDomain, deps.GoalMinutes)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
