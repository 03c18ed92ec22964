package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"reading-stats/internal/aggregators"
	"reading-stats/internal/events"
	internalhttp "reading-stats/internal/http"
	"reading-stats/internal/ingestors"
	"reading-stats/internal/sessions"
	"reading-stats/internal/shared/configs"
	"reading-stats/internal/shared/filestorages"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/stores"
	"reading-stats/internal/streams"
	"reading-stats/internal/syncs"
	"reading-stats/internal/watchers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	loc       *time.Location

	session         sessions.StatsSession
	logStore        stores.LogStore
	refreshProducer streams.RefreshProducer
	refreshConsumer streams.RefreshConsumer
	logWatcher      watchers.LogWatcher

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// Components is the wired core shared by the server and the CLI.
type Components struct {
	Location    *time.Location
	FileStorage filestorages.FileStorage
	LogStore    stores.LogStore
	Session     sessions.StatsSession
	// SyncService is nil when sync is disabled.
	SyncService syncs.SyncService
}

// NewComponents wires storage, aggregation and the stats session from config.
func NewComponents(config *configs.Config, fileStorage filestorages.FileStorage, now func() time.Time) (*Components, error) {
	loc, err := config.Clock.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}

	logStore := stores.NewLogStore(fileStorage, stores.LogStoreConfig{
		Dir:         config.Logs.Dir,
		Prefix:      config.Logs.Prefix,
		ArchiveFile: config.Logs.ArchiveFile,
		ScratchFile: config.Logs.ScratchFile,
	})
	aggregationService := aggregators.NewAggregationService(
		logStore,
		ingestors.NewIngestionService(),
		aggregators.NewEventRolluper(loc),
		loc,
	)
	session := sessions.NewStatsSession(aggregationService, logStore, loc, now)

	components := &Components{
		Location:    loc,
		FileStorage: fileStorage,
		LogStore:    logStore,
		Session:     session,
	}
	if config.Sync.Enabled {
		client := syncs.NewClient(config.Sync.Domain, time.Duration(config.Sync.Timeout)*time.Second, fileStorage)
		credentialStore := syncs.NewCredentialStore(fileStorage, config.Sync.TokenFile, config.Sync.StateFile)
		components.SyncService = syncs.NewSyncService(client, credentialStore, logStore, session, now)
	}
	return components, nil
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "reading-stats").
		Logger()

	components, err := NewComponents(config, filestorages.NewOsFileStorage(), time.Now)
	if err != nil {
		return nil, err
	}

	// Initialize refresh stream
	refreshQueue := streams.NewPartitionedQueue[*events.RefreshEvent]()
	refreshProducer := streams.NewRefreshProducer(refreshQueue)
	refreshService := sessions.NewRefreshService(components.Session, components.SyncService)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	refreshConsumer := streams.NewRefreshConsumer(refreshQueue, refreshService, consumerLogger)

	var logWatcher watchers.LogWatcher
	if config.Watch.Enabled {
		debounce := time.Duration(config.Watch.Debounce) * time.Millisecond
		logWatcher = watchers.NewLogWatcher(config.Logs.Dir, config.Logs.Prefix, debounce, refreshProducer, appLogger)
	}

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterDeps{
		Session:     components.Session,
		LogStore:    components.LogStore,
		Producer:    refreshProducer,
		SyncService: components.SyncService,
		GoalMinutes: config.Goal.DailyTargetMinutes,
		ShareDomain: config.Sync.Domain,
		Clock:       internalhttp.Clock{Location: components.Location, Now: time.Now},
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		loc:             components.Location,
		session:         components.Session,
		logStore:        components.LogStore,
		refreshProducer: refreshProducer,
		refreshConsumer: refreshConsumer,
		logWatcher:      logWatcher,
	}, nil
}

// Start rotates the logs, loads every source once and then serves HTTP in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting reading-stats service on port %d (log_level=%s, logs_dir=%s, timezone=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Logs.Dir,
			app.loc)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	ctx := app.appLogger.WithContext(app.backgroundCtx)

	// 1) Rotate closed periods into the archive, then load everything from disk
	if result, err := app.session.Rotate(ctx); err != nil {
		app.appLogger.Error().Err(err).Msg("startup rotation failed")
	} else {
		app.appLogger.Info().Strs(loggers.FieldMerged, result.Merged).Msg("startup rotation done")
	}
	now := time.Now().In(app.loc)
	if _, err := app.session.LoadAndProject(ctx, now.Year(), int(now.Month()), true); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	// 2) Start background workers
	app.refreshConsumer.Start(app.backgroundCtx)
	if app.logWatcher != nil {
		if err := app.logWatcher.Start(app.backgroundCtx); err != nil {
			app.appLogger.Error().Err(err).Msg("log watcher disabled")
			app.logWatcher = nil
		}
	}
	if app.config.Sync.Enabled && app.config.Sync.UploadOnStart {
		if err := app.refreshProducer.Produce(ctx, &events.RefreshEvent{Reason: events.ReasonStartup, Upload: true}); err != nil {
			app.appLogger.Error().Err(err).Msg("failed to enqueue startup upload")
		}
	}

	// 3) Serve
	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop producers before the consumer
	if app.logWatcher != nil {
		app.logWatcher.Stop()
	}
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 3) Wait for the refresh in flight to finish
	app.refreshConsumer.Stop()
	app.appLogger.Info().Msg("Background workers stopped")

	// 4) The scratch file only exists to rebuild the archive
	if err := app.logStore.RemoveScratch(ctx); err != nil {
		app.appLogger.Warn().Err(err).Msg("failed to remove scratch file")
	}
	return nil
}
