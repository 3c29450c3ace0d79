package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"access-analytics/internal/aggregators"
	"access-analytics/internal/detectors"
	"access-analytics/internal/geolocators"
	internalhttp "access-analytics/internal/http"
	"access-analytics/internal/ingestors"
	"access-analytics/internal/models"
	"access-analytics/internal/parsers"
	"access-analytics/internal/shared/configs"
	"access-analytics/internal/shared/filestorages"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/stores"
)

const appName = "access-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	entryStore       stores.LogEntryStore
	geoCloser        io.Closer
	ingestionService ingestors.IngestionService
}

// New creates and initializes a new App instance. Logs are written as JSON to logWriter.
func New(config *configs.Config, logWriter io.Writer) (*App, error) {
	appLogger, err := loggers.NewWithWriter(config.Log.Level, logWriter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Ingest reports
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewIngestReportStore(fileStorage)

	// Log entries
	entryStore, err := stores.NewSQLiteLogEntryStore(config.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log entry store: %w", err)
	}

	geoLogger := appLogger.With().Str(loggers.FieldComponent, "geo").Logger()
	resolver, geoCloser := newResolver(config.Geo, geoLogger)

	// Services
	parser := parsers.NewCombinedLogParser(config.Ingestion.ParseWorkers)
	ingestionService := ingestors.NewIngestionService(parser, entryStore, reportStore, ingestors.Options{
		BatchSize:    config.Store.BatchSize,
		MaxLineBytes: config.Ingestion.MaxLineBytes,
	})
	anomalyDetector := detectors.NewAnomalyDetector(entryStore, detectors.DefaultRules)
	analyticsService := aggregators.NewAnalyticsService(entryStore, resolver, anomalyDetector, config.Geo.LookupWorkers)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, analyticsService, anomalyDetector, httpLogger, internalhttp.RouterOptions{
		MaxBodyBytes: config.Server.MaxBodyBytes,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		entryStore:       entryStore,
		geoCloser:        geoCloser,
		ingestionService: ingestionService,
	}, nil
}

// newResolver opens the configured geo database. A missing or unreadable database only
// disables country rankings, so failures are logged and replaced by the nop resolver.
func newResolver(config configs.GeoConfig, logger loggers.Logger) (geolocators.Resolver, io.Closer) {
	if config.DatabasePath == "" {
		logger.Info().Msg("geo database not configured, country lookups disabled")
		return geolocators.NewNopResolver(), nil
	}

	maxMind, err := geolocators.NewMaxMindResolver(config.DatabasePath)
	if err != nil {
		logger.Warn().Err(err).
			Str(loggers.FieldGeoDBPath, config.DatabasePath).
			Msg("geo database unavailable, country lookups disabled")
		return geolocators.NewNopResolver(), nil
	}

	timeout := time.Duration(config.LookupTimeoutMs) * time.Millisecond
	return geolocators.WithTimeout(maxMind, timeout), maxMind
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Str(loggers.FieldStorePath, app.config.Store.Path).
		Msgf("Starting %s service on port %d (log_level=%s, file_storage_root_dir=%s)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Ingest runs one bulk-load outside the HTTP server, as the ingest command does.
func (app *App) Ingest(ctx context.Context, source string, r io.Reader) (*models.IngestReport, error) {
	return app.ingestionService.IngestLog(app.appLogger.WithContext(ctx), source, r)
}

// Shutdown gracefully shuts down the server and then releases the stores.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return app.Close()
}

// Close releases the log entry store and the geo database.
func (app *App) Close() error {
	var errs []error
	if err := app.entryStore.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close log entry store: %w", err))
	}
	if app.geoCloser != nil {
		if err := app.geoCloser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close geo database: %w", err))
		}
	}
	return errors.Join(errs...)
}
