package http

import (
	"context"
	"net/http"

	"access-analytics/internal/aggregators"
	"access-analytics/internal/detectors"
	"access-analytics/internal/ingestors"
	"access-analytics/internal/models"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	MaxBodyBytes int64
}

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.IngestionService,
	analyticsService aggregators.AnalyticsService,
	anomalyDetector detectors.AnomalyDetector,
	httpLogger loggers.Logger,
	opts RouterOptions,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	dashboard := func(ctx context.Context) (*models.Dashboard, error) {
		return analyticsService.Dashboard(ctx), nil
	}

	router.Post("/logs", errorHandlingAdapter(NewIngestLogHandler(ingestionService, opts.MaxBodyBytes)))
	router.Route("/ingestions", func(r chi.Router) {
		r.Get("/", errorHandlingAdapter(NewListIngestReportsHandler(ingestionService)))
		r.Get("/{"+paramRunID+"}", errorHandlingAdapter(NewGetIngestReportHandler(ingestionService)))
	})
	router.Route("/analytics", func(r chi.Router) {
		r.Get("/visitors", errorHandlingAdapter(NewQueryHandler(analyticsService.VisitorSummary)))
		r.Get("/status-codes", errorHandlingAdapter(NewQueryHandler(analyticsService.StatusCodeSummary)))
		r.Get("/security-alerts", errorHandlingAdapter(NewQueryHandler(anomalyDetector.Detect)))
		r.Get("/dashboard", errorHandlingAdapter(NewQueryHandler(dashboard)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
