package aggregators

import (
	"context"
	"time"

	"access-analytics/internal/detectors"
	"access-analytics/internal/geolocators"
	"access-analytics/internal/models"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"
	"access-analytics/internal/shared/svcerrors"
	"access-analytics/internal/stores"

	"github.com/mileusna/useragent"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

const otherBrowser = "Other"

// AnalyticsService computes analytics over committed log entries. Every query reads one
// snapshot and is safe to run concurrently with other queries and with a bulk-load.
//
//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AnalyticsService interface {
	VisitorSummary(ctx context.Context) (*models.VisitorSummary, error)
	StatusCodeSummary(ctx context.Context) (*models.StatusCodeSummary, error)
	// Dashboard runs the visitor, status code and security queries concurrently.
	// A failed query is reported in its own section and never fails the others.
	Dashboard(ctx context.Context) *models.Dashboard
}

type analyticsService struct {
	store         stores.LogEntryStore
	resolver      geolocators.Resolver
	detector      detectors.AnomalyDetector
	lookupWorkers int
}

func NewAnalyticsService(store stores.LogEntryStore, resolver geolocators.Resolver, detector detectors.AnomalyDetector, lookupWorkers int) AnalyticsService {
	if lookupWorkers < 1 {
		lookupWorkers = 1
	}
	return &analyticsService{
		store:         store,
		resolver:      resolver,
		detector:      detector,
		lookupWorkers: lookupWorkers,
	}
}

// visitorSnapshot is what VisitorSummary reads from the store before any geo lookup.
type visitorSnapshot struct {
	total      int64
	unique     int64
	pages      []stores.GroupCount
	ips        []stores.GroupCount
	userAgents []stores.GroupCount
}

func (s *analyticsService) VisitorSummary(ctx context.Context) (*models.VisitorSummary, error) {
	start := time.Now()
	defer func() { metricQueryDuration.WithLabelValues(queryVisitors).Observe(time.Since(start).Seconds()) }()

	var snap visitorSnapshot
	err := s.store.View(ctx, func(reader stores.LogEntryReader) error {
		var err error
		if snap.total, err = reader.Count(ctx, stores.EntryFilter{}); err != nil {
			return err
		}
		if snap.unique, err = reader.CountDistinct(ctx, stores.FieldIPAddress, stores.EntryFilter{}); err != nil {
			return err
		}
		if snap.pages, err = reader.GroupCount(ctx, stores.FieldPath, stores.EntryFilter{}, stores.GroupOptions{Limit: models.TopN}); err != nil {
			return err
		}
		if snap.ips, err = reader.GroupCount(ctx, stores.FieldIPAddress, stores.EntryFilter{}, stores.GroupOptions{}); err != nil {
			return err
		}
		snap.userAgents, err = reader.GroupCount(ctx, stores.FieldUserAgent, stores.EntryFilter{}, stores.GroupOptions{})
		return err
	})
	if err != nil {
		svcErr := errInternalStoreQueryFailed(queryVisitors, err)
		metricQueryTotal.WithLabelValues(queryVisitors, svcErr.Code).Inc()
		return nil, svcErr
	}

	summary := models.NewEmptyVisitorSummary()
	summary.TotalVisits = snap.total
	summary.UniqueVisitors = snap.unique
	for _, page := range snap.pages {
		summary.TopPages = append(summary.TopPages, models.PageCount{Page: page.Key, Count: page.Count})
	}
	for _, country := range s.rankCountries(ctx, snap.ips) {
		summary.TopCountries = append(summary.TopCountries, models.CountryCount{Country: country.key, Count: country.count})
	}
	bots, browsers := s.rankBrowsers(snap.userAgents)
	summary.BotVisits = bots
	for _, browser := range browsers {
		summary.TopBrowsers = append(summary.TopBrowsers, models.BrowserCount{Browser: browser.key, Count: browser.count})
	}

	metricQueryTotal.WithLabelValues(queryVisitors, metrics.ValueNoError).Inc()
	return summary, nil
}

// rankCountries resolves every distinct IP once and weights its country by the IP's hit count.
// Unresolved IPs only drop out of the country ranking.
func (s *analyticsService) rankCountries(ctx context.Context, ips []stores.GroupCount) []ranked {
	countries := make([]string, len(ips))
	p := pool.New().WithMaxGoroutines(s.lookupWorkers)
	for i, ip := range ips {
		p.Go(func() {
			country, err := s.resolver.Resolve(ctx, ip.Key)
			if err != nil {
				return
			}
			countries[i] = country
		})
	}
	p.Wait()

	rank := newRanking()
	for i, ip := range ips {
		if countries[i] == "" {
			continue
		}
		rank.add(countries[i], ip)
	}
	return rank.top(models.TopN)
}

// rankBrowsers folds user agents into browser families. Bot traffic is counted apart and
// kept out of the browser ranking.
func (s *analyticsService) rankBrowsers(userAgents []stores.GroupCount) (int64, []ranked) {
	var bots int64
	rank := newRanking()
	for _, group := range userAgents {
		ua := useragent.Parse(group.Key)
		if ua.Bot {
			bots += group.Count
			continue
		}
		name := ua.Name
		if name == "" {
			name = otherBrowser
		}
		rank.add(name, group)
	}
	return bots, rank.top(models.TopN)
}

func (s *analyticsService) StatusCodeSummary(ctx context.Context) (*models.StatusCodeSummary, error) {
	start := time.Now()
	defer func() { metricQueryDuration.WithLabelValues(queryStatusCodes).Observe(time.Since(start).Seconds()) }()

	summary := models.NewEmptyStatusCodeSummary()
	err := s.store.View(ctx, func(reader stores.LogEntryReader) error {
		for _, code := range models.WatchedStatusCodes {
			count, err := reader.Count(ctx, stores.EntryFilter{StatusCode: code})
			if err != nil {
				return err
			}
			summary.SetCode(code, count)
		}
		for _, rule := range models.StatusClassRules {
			count, err := reader.Count(ctx, stores.EntryFilter{StatusClass: rule.Class})
			if err != nil {
				return err
			}
			summary.Summary.SetClass(rule.Label, count)
		}
		return nil
	})
	if err != nil {
		svcErr := errInternalStoreQueryFailed(queryStatusCodes, err)
		metricQueryTotal.WithLabelValues(queryStatusCodes, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricQueryTotal.WithLabelValues(queryStatusCodes, metrics.ValueNoError).Inc()
	return summary, nil
}

func (s *analyticsService) Dashboard(ctx context.Context) *models.Dashboard {
	dashboard := &models.Dashboard{}

	var wg conc.WaitGroup
	wg.Go(func() {
		summary, err := s.VisitorSummary(ctx)
		dashboard.Visitors = toQueryResult(ctx, queryVisitors, summary, err)
	})
	wg.Go(func() {
		summary, err := s.StatusCodeSummary(ctx)
		dashboard.StatusCodes = toQueryResult(ctx, queryStatusCodes, summary, err)
	})
	wg.Go(func() {
		alerts, err := s.detector.Detect(ctx)
		dashboard.SecurityAlerts = toQueryResult(ctx, querySecurityAlerts, alerts, err)
	})
	wg.Wait()

	return dashboard
}

func toQueryResult[T any](ctx context.Context, query string, data *T, err error) models.QueryResult[T] {
	if err == nil {
		return models.NewQuerySuccess(data)
	}
	svcErr := svcerrors.FromError(err)
	loggers.Ctx(ctx).Error().
		Err(svcErr.Cause).
		Str(loggers.FieldQueryName, query).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Msg("dashboard query failed")
	return models.NewQueryFailure[T](svcErr.Code, svcErr.Message)
}
