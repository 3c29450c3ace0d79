package aggregators

import (
	"access-analytics/internal/shared/metrics"
)

const (
	queryVisitors       = "visitors"
	queryStatusCodes    = "status_codes"
	querySecurityAlerts = "security_alerts"
)

var (
	metricQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "query_total",
		},
		[]string{metrics.FieldQuery, metrics.FieldErrorCode},
	)

	// metricQueryDuration includes geo lookups for the visitors query.
	metricQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldQuery},
	)
)
