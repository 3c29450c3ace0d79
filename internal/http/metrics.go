package http

import (
	"access-analytics/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	metricRequestTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_total",
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)

	// metricRequestDuration uses wider buckets than DefBuckets: POST /logs runs a whole bulk-load.
	metricRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.ExponentialBuckets(0.005, 4, 10),
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)
)
