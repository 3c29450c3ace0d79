package ingestors

import (
	"access-analytics/internal/shared/metrics"
)

// outcomeOversized labels lines dropped for exceeding the line size limit; they never reach the parser.
const outcomeOversized = "oversized"

var (
	metricBulkLoadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "bulk_load_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricLineTotal counts every line read, labelled with its parse outcome.
	metricLineTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "line_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
