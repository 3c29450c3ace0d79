package geolocators

import (
	"access-analytics/internal/shared/metrics"
)

const (
	outcomeResolved = "resolved"
	outcomeNotFound = "not_found"
	outcomeTimeout  = "timeout"
	outcomeDisabled = "disabled"
)

var (
	metricLookupTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGeo,
			Name:      "lookup_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
