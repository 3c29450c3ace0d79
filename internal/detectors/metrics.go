package detectors

import (
	"access-analytics/internal/shared/metrics"
)

var (
	metricDetectionRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDetection,
			Name:      "run_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricSuspiciousIPReportedTotal counts candidates per rule across runs; a persistent
	// offender is counted again on every run.
	metricSuspiciousIPReportedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDetection,
			Name:      "suspicious_ip_reported_total",
		},
		[]string{metrics.FieldRule},
	)
)
