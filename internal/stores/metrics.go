package stores

import (
	"access-analytics/internal/shared/metrics"
)

var (
	metricBatchCommittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "batch_committed_total",
		},
		[]string{metrics.FieldOutcome},
	)

	metricEntryCommittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "entry_committed_total",
		},
		[]string{},
	)

	// metricBatchCommitDuration observes the wall time of one batch transaction, insert to commit.
	metricBatchCommitDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "batch_commit_duration_seconds",
			Buckets:   metrics.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{},
	)
)

const (
	outcomeCommitted = "committed"
	outcomeFailed    = "failed"
)
