package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"access-analytics/internal/models"
)

type batchWriter struct {
	db        *sql.DB
	batchSize int
	buffer    []*models.LogEntry

	committed int64
	batches   int64
}

func (w *batchWriter) Append(ctx context.Context, entry *models.LogEntry) error {
	w.buffer = append(w.buffer, entry)
	if len(w.buffer) < w.batchSize {
		return nil
	}
	return w.Flush(ctx)
}

func (w *batchWriter) Flush(ctx context.Context) error {
	if len(w.buffer) == 0 {
		return nil
	}
	// The buffer is dropped whatever the outcome: a failed batch is rolled back and
	// must not be committed again by a later flush.
	batch := w.buffer
	w.buffer = make([]*models.LogEntry, 0, w.batchSize)

	start := time.Now()
	if err := w.commit(ctx, batch); err != nil {
		metricBatchCommittedTotal.WithLabelValues(outcomeFailed).Inc()
		return err
	}
	metricBatchCommitDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	metricBatchCommittedTotal.WithLabelValues(outcomeCommitted).Inc()
	metricEntryCommittedTotal.WithLabelValues().Add(float64(len(batch)))

	w.committed += int64(len(batch))
	w.batches++
	return nil
}

func (w *batchWriter) commit(ctx context.Context, batch []*models.LogEntry) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertEntry)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range batch {
		_, err := stmt.ExecContext(ctx,
			entry.IPAddress,
			entry.Timestamp,
			entry.Method,
			entry.Path,
			entry.StatusCode,
			entry.BytesSent,
			entry.Referer,
			entry.UserAgent,
		)
		if err != nil {
			return fmt.Errorf("failed to insert log entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch of %d entries: %w", len(batch), err)
	}
	return nil
}

func (w *batchWriter) Committed() int64 {
	return w.committed
}

func (w *batchWriter) BatchesCommitted() int64 {
	return w.batches
}

func (w *batchWriter) BatchSize() int {
	return w.batchSize
}
