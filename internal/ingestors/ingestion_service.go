package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"access-analytics/internal/models"
	"access-analytics/internal/parsers"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"
	"access-analytics/internal/shared/svcerrors"
	"access-analytics/internal/shared/ulid"
	"access-analytics/internal/stores"
)

const (
	DefaultBatchSize    = 10000
	DefaultMaxLineBytes = 1024 * 1024

	readBufferSize = 64 * 1024
	maxSourceLen   = 256
)

type Options struct {
	BatchSize    int
	MaxLineBytes int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestLog bulk-loads newline-delimited access log lines from r. Only one bulk-load runs at
	// a time; batches committed before a failure stay committed.
	IngestLog(ctx context.Context, source string, r io.Reader) (*models.IngestReport, error)
	GetReport(ctx context.Context, runID string) (*models.IngestReport, error)
	// ListReports returns up to limit reports of finished runs, newest first.
	ListReports(ctx context.Context, limit int) ([]*models.IngestReport, error)
}

type ingestionService struct {
	parser      parsers.LineParser
	entryStore  stores.LogEntryStore
	reportStore stores.IngestReportStore
	opts        Options

	// writer admits a single bulk-load
	writer sync.Mutex
}

func NewIngestionService(parser parsers.LineParser, entryStore stores.LogEntryStore, reportStore stores.IngestReportStore, opts Options) IngestionService {
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxLineBytes < 1 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	return &ingestionService{
		parser:      parser,
		entryStore:  entryStore,
		reportStore: reportStore,
		opts:        opts,
	}
}

func (s *ingestionService) IngestLog(ctx context.Context, source string, r io.Reader) (*models.IngestReport, error) {
	report, err := s.ingestLog(ctx, source, r)
	if err != nil {
		metricBulkLoadTotal.WithLabelValues(svcerrors.FromError(err).Code).Inc()
		return nil, err
	}
	metricBulkLoadTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

func (s *ingestionService) ingestLog(ctx context.Context, source string, r io.Reader) (*models.IngestReport, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errValidationFailed("log source is required", nil)
	}
	if len(source) > maxSourceLen {
		return nil, errValidationFailed(fmt.Sprintf("log source too long: max %d characters", maxSourceLen), nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty log stream", nil)
	}

	if !s.writer.TryLock() {
		return nil, errBulkLoadInProgress()
	}
	defer s.writer.Unlock()

	report := &models.IngestReport{
		RunID:     ulid.NewULID(),
		Source:    source,
		BatchSize: s.opts.BatchSize,
		StartedAt: time.Now().UTC(),
	}
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, report.RunID).
		Str(loggers.FieldSource, source).
		Int(loggers.FieldBatchSize, report.BatchSize).
		Logger()
	logger.Info().Msg("started bulk-load")

	writer := s.entryStore.NewBatchWriter(s.opts.BatchSize)
	if err := s.load(ctx, r, writer, report); err != nil {
		// The buffered remainder is dropped with the writer; committed batches stay.
		logger.Error().Err(err).
			Int64(loggers.FieldCommitted, writer.Committed()).
			Msg("aborted bulk-load")
		return nil, err
	}
	if err := writer.Flush(ctx); err != nil {
		logger.Error().Err(err).
			Int64(loggers.FieldCommitted, writer.Committed()).
			Msg("failed to commit final batch")
		return nil, errInternalLogEntryStoreFailed(err)
	}

	report.Committed = writer.Committed()
	report.BatchesCommitted = writer.BatchesCommitted()
	report.FinishedAt = time.Now().UTC()

	if err := s.reportStore.Put(ctx, report); err != nil {
		return nil, errInternalIngestReportStoreFailed(err)
	}

	logger.Info().
		Int64(loggers.FieldCommitted, report.Committed).
		Int64(loggers.FieldLinesRead, report.LinesRead).
		Int64(loggers.FieldUnparsed, report.Unparsed.Total()).
		Msg("finished bulk-load")
	return report, nil
}

// load reads r into chunks of BatchSize lines, parses each chunk in parallel and appends the
// entries to writer in line order. Lines longer than MaxLineBytes are counted and skipped.
func (s *ingestionService) load(ctx context.Context, r io.Reader, writer stores.BatchWriter, report *models.IngestReport) error {
	lines := newLineReader(r, s.opts.MaxLineBytes)

	chunk := make([]string, 0, s.opts.BatchSize)
	for {
		line, oversized, err := lines.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errInternalLogReadFailed(err)
		}
		if oversized {
			report.LinesRead++
			report.Unparsed.Oversized++
			metricLineTotal.WithLabelValues(outcomeOversized).Inc()
			continue
		}

		chunk = append(chunk, line)
		if len(chunk) < s.opts.BatchSize {
			continue
		}
		if err := s.loadChunk(ctx, chunk, writer, report); err != nil {
			return err
		}
		chunk = chunk[:0]
	}
	return s.loadChunk(ctx, chunk, writer, report)
}

func (s *ingestionService) loadChunk(ctx context.Context, chunk []string, writer stores.BatchWriter, report *models.IngestReport) error {
	if err := ctx.Err(); err != nil {
		return errInternalLogReadFailed(err)
	}

	for _, result := range s.parser.ParseLines(chunk) {
		report.LinesRead++
		outcome := parsers.Outcome(result.Err)
		metricLineTotal.WithLabelValues(outcome).Inc()

		switch outcome {
		case parsers.OutcomeParsed:
			report.Parsed++
			if err := writer.Append(ctx, result.Entry); err != nil {
				return errInternalLogEntryStoreFailed(err)
			}
		case parsers.OutcomeEmpty:
			report.Unparsed.Empty++
		case parsers.OutcomeInvalid:
			report.Unparsed.Invalid++
		default:
			report.Unparsed.GrammarMismatch++
		}
	}
	return nil
}

func (s *ingestionService) GetReport(ctx context.Context, runID string) (*models.IngestReport, error) {
	if !ulid.IsValid(runID) {
		return nil, errIngestReportNotFound(runID, nil)
	}
	report, err := s.reportStore.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, stores.ErrIngestReportNotFound) {
			return nil, errIngestReportNotFound(runID, err)
		}
		return nil, errInternalIngestReportStoreFailed(err)
	}
	return report, nil
}

func (s *ingestionService) ListReports(ctx context.Context, limit int) ([]*models.IngestReport, error) {
	if limit < 1 || limit > 100 {
		return nil, errValidationFailed("limit must be between 1 and 100", nil)
	}
	reports, err := s.reportStore.ListRecent(ctx, limit)
	if err != nil {
		return nil, errInternalIngestReportStoreFailed(err)
	}
	return reports, nil
}
