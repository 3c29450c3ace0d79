package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/filestorages"
)

// IngestReportStore keeps one immutable JSON document per bulk-load run. Run ids are ULIDs, so
// lexical key order is start-time order.
//
//go:generate mockgen -source=ingest_report_store.go -destination=./mocks/ingest_report_store_mock.go -package=mocks
type IngestReportStore interface {
	Put(ctx context.Context, report *models.IngestReport) error
	Get(ctx context.Context, runID string) (*models.IngestReport, error)
	// ListRecent returns up to limit reports, newest first.
	ListRecent(ctx context.Context, limit int) ([]*models.IngestReport, error)
}

type ingestReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewIngestReportStore(fileStorage filestorages.FileStorage) IngestReportStore {
	return &ingestReportStore{fileStorage: fileStorage, dir: "ingest-reports"}
}

func (s *ingestReportStore) Put(ctx context.Context, report *models.IngestReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal ingest report: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(report.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrIngestReportAlreadyExist
		}
		return fmt.Errorf("failed to put ingest report: %w", err)
	}
	return nil
}

func (s *ingestReportStore) Get(ctx context.Context, runID string) (*models.IngestReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrIngestReportNotFound
		}
		return nil, fmt.Errorf("failed to get ingest report: %w", err)
	}
	defer readCloser.Close()

	return s.decode(readCloser)
}

func (s *ingestReportStore) ListRecent(ctx context.Context, limit int) ([]*models.IngestReport, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingest reports: %w", err)
	}

	reports := make([]*models.IngestReport, 0, min(limit, len(keys)))
	for i := len(keys) - 1; i >= 0 && len(reports) < limit; i-- {
		runID := strings.TrimSuffix(path.Base(keys[i]), ".json")
		report, err := s.Get(ctx, runID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *ingestReportStore) decode(r io.Reader) (*models.IngestReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingest report: %w", err)
	}
	var report models.IngestReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingest report: %w", err)
	}
	return &report, nil
}

func (s *ingestReportStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
