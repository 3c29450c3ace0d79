package stores

import "errors"

var (
	ErrStoreUnavailable         = errors.New("log entry store unavailable")
	ErrIngestReportAlreadyExist = errors.New("ingest report already exists")
	ErrIngestReportNotFound     = errors.New("ingest report not found")
	ErrUnknownField             = errors.New("unknown log entry field")
)
