package ingestors

import (
	"fmt"

	"access-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed     = "ING_1000"
	codeBulkLoadInProgress   = "ING_1001"
	codeIngestReportNotFound = "ING_1002"

	codeInternalLogEntryStoreFailed     = "ING_9000"
	codeInternalLogReadFailed           = "ING_9001"
	codeInternalIngestReportStoreFailed = "ING_9002"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBulkLoadInProgress returns an error when another bulk-load holds the writer.
func errBulkLoadInProgress() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBulkLoadInProgress, "another bulk-load is in progress", nil)
}

func errIngestReportNotFound(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeIngestReportNotFound, fmt.Sprintf("ingest report %q not found", runID), cause)
}

// errInternalLogEntryStoreFailed returns an error when committing a batch fails.
func errInternalLogEntryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogEntryStoreFailed, fmt.Errorf("logEntryStoreFailed: %w", cause))
}

// errInternalLogReadFailed returns an error when the log stream breaks or the run is cancelled.
func errInternalLogReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogReadFailed, fmt.Errorf("logReadFailed: %w", cause))
}

// errInternalIngestReportStoreFailed returns an error when an ingest report store operation fails.
func errInternalIngestReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalIngestReportStoreFailed, fmt.Errorf("ingestReportStoreFailed: %w", cause))
}
