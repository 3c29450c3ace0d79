package detectors

import (
	"fmt"

	"access-analytics/internal/shared/svcerrors"
)

const (
	codeInternalDetectionQueryFailed = "DET_9000"
)

// errInternalDetectionQueryFailed returns an error when a rule query against the log entry store fails.
func errInternalDetectionQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDetectionQueryFailed, fmt.Errorf("detectionQueryFailed: %w", cause))
}
