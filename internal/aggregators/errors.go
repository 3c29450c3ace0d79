package aggregators

import (
	"fmt"

	"access-analytics/internal/shared/svcerrors"
)

const (
	codeInternalStoreQueryFailed = "AGG_9000"
)

// errInternalStoreQueryFailed returns an error when an aggregation query against the log entry store fails.
func errInternalStoreQueryFailed(query string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreQueryFailed, fmt.Errorf("storeQueryFailed(%s): %w", query, cause))
}
