package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"access-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Nil(t, appWriter.svcError)
	assert.Equal(t, "", appWriter.ErrorCode())

	notFound := svcerrors.NewNotFoundError("ING_1002", "ingest report not found", nil)
	appWriter.SetServiceError(notFound)
	assert.Equal(t, notFound, appWriter.svcError)
	assert.Equal(t, "ING_1002", appWriter.ErrorCode())

	internal := svcerrors.NewInternalError("AGG_9000", nil)
	appWriter.SetServiceError(internal)
	assert.Equal(t, "AGG_9000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_TracksStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "created", status: http.StatusCreated, body: `{"runId":"01JA2B3C4D5E6F7G8H9J0K1M2N"}`},
		{name: "not found", status: http.StatusNotFound, body: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)

			appWriter.WriteHeader(tt.status)
			_, _ = appWriter.Write([]byte(tt.body))

			assert.Equal(t, tt.status, appWriter.Status(), "status must not change after Write")
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}
