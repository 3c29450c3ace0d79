package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ingestormocks "access-analytics/internal/ingestors/mocks"
	"access-analytics/internal/models"
	"access-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRunID = "01JA2B3C4D5E6F7G8H9J0K1M2N"

func TestIngestLogHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		sourceHeader   string
		expectedSource string
	}{
		{name: "explicit source", sourceHeader: "nginx-01/access.log", expectedSource: "nginx-01/access.log"},
		{name: "default source", sourceHeader: "", expectedSource: defaultLogSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
			handler := NewIngestLogHandler(mockIngestionService, 1024)

			req := httptest.NewRequest(http.MethodPost, "/logs", strings.NewReader("line one\nline two\n"))
			if tt.sourceHeader != "" {
				req.Header.Set(headerLogSource, tt.sourceHeader)
			}
			rr := httptest.NewRecorder()

			mockIngestionService.EXPECT().
				IngestLog(gomock.Any(), tt.expectedSource, gomock.Any()).
				DoAndReturn(func(ctx context.Context, source string, r io.Reader) (*models.IngestReport, error) {
					body, err := io.ReadAll(r)
					require.NoError(t, err)
					assert.Equal(t, "line one\nline two\n", string(body))
					return &models.IngestReport{RunID: testRunID, Source: source, LinesRead: 2}, nil
				})

			err := handler.Handle(rr, req)

			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, rr.Code)
			var report models.IngestReport
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
			assert.Equal(t, testRunID, report.RunID)
			assert.Equal(t, tt.expectedSource, report.Source)
			assert.Equal(t, int64(2), report.LinesRead)
		})
	}
}

func TestIngestLogHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestLogHandler(mockIngestionService, 1024)

	expectedErr := svcerrors.NewResourceConflictError("ING_1001", "another bulk-load is in progress", nil)
	mockIngestionService.EXPECT().IngestLog(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expectedErr)

	err := handler.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/logs", strings.NewReader("x")))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1001", svcErr.Code)
}

func TestIngestLogHandler_Handle_BodyTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestLogHandler(mockIngestionService, 16)

	mockIngestionService.EXPECT().
		IngestLog(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, source string, r io.Reader) (*models.IngestReport, error) {
			_, err := io.ReadAll(r)
			return nil, svcerrors.NewInternalError("ING_9001", fmt.Errorf("logReadFailed: %w", err))
		})

	req := httptest.NewRequest(http.MethodPost, "/logs", strings.NewReader(strings.Repeat("a", 64)))
	err := handler.Handle(httptest.NewRecorder(), req)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeRequestBodyTooLarge, svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestGetIngestReportHandler_Handle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	mockIngestionService.EXPECT().GetReport(gomock.Any(), testRunID).
		Return(&models.IngestReport{RunID: testRunID, Committed: 42}, nil)

	router := chi.NewRouter()
	router.Get("/ingestions/{runID}", errorHandlingAdapter(NewGetIngestReportHandler(mockIngestionService)))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ingestions/"+testRunID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var report models.IngestReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, int64(42), report.Committed)
}

func TestListIngestReportsHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		url           string
		expectedLimit int
	}{
		{name: "default limit", url: "/ingestions", expectedLimit: defaultReportLimit},
		{name: "explicit limit", url: "/ingestions?limit=3", expectedLimit: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
			mockIngestionService.EXPECT().ListReports(gomock.Any(), tt.expectedLimit).
				Return([]*models.IngestReport{{RunID: testRunID}}, nil)

			rr := httptest.NewRecorder()
			err := NewListIngestReportsHandler(mockIngestionService).Handle(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), testRunID)
		})
	}
}

func TestListIngestReportsHandler_Handle_InvalidLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	handler := NewListIngestReportsHandler(ingestormocks.NewMockIngestionService(ctrl))

	err := handler.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ingestions?limit=ten", nil))

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidQueryParam, svcErr.Code)
}

func TestQueryHandler_Handle(t *testing.T) {
	t.Parallel()

	handler := NewQueryHandler(func(ctx context.Context) (*models.StatusCodeSummary, error) {
		summary := models.NewEmptyStatusCodeSummary()
		summary.SetCode(404, 2)
		summary.Summary.ClientError = 2
		return summary, nil
	})

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, httptest.NewRequest(http.MethodGet, "/analytics/status-codes", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	var summary models.StatusCodeSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, int64(2), summary.Code(404))
	assert.Equal(t, int64(0), summary.Code(200))
	assert.Equal(t, int64(2), summary.Summary.ClientError)
}

func TestQueryHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	handler := NewQueryHandler(func(ctx context.Context) (*models.VisitorSummary, error) {
		return nil, svcerrors.NewInternalError("AGG_9000", assert.AnError)
	})

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, httptest.NewRequest(http.MethodGet, "/analytics/visitors", nil))

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, rr.Body.Len(), "nothing written on error")
}
