package http

import (
	"net/http"
	"strconv"

	"access-analytics/internal/ingestors"
	"access-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
)

const (
	paramRunID = "runID"
	queryLimit = "limit"

	defaultReportLimit = 20

	codeInvalidQueryParam = "HTTP_1001"
)

type getIngestReportHandler struct {
	ingestionService ingestors.IngestionService
}

func NewGetIngestReportHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &getIngestReportHandler{ingestionService: ingestionService}
}

// Handle processes GET /ingestions/{runID}.
func (h *getIngestReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.ingestionService.GetReport(r.Context(), chi.URLParam(r, paramRunID))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

type listIngestReportsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewListIngestReportsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &listIngestReportsHandler{ingestionService: ingestionService}
}

// Handle processes GET /ingestions?limit=N, newest run first.
func (h *listIngestReportsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	limit := defaultReportLimit
	if raw := r.URL.Query().Get(queryLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, "limit must be an integer", err)
		}
		limit = parsed
	}

	reports, err := h.ingestionService.ListReports(r.Context(), limit)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, reports)
	return nil
}
