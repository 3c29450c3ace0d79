package http

import (
	"errors"
	"net/http"

	"access-analytics/internal/ingestors"
	"access-analytics/internal/shared/svcerrors"
)

const codeRequestBodyTooLarge = "HTTP_1000"

type ingestLogHandler struct {
	ingestionService ingestors.IngestionService
	maxBodyBytes     int64
}

func NewIngestLogHandler(ingestionService ingestors.IngestionService, maxBodyBytes int64) AppHttpHandler {
	return &ingestLogHandler{
		ingestionService: ingestionService,
		maxBodyBytes:     maxBodyBytes,
	}
}

// Handle processes POST /logs: the body is a newline-delimited access log, bulk-loaded in one run.
func (h *ingestLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	report, err := h.ingestionService.IngestLog(r.Context(), logSource(r), body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return svcerrors.NewInvalidArgumentError(codeRequestBodyTooLarge, "request body too large", err)
		}
		return err
	}

	writeJSON(w, http.StatusCreated, report)
	return nil
}
