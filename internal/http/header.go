package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerLogSource   = "x-log-source"
)

const (
	contentTypeJSON = "application/json"

	// defaultLogSource names uploads that do not set x-log-source.
	defaultLogSource = "http-upload"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func logSource(r *http.Request) string {
	if source := strings.TrimSpace(r.Header.Get(headerLogSource)); source != "" {
		return source
	}
	return defaultLogSource
}
