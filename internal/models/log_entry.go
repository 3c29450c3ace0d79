package models

// LogEntry is one access-log line in structured form. Entries are created by the line parser,
// committed by the log entry store and never modified afterwards; ID is zero until the store
// assigns it.
type LogEntry struct {
	ID         int64  `json:"id"`
	IPAddress  string `json:"ipAddress" validate:"required"`
	Timestamp  string `json:"timestamp" validate:"required"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	StatusCode int    `json:"statusCode" validate:"min=100,max=599"`
	BytesSent  int64  `json:"bytesSent" validate:"min=0"`
	Referer    string `json:"referer"`
	UserAgent  string `json:"userAgent"`
}

// StatusClass returns the hundred-range of the status code, e.g. 4 for 404.
func (e *LogEntry) StatusClass() int {
	return e.StatusCode / 100
}
