package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *configs.Config {
	dir := t.TempDir()
	return &configs.Config{
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      10,
			IdleTimeout:       60,
			MaxBodyBytes:      1 << 20,
		},
		Log:         configs.LogConfig{Level: "error"},
		FileStorage: configs.FileStorageConfig{RootDir: filepath.Join(dir, "file-storage")},
		Store:       configs.StoreConfig{Path: filepath.Join(dir, "db", "log_data.db"), BatchSize: 2},
		Ingestion:   configs.IngestionConfig{ParseWorkers: 2, MaxLineBytes: 4096},
		Geo:         configs.GeoConfig{LookupTimeoutMs: 50, LookupWorkers: 2},
	}
}

const accessLog = `1.1.1.1 - - [10/Oct/2025:13:55:36 +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/8.0"
1.1.1.1 - - [10/Oct/2025:13:55:37 +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/8.0"
1.1.1.1 - - [10/Oct/2025:13:55:38 +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/8.0"
1.1.1.1 - - [10/Oct/2025:13:55:39 +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/8.0"
1.1.1.1 - - [10/Oct/2025:13:55:40 +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/8.0"
1.1.1.1 - - [10/Oct/2025:13:55:41 +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/8.0"
2.2.2.2 - - [10/Oct/2025:13:55:42 +0000] "GET / HTTP/1.1" 200 512 "-" "curl/8.0"
not a log line
`

func TestApp_IngestThenQueryOverHTTP(t *testing.T) {
	app, err := New(testConfig(t), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	report, err := app.Ingest(context.Background(), "fixture.log", strings.NewReader(accessLog))
	require.NoError(t, err)
	assert.Equal(t, int64(8), report.LinesRead)
	assert.Equal(t, int64(7), report.Committed)
	assert.Equal(t, int64(4), report.BatchesCommitted)
	assert.Equal(t, int64(1), report.Unparsed.GrammarMismatch)

	rr := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analytics/security-alerts", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var alerts models.SecurityAlertSet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &alerts))
	assert.Equal(t, []models.SuspiciousIP{{IP: "1.1.1.1", Count: 6}}, alerts.BruteForceCandidates())

	rr = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ingestions/"+report.RunID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"source":"fixture.log"`)

	rr = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analytics/visitors", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var visitors models.VisitorSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &visitors))
	assert.Equal(t, int64(7), visitors.TotalVisits)
	assert.Equal(t, int64(2), visitors.UniqueVisitors)
	assert.Empty(t, visitors.TopCountries, "no geo database configured")
}

func TestApp_UnreadableGeoDatabaseIsNotFatal(t *testing.T) {
	config := testConfig(t)
	config.Geo.DatabasePath = filepath.Join(t.TempDir(), "missing.mmdb")

	var logs bytes.Buffer
	config.Log.Level = "warn"
	app, err := New(config, &logs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.geoCloser)
	assert.Contains(t, logs.String(), "country lookups disabled")
}

func TestNew_InvalidLogLevel(t *testing.T) {
	config := testConfig(t)
	config.Log.Level = "loud"

	app, err := New(config, io.Discard)
	assert.Nil(t, app)
	assert.ErrorContains(t, err, "failed to initialize logger")
}

func TestNew_StoreUnavailable(t *testing.T) {
	config := testConfig(t)
	config.Store.Path = t.TempDir()

	app, err := New(config, io.Discard)
	assert.Nil(t, app)
	assert.ErrorContains(t, err, "failed to initialize log entry store")
}
