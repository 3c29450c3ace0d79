package models_test

import (
	"encoding/json"
	"testing"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntry_StatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		expected int
	}{
		{code: 200, expected: 2},
		{code: 304, expected: 3},
		{code: 404, expected: 4},
		{code: 599, expected: 5},
	}

	for _, tt := range tests {
		entry := &models.LogEntry{StatusCode: tt.code}
		assert.Equal(t, tt.expected, entry.StatusClass(), "status %d", tt.code)
	}
}

func TestLogEntry_Validation(t *testing.T) {
	t.Parallel()

	valid := models.LogEntry{IPAddress: "1.2.3.4", Timestamp: "10/Oct/2025:13:55:36 +0000", StatusCode: 200}

	tests := []struct {
		name    string
		mutate  func(e *models.LogEntry)
		wantErr bool
	}{
		{name: "valid", mutate: func(e *models.LogEntry) {}},
		{name: "missing ip", mutate: func(e *models.LogEntry) { e.IPAddress = "" }, wantErr: true},
		{name: "missing timestamp", mutate: func(e *models.LogEntry) { e.Timestamp = "" }, wantErr: true},
		{name: "status below range", mutate: func(e *models.LogEntry) { e.StatusCode = 99 }, wantErr: true},
		{name: "status above range", mutate: func(e *models.LogEntry) { e.StatusCode = 600 }, wantErr: true},
		{name: "negative bytes", mutate: func(e *models.LogEntry) { e.BytesSent = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := valid
			tt.mutate(&entry)
			err := validators.Struct(&entry)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusCodeSummary_EmptyHasEveryWatchedCode(t *testing.T) {
	t.Parallel()

	summary := models.NewEmptyStatusCodeSummary()

	assert.Len(t, summary.IndividualCodes, len(models.WatchedStatusCodes))
	for _, code := range models.WatchedStatusCodes {
		assert.Zero(t, summary.Code(code))
	}

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"404":0`)
	assert.Contains(t, string(data), `"summary":{"ok":0,"redirect":0,"clientError":0,"serverError":0}`)
}

func TestStatusCodeSummary_SetCodeAndClass(t *testing.T) {
	t.Parallel()

	summary := models.NewEmptyStatusCodeSummary()
	summary.SetCode(404, 7)
	for i, rule := range models.StatusClassRules {
		summary.Summary.SetClass(rule.Label, int64(i+1))
	}
	summary.Summary.SetClass("unknown", 99)

	assert.Equal(t, int64(7), summary.Code(404))
	assert.Equal(t, models.StatusClassSummary{OK: 1, Redirect: 2, ClientError: 3, ServerError: 4}, summary.Summary)
}

func TestSecurityAlertSet_Candidates(t *testing.T) {
	t.Parallel()

	set := &models.SecurityAlertSet{Alerts: []models.RuleAlert{
		{Rule: models.RuleBruteForce, StatusCode: 401, Threshold: 5, Candidates: []models.SuspiciousIP{{IP: "1.1.1.1", Count: 6}}},
		{Rule: models.RuleScanning, StatusCode: 404, Threshold: 10, Candidates: []models.SuspiciousIP{}},
	}}

	assert.Equal(t, []models.SuspiciousIP{{IP: "1.1.1.1", Count: 6}}, set.BruteForceCandidates())
	assert.Empty(t, set.ScanningCandidates())
	assert.NotNil(t, set.ScanningCandidates())
	assert.Nil(t, set.Candidates("not_a_rule"))
}

func TestQueryResult_JSON(t *testing.T) {
	t.Parallel()

	success, err := json.Marshal(models.NewQuerySuccess(models.NewEmptyVisitorSummary()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"data":{"totalVisits":0,"uniqueVisitors":0,"botVisits":0,"topPages":[],"topCountries":[],"topBrowsers":[]}}`, string(success))

	failure, err := json.Marshal(models.NewQueryFailure[models.VisitorSummary]("AGG_9000", "internal server error"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"AGG_9000","message":"internal server error"}}`, string(failure))
}

func TestUnparsedCounts_Total(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(6), models.UnparsedCounts{Empty: 1, GrammarMismatch: 2, Invalid: 3}.Total())
}
