package models

import "strconv"

// WatchedStatusCodes are reported individually in StatusCodeSummary.IndividualCodes.
var WatchedStatusCodes = []int{200, 301, 302, 304, 400, 401, 403, 404, 500}

// StatusClassRule maps a hundred-range of status codes to a summary bucket.
type StatusClassRule struct {
	Class int
	Label string
}

// StatusClassRules is the ordered table behind StatusClassSummary.
var StatusClassRules = []StatusClassRule{
	{Class: 2, Label: "ok"},
	{Class: 3, Label: "redirect"},
	{Class: 4, Label: "client_error"},
	{Class: 5, Label: "server_error"},
}

// StatusCodeSummary is the status code distribution over every committed log entry.
//
// Example JSON:
//
//	{
//	  "individualCodes": {"200": 2, "301": 1, "302": 0, "304": 0, "400": 0, "401": 0, "403": 0, "404": 2, "500": 1},
//	  "summary": {"ok": 2, "redirect": 1, "clientError": 2, "serverError": 1}
//	}
//
// Class totals count every entry in the hundred-range, including codes outside the watch list.
type StatusCodeSummary struct {
	IndividualCodes map[string]int64   `json:"individualCodes"`
	Summary         StatusClassSummary `json:"summary"`
}

type StatusClassSummary struct {
	OK          int64 `json:"ok"`
	Redirect    int64 `json:"redirect"`
	ClientError int64 `json:"clientError"`
	ServerError int64 `json:"serverError"`
}

// NewEmptyStatusCodeSummary returns a summary with every watched code present and zeroed.
func NewEmptyStatusCodeSummary() *StatusCodeSummary {
	codes := make(map[string]int64, len(WatchedStatusCodes))
	for _, code := range WatchedStatusCodes {
		codes[strconv.Itoa(code)] = 0
	}
	return &StatusCodeSummary{IndividualCodes: codes}
}

// SetCode records the count of a watched status code.
func (s *StatusCodeSummary) SetCode(code int, count int64) {
	s.IndividualCodes[strconv.Itoa(code)] = count
}

// Code returns the recorded count of a status code.
func (s *StatusCodeSummary) Code(code int) int64 {
	return s.IndividualCodes[strconv.Itoa(code)]
}

// SetClass records the total of a status class label from StatusClassRules.
func (s *StatusClassSummary) SetClass(label string, count int64) {
	switch label {
	case "ok":
		s.OK = count
	case "redirect":
		s.Redirect = count
	case "client_error":
		s.ClientError = count
	case "server_error":
		s.ServerError = count
	}
}
