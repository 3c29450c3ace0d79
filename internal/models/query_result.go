package models

// QueryError is the client-safe part of a failed query.
type QueryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QueryResult wraps the outcome of one analytics query so that a failure stays
// distinguishable from an empty result when several queries are served together.
type QueryResult[T any] struct {
	OK    bool        `json:"ok"`
	Data  *T          `json:"data,omitempty"`
	Error *QueryError `json:"error,omitempty"`
}

func NewQuerySuccess[T any](data *T) QueryResult[T] {
	return QueryResult[T]{OK: true, Data: data}
}

func NewQueryFailure[T any](code, message string) QueryResult[T] {
	return QueryResult[T]{OK: false, Error: &QueryError{Code: code, Message: message}}
}

// Dashboard bundles the three analytics queries for a presentation layer.
type Dashboard struct {
	Visitors       QueryResult[VisitorSummary]    `json:"visitors"`
	StatusCodes    QueryResult[StatusCodeSummary] `json:"statusCodes"`
	SecurityAlerts QueryResult[SecurityAlertSet]  `json:"securityAlerts"`
}
