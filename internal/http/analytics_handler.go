package http

import (
	"context"
	"net/http"
)

// queryHandler serves the result of one read-only analytics query as JSON.
type queryHandler[T any] struct {
	query func(ctx context.Context) (*T, error)
}

func NewQueryHandler[T any](query func(ctx context.Context) (*T, error)) AppHttpHandler {
	return &queryHandler[T]{query: query}
}

func (h *queryHandler[T]) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.query(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, result)
	return nil
}
