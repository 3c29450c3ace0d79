package geolocators

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type timeoutResolver struct {
	next    Resolver
	timeout time.Duration
}

// WithTimeout bounds every lookup of next by timeout. A lookup that does not answer in time
// reports ErrNotFound; its goroutine is left to finish on its own.
func WithTimeout(next Resolver, timeout time.Duration) Resolver {
	return &timeoutResolver{next: next, timeout: timeout}
}

type lookupResult struct {
	country string
	err     error
}

func (r *timeoutResolver) Resolve(ctx context.Context, ip string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan lookupResult, 1)
	go func() {
		country, err := r.next.Resolve(ctx, ip)
		done <- lookupResult{country: country, err: err}
	}()

	select {
	case result := <-done:
		if result.err != nil && !errors.Is(result.err, ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrNotFound, result.err)
		}
		return result.country, result.err
	case <-ctx.Done():
		metricLookupTotal.WithLabelValues(outcomeTimeout).Inc()
		return "", fmt.Errorf("%w: %w", ErrNotFound, ctx.Err())
	}
}
