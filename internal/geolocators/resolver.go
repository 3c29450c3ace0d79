package geolocators

import (
	"context"
	"errors"
)

// ErrNotFound is the only failure a caller of Resolver needs to handle: every lookup error,
// timeout or missing database is reported as ErrNotFound.
var ErrNotFound = errors.New("country not found for ip")

// Resolver maps an IP address to a country name.
//
//go:generate mockgen -source=resolver.go -destination=./mocks/resolver_mock.go -package=mocks
type Resolver interface {
	Resolve(ctx context.Context, ip string) (string, error)
}

// NopResolver is used when no geo database is configured; it resolves nothing.
type NopResolver struct{}

func NewNopResolver() NopResolver {
	return NopResolver{}
}

func (NopResolver) Resolve(ctx context.Context, ip string) (string, error) {
	metricLookupTotal.WithLabelValues(outcomeDisabled).Inc()
	return "", ErrNotFound
}
