package geolocators

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

const countryNameLocale = "en"

// MaxMindResolver resolves countries from a local GeoLite2/GeoIP2 database (City or Country edition).
type MaxMindResolver struct {
	reader *geoip2.Reader
}

// NewMaxMindResolver opens the mmdb file at path.
func NewMaxMindResolver(path string) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geo database %q: %w", path, err)
	}
	return &MaxMindResolver{reader: reader}, nil
}

// Resolve returns the English country name. Hostnames, malformed addresses and addresses
// missing from the database resolve to ErrNotFound.
func (r *MaxMindResolver) Resolve(ctx context.Context, ip string) (string, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		metricLookupTotal.WithLabelValues(outcomeNotFound).Inc()
		return "", ErrNotFound
	}

	record, err := r.reader.Country(parsed)
	if err != nil {
		metricLookupTotal.WithLabelValues(outcomeNotFound).Inc()
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	name := record.Country.Names[countryNameLocale]
	if name == "" {
		metricLookupTotal.WithLabelValues(outcomeNotFound).Inc()
		return "", ErrNotFound
	}

	metricLookupTotal.WithLabelValues(outcomeResolved).Inc()
	return name, nil
}

func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}
