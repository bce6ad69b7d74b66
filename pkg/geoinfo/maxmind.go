package geoinfo

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/dmitrymomot/geoinfo/pkg/logger"
)

type countryReader interface {
	Country(ip net.IP) (*geoip2.Country, error)
	Close() error
}

// MaxMindLookup resolves countries from a GeoIP2 or GeoLite2 country
// database (MaxMind or DB-IP mmdb format).
type MaxMindLookup struct {
	reader countryReader
	logger *slog.Logger
}

// OpenMaxMind opens the mmdb file at path. Close the lookup when done.
func OpenMaxMind(path string, log *slog.Logger) (*MaxMindLookup, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, errors.Join(ErrOpenDatabase, err)
	}
	return newMaxMindLookup(reader, log), nil
}

func newMaxMindLookup(reader countryReader, log *slog.Logger) *MaxMindLookup {
	if log == nil {
		log = logger.Discard()
	}
	return &MaxMindLookup{reader: reader, logger: log}
}

// CountryCode returns the ISO code of the registered country for ip, or
// UnknownCountry when the address is malformed, not in the database, or the
// read fails.
func (m *MaxMindLookup) CountryCode(ctx context.Context, ip string) string {
	addr := net.ParseIP(ip)
	if addr == nil {
		return UnknownCountry
	}

	record, err := m.reader.Country(addr)
	if err != nil {
		m.logger.WarnContext(ctx, "country lookup failed", logger.IP(ip), logger.Error(err))
		return UnknownCountry
	}
	if record.Country.IsoCode != "" {
		return record.Country.IsoCode
	}
	return record.RegisteredCountry.IsoCode
}

func (m *MaxMindLookup) Close() error {
	return m.reader.Close()
}
