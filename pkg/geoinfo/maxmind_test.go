package geoinfo_test

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"testing"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoinfo/pkg/geoinfo"
)

type fakeReader struct {
	records map[string]*geoip2.Country
	err     error
	closed  bool
}

func (r *fakeReader) Country(ip net.IP) (*geoip2.Country, error) {
	if r.err != nil {
		return nil, r.err
	}
	if rec, ok := r.records[ip.String()]; ok {
		return rec, nil
	}
	return &geoip2.Country{}, nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func countryRecord(country, registered string) *geoip2.Country {
	rec := &geoip2.Country{}
	rec.Country.IsoCode = country
	rec.RegisteredCountry.IsoCode = registered
	return rec
}

func TestMaxMindLookup(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{records: map[string]*geoip2.Country{
		"81.2.69.160":          countryRecord("GB", "GB"),
		"2001:4860:4860::8888": countryRecord("US", "US"),
		"5.6.7.8":              countryRecord("", "DE"),
	}}
	lookup := geoinfo.NewMaxMindLookupWithReader(reader, nil)

	ctx := context.Background()
	assert.Equal(t, "GB", lookup.CountryCode(ctx, "81.2.69.160"))
	assert.Equal(t, "US", lookup.CountryCode(ctx, "2001:4860:4860::8888"))
	assert.Equal(t, "DE", lookup.CountryCode(ctx, "5.6.7.8"))
	assert.Equal(t, geoinfo.UnknownCountry, lookup.CountryCode(ctx, "9.9.9.9"))
	assert.Equal(t, geoinfo.UnknownCountry, lookup.CountryCode(ctx, "not-an-ip"))

	require.NoError(t, lookup.Close())
	assert.True(t, reader.closed)
}

func TestMaxMindLookup_ReadError(t *testing.T) {
	t.Parallel()

	lookup := geoinfo.NewMaxMindLookupWithReader(&fakeReader{err: errors.New("corrupt")}, nil)
	assert.Equal(t, geoinfo.UnknownCountry, lookup.CountryCode(context.Background(), "8.8.8.8"))
}

func TestOpenMaxMind_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := geoinfo.OpenMaxMind(filepath.Join(t.TempDir(), "missing.mmdb"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, geoinfo.ErrOpenDatabase)
}
