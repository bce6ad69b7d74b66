package geoinfo

import "context"

// UnknownCountry is returned by lookups that have no answer for an address.
const UnknownCountry = ""

// CountryLookup maps an IP address to an ISO 3166-1 alpha-2 country code.
// Implementations return UnknownCountry instead of failing.
type CountryLookup interface {
	CountryCode(ctx context.Context, ip string) string
}

// LookupFunc adapts a plain function to CountryLookup.
type LookupFunc func(ctx context.Context, ip string) string

func (f LookupFunc) CountryCode(ctx context.Context, ip string) string {
	return f(ctx, ip)
}
