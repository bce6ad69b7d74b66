// Package geoinfo keeps a per-session record of the client's country.
//
// An Annotator compares the client address of each request with the address
// stored in the session. When a new public address appears it asks a
// CountryLookup for the ISO 3166-1 alpha-2 code and stores both under
// KeyIPAddress and KeyCountryCode. When the client can no longer be
// identified both keys are removed. Private and otherwise non-routable
// addresses never trigger a lookup.
//
// Lookups are pluggable:
//
//   - MaxMindLookup reads a GeoIP2/GeoLite2 country database;
//   - Table maps static CIDR blocks, optionally loaded from YAML;
//   - CachedLookup memoizes any other lookup with LRU eviction and a TTL.
//
// Lookup failures are never surfaced to the request; the code becomes
// UnknownCountry.
//
// # Usage
//
//	db, err := geoinfo.OpenMaxMind("/var/lib/GeoLite2-Country.mmdb", log)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	annotator := geoinfo.NewAnnotator(resolver,
//	    geoinfo.NewCachedLookup(db, 10_000, time.Hour),
//	    geoinfo.WithLogger(log),
//	    geoinfo.WithSaver(sessions),
//	)
//
//	handler := sessions.EnsureSession(annotator.Middleware(mux))
//
//	// Later, in a handler
//	sess, _ := session.FromContext(r.Context())
//	ip, country, ok := geoinfo.FromRecord(sess)
package geoinfo
