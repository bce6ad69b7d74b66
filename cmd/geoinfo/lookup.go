package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/geoinfo/pkg/geoinfo"
	"github.com/dmitrymomot/geoinfo/pkg/logger"
)

// newCountryLookup picks the MaxMind database, then the YAML table, then an
// empty table. The returned closer releases the database, if any.
func newCountryLookup(cfg appConfig, log *slog.Logger) (geoinfo.CountryLookup, io.Closer, error) {
	var (
		lookup geoinfo.CountryLookup
		closer io.Closer = nopCloser{}
	)

	switch {
	case cfg.GeoIPDatabasePath != "":
		db, err := geoinfo.OpenMaxMind(cfg.GeoIPDatabasePath, log)
		if err != nil {
			return nil, nil, err
		}
		lookup, closer = db, db
		log.Info("using maxmind country database", slog.String("path", cfg.GeoIPDatabasePath))

	case cfg.GeoIPTablePath != "":
		f, err := os.Open(cfg.GeoIPTablePath)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		table, err := geoinfo.LoadTable(f)
		if err != nil {
			return nil, nil, err
		}
		lookup = table
		log.Info("using country table", slog.String("path", cfg.GeoIPTablePath), slog.Int("networks", table.Len()))

	default:
		lookup = geoinfo.NewTable()
		log.Warn("no country source configured, every country will be unknown",
			logger.Component("geoinfo"))
	}

	if cfg.GeoIPCacheSize > 0 {
		lookup = geoinfo.NewCachedLookup(lookup, cfg.GeoIPCacheSize, cfg.GeoIPCacheTTL)
	}
	return lookup, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
