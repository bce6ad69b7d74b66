package main

import (
	"time"

	"github.com/dmitrymomot/geoinfo/pkg/httpserver"
	"github.com/dmitrymomot/geoinfo/pkg/redis"
	"github.com/dmitrymomot/geoinfo/pkg/session"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"geoinfo"`
	LogLevel string `env:"LOG_LEVEL"`

	// GeoIPDatabasePath points at a GeoLite2/GeoIP2 Country mmdb file.
	GeoIPDatabasePath string `env:"GEOIP_DATABASE_PATH"`
	// GeoIPTablePath points at a YAML CIDR table, used when no database is set.
	GeoIPTablePath string        `env:"GEOIP_TABLE_PATH"`
	GeoIPCacheSize int           `env:"GEOIP_CACHE_SIZE" envDefault:"10000"`
	GeoIPCacheTTL  time.Duration `env:"GEOIP_CACHE_TTL" envDefault:"1h"`

	HTTP    httpserver.Config
	Session session.Config
	Redis   redis.Config
}
