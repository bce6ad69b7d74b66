// Package config loads typed configuration structs from the process
// environment.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for tag based parsing. Each configuration type is
// parsed once and cached for the lifetime of the process, so packages can call
// Load from wherever they need their settings without re-reading the
// environment.
//
// # Usage
//
//	type ResolverConfig struct {
//	    Field string `env:"CLIENT_IP_REQUEST_META_FIELD" envDefault:"X-Forwarded-For"`
//	    Index int    `env:"CLIENT_IP_REQUEST_META_INDEX" envDefault:"-1"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cfg ResolverConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
//
// # Testing Helpers
//
// ResetCache drops every cached struct; Reload re-parses a single type after
// the environment has changed.
package config
