package clientip

import (
	"github.com/dmitrymomot/geoinfo/pkg/config"
)

// Environment variable names for the resolution rule.
const (
	EnvField = "CLIENT_IP_REQUEST_META_FIELD"
	EnvIndex = "CLIENT_IP_REQUEST_META_INDEX"
)

// Config selects which metadata field holds the client address and which
// element of its comma-separated list to use.
//
// Most deployments behind a single reverse proxy want X-Forwarded-For with
// index -1. A server exposed directly to the internet should use REMOTE_ADDR
// with index -1 (or 0, which is the same for a single address). Index 0 of
// X-Forwarded-For is client controlled and can be spoofed.
type Config struct {
	// Field is the metadata key to read, a header name or RemoteAddrField.
	Field string `env:"CLIENT_IP_REQUEST_META_FIELD" envDefault:"X-Forwarded-For"`
	// Index into the list. Negative values count from the end.
	Index int `env:"CLIENT_IP_REQUEST_META_INDEX" envDefault:"-1"`
}

// DefaultConfig returns the default resolution rule: the last
// X-Forwarded-For entry.
func DefaultConfig() Config {
	return Config{
		Field: "X-Forwarded-For",
		Index: -1,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// CheckPairing reports ErrUnpairedConfig when exactly one of EnvField and
// EnvIndex is set. Pass os.LookupEnv in production code.
func CheckPairing(lookup func(string) (string, bool)) error {
	_, hasField := lookup(EnvField)
	_, hasIndex := lookup(EnvIndex)
	if hasField != hasIndex {
		return ErrUnpairedConfig
	}
	return nil
}
