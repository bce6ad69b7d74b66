package session

import "time"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TTL is the lifetime of a session, extended on every save
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// CleanupInterval for expired sessions in the memory store (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// RedisKeyPrefix namespaces session keys in Redis
	RedisKeyPrefix string `env:"SESSION_REDIS_KEY_PREFIX" envDefault:"session:"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		TTL:             24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		RedisKeyPrefix:  "session:",
	}
}
