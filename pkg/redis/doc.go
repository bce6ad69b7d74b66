// Package redis connects to a Redis server for session storage.
//
// Connect retries the initial ping according to Config, and Healthcheck wraps
// a client into a readiness probe. Config is populated from REDIS_* variables;
// an empty REDIS_URL means Redis is not used and callers fall back to the
// in-memory session store.
//
//	var cfg redis.Config
//	_ = config.Load(&cfg)
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    ...
//	}
package redis
