// Package session provides a small session layer for net/http applications:
// a Session record holding arbitrary key-value data, pluggable Store
// back-ends (in-memory and Redis) and Transport implementations that carry
// the session token in a cookie or a header.
//
// A Manager combines one Store and one Transport. Its EnsureSession
// middleware loads or creates the session and puts it in the request context,
// where downstream code retrieves it with FromContext, mutates it and
// persists it with Manager.Save.
//
// # Usage
//
//	client, _ := redis.Connect(ctx, redisCfg)
//	manager := session.New(
//	    session.WithConfig(cfg),
//	    session.WithStore(session.NewRedisStore(client, cfg.RedisKeyPrefix)),
//	)
//
//	mux.Handle("/", manager.EnsureSession(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := session.FromContext(r.Context())
//	    sess.Set("theme", "dark")
//	    _ = manager.Save(r.Context(), sess)
//	}
//
// # Error Handling
//
//   - ErrSessionNotFound – no session associated with token
//   - ErrSessionExpired  – session has passed its expiry
//   - ErrInvalidSession  – nil session, missing token or corrupt stored value
package session
