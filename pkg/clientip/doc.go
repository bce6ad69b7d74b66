// Package clientip determines the IP address of the HTTP client from request
// metadata according to a configurable rule.
//
// The rule has two parts: the metadata field to read (usually
// X-Forwarded-For, or REMOTE_ADDR for servers exposed directly) and an index
// into the comma-separated list stored in that field. Negative indexes count
// from the end, so -1 picks the address appended by the nearest proxy.
//
// When the rule cannot be applied, because the index is out of range or the
// selected element is empty, the resolver emits a warning through its Logger
// and falls back to the TCP peer address, which is always present.
// Resolution never fails a request.
//
// # Usage
//
//	cfg, err := clientip.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := clientip.CheckPairing(os.LookupEnv); err != nil {
//	    slog.Warn("client ip settings", "error", err)
//	}
//
//	resolver := clientip.New(cfg, clientip.WithLogger(slog.Default()))
//
//	// Inside a handler
//	ip := resolver.GetIP(r)
//
//	// As middleware
//	handler := resolver.Middleware(mux)
//	// ... later
//	ip := clientip.GetIPFromContext(r.Context())
//
// # Configuration
//
// Config is populated from CLIENT_IP_REQUEST_META_FIELD and
// CLIENT_IP_REQUEST_META_INDEX. Both should be overridden together, or
// neither; CheckPairing reports a mismatch.
//
// Header fields may be named either way: "X-Forwarded-For" or
// "HTTP_X_FORWARDED_FOR". Request headers that contain an underscore are
// only reachable by their own name, so a client cannot forge the CGI name of
// a proxy header.
package clientip
