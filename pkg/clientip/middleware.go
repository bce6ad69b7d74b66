package clientip

import "net/http"

// Middleware resolves the client IP once per request and stores it in the
// request context for downstream handlers.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := r.GetIP(req)
		next.ServeHTTP(w, req.WithContext(SetIPToContext(req.Context(), ip)))
	})
}
