package geoinfo

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/geoinfo/pkg/logger"
	"github.com/dmitrymomot/geoinfo/pkg/session"
)

// Saver persists a session. *session.Manager satisfies it.
type Saver interface {
	Save(ctx context.Context, s *session.Session) error
}

// Middleware annotates the session found in the request context. It must run
// after session.Manager.EnsureSession; requests without a session pass
// through untouched. Save failures are logged and never fail the request.
func (a *Annotator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if outcome := a.AnnotateRequest(r, sess); outcome.Changed() && a.saver != nil {
			if err := a.saver.Save(r.Context(), sess); err != nil {
				a.logger.ErrorContext(r.Context(), "failed to save session geo info",
					logger.Error(err),
					slog.String("outcome", string(outcome)),
				)
			}
		}

		next.ServeHTTP(w, r)
	})
}
