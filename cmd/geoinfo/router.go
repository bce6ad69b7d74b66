package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/geoinfo/pkg/clientip"
	"github.com/dmitrymomot/geoinfo/pkg/geoinfo"
	"github.com/dmitrymomot/geoinfo/pkg/httpserver"
	"github.com/dmitrymomot/geoinfo/pkg/logger"
	"github.com/dmitrymomot/geoinfo/pkg/session"
)

type routerDeps struct {
	logger    *slog.Logger
	resolver  *clientip.Resolver
	sessions  *session.Manager
	annotator *geoinfo.Annotator
	metrics   http.Handler
	checks    []func(context.Context) error
}

type whereamiResponse struct {
	IP          string `json:"ip"`
	CountryCode string `json:"country_code"`
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(d.logger, d.checks...))
	if d.metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(d.resolver.Middleware)
		r.Use(d.sessions.EnsureSession)
		r.Use(d.annotator.Middleware)

		r.Get("/whereami", whereami(d.logger))
	})

	return r
}

func whereami(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := whereamiResponse{IP: clientip.GetIPFromContext(r.Context())}
		if sess, ok := session.FromContext(r.Context()); ok {
			// Private addresses are never stored, so the session may still hold an older one.
			if ip, code, ok := geoinfo.FromRecord(sess); ok && ip == resp.IP {
				resp.CountryCode = code
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
		}
	}
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
