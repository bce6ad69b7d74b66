package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/geoinfo/pkg/clientip"
	"github.com/dmitrymomot/geoinfo/pkg/config"
	"github.com/dmitrymomot/geoinfo/pkg/geoinfo"
	"github.com/dmitrymomot/geoinfo/pkg/httpserver"
	"github.com/dmitrymomot/geoinfo/pkg/logger"
	"github.com/dmitrymomot/geoinfo/pkg/metrics"
	"github.com/dmitrymomot/geoinfo/pkg/redis"
	"github.com/dmitrymomot/geoinfo/pkg/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("geoinfo exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestIDExtractor, clientip.LoggerExtractor()),
	}
	if level, ok := parseLevel(cfg.LogLevel); ok {
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ipCfg, err := clientip.LoadConfig()
	if err != nil {
		return err
	}
	if err := clientip.CheckPairing(os.LookupEnv); err != nil {
		log.Warn("client IP settings are not paired, check both are set", logger.Error(err))
	}

	registry := prometheus.NewRegistry()
	collector, err := metrics.New(registry)
	if err != nil {
		return err
	}

	resolver := clientip.New(ipCfg,
		clientip.WithLogger(log.With(logger.Component("clientip"))),
		clientip.WithMetrics(collector),
	)

	lookup, closer, err := newCountryLookup(cfg, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	var checks []func(context.Context) error
	var store session.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		store = session.NewRedisStore(client, cfg.Session.RedisKeyPrefix)
		checks = append(checks, redis.Healthcheck(client))
	} else {
		memory := session.NewMemoryStore(cfg.Session.CleanupInterval)
		defer memory.Close()
		store = memory
	}
	sessions := session.New(session.WithConfig(cfg.Session), session.WithStore(store))

	annotator := geoinfo.NewAnnotator(resolver, lookup,
		geoinfo.WithLogger(log.With(logger.Component("geoinfo"))),
		geoinfo.WithMetrics(collector),
		geoinfo.WithSaver(sessions),
	)

	router := newRouter(routerDeps{
		logger:    log,
		resolver:  resolver,
		sessions:  sessions,
		annotator: annotator,
		metrics:   metrics.Handler(registry),
		checks:    checks,
	})

	log.Info("starting geoinfo",
		slog.String("client_ip_field", ipCfg.Field),
		slog.Int("client_ip_index", ipCfg.Index),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)
	return httpserver.New(cfg.HTTP, log).Run(ctx, router)
}

func parseLevel(s string) (slog.Level, bool) {
	if s == "" {
		return 0, false
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, false
	}
	return level, true
}
