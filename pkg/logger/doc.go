// Package logger builds *slog.Logger instances with a small set of functional
// options and injects request-scoped values from context.Context into every
// record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "geoinfo"),
//	    logger.WithContextExtractors(clientip.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "country resolved",
//	    logger.IP(ip),
//	    logger.CountryCode(code),
//	)
//
// Attribute helpers such as Error and RequestID return an empty slog.Attr
// for nil or empty input, so they can be passed unconditionally.
package logger
