package clientip

import (
	"context"
	"log/slog"
)

type clientIPContextKey struct{}

// SetIPToContext stores client IP in context
func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// GetIPFromContext retrieves client IP from context
func GetIPFromContext(ctx context.Context) string {
	ip, _ := LookupIPFromContext(ctx)
	return ip
}

// LookupIPFromContext reports whether an IP was stored in ctx, which lets
// callers tell "not resolved yet" apart from "resolved to empty".
func LookupIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}

// LoggerExtractor returns a logger.ContextExtractor that adds the resolved
// client IP to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := GetIPFromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
