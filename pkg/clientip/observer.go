package clientip

import "context"

// Logger receives the resolver's diagnostic warnings.
//
// The signature mirrors slog's WarnContext, so *slog.Logger can be used
// directly.
type Logger interface {
	WarnContext(ctx context.Context, msg string, args ...any)
}

// Metrics records resolution outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	// RecordResolution is called once per Resolve with the source of the
	// returned address: SourceField or SourceFallback.
	RecordResolution(source string)
	// RecordWarning is called with WarningIndexOutOfRange or WarningNoAddress.
	RecordWarning(kind string)
}

type noopLogger struct{}

func (noopLogger) WarnContext(context.Context, string, ...any) {}

type noopMetrics struct{}

func (noopMetrics) RecordResolution(string) {}

func (noopMetrics) RecordWarning(string) {}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the warning sink. Nil is ignored.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics sink. Nil is ignored.
func WithMetrics(m Metrics) Option {
	return func(r *Resolver) {
		if m != nil {
			r.metrics = m
		}
	}
}
