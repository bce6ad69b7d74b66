package clientip

import (
	"context"
	"net/http"
	"strings"
)

// Sources reported to Metrics.RecordResolution.
const (
	SourceField    = "field"
	SourceFallback = "fallback"
)

// Warning kinds reported to Metrics.RecordWarning.
const (
	WarningIndexOutOfRange = "index_out_of_range"
	WarningNoAddress       = "no_address"
)

// Warning messages passed to Logger.WarnContext.
const (
	WarnIndexOutOfRange = "configured index into client IP address field is out of range"
	WarnNoAddress       = "client IP address settings did not find an IP"
)

// Resolver extracts the client address from request metadata according to
// a Config. It is immutable and safe for concurrent use.
type Resolver struct {
	cfg     Config
	logger  Logger
	metrics Metrics
}

// New returns a Resolver for cfg.
func New(cfg Config, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:     cfg,
		logger:  noopLogger{},
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the resolution rule in use.
func (r *Resolver) Config() Config {
	return r.cfg
}

// GetIP resolves the client address of an HTTP request.
func (r *Resolver) GetIP(req *http.Request) string {
	return r.Resolve(req.Context(), MetaFromRequest(req))
}

// Resolve returns the configured element of the comma-separated list stored
// under the configured field. When the index is out of range, or the element
// is empty, it emits a warning and returns meta[RemoteAddrField] instead.
// It never fails.
func (r *Resolver) Resolve(ctx context.Context, meta Meta) string {
	field, index := r.cfg.Field, r.cfg.Index

	parts := strings.Split(meta.Get(field), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var candidate string
	if pos, ok := position(index, len(parts)); ok {
		candidate = parts[pos]
		if candidate == "" {
			r.logger.WarnContext(ctx, WarnNoAddress,
				"field", field,
				"index", index,
			)
			r.metrics.RecordWarning(WarningNoAddress)
		}
	} else {
		r.logger.WarnContext(ctx, WarnIndexOutOfRange,
			"field", field,
			"index", index,
			"length", len(parts),
		)
		r.metrics.RecordWarning(WarningIndexOutOfRange)
	}

	if candidate != "" {
		r.metrics.RecordResolution(SourceField)
		return candidate
	}

	r.metrics.RecordResolution(SourceFallback)
	return meta[RemoteAddrField]
}

// position maps a possibly negative index onto [0, length).
func position(index, length int) (int, bool) {
	if index < 0 {
		index += length
	}
	if index < 0 || index >= length {
		return 0, false
	}
	return index, true
}
