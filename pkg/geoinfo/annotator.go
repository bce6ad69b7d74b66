package geoinfo

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/geoinfo/pkg/clientip"
	"github.com/dmitrymomot/geoinfo/pkg/logger"
)

// Session keys written by the Annotator. Both are present or both absent.
const (
	KeyIPAddress   = "ip_address"
	KeyCountryCode = "country_code"
)

// Outcome describes what Annotate did to the session record.
type Outcome string

const (
	// OutcomeUnchanged means the stored address already matched.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeCleared means the client could no longer be identified and both keys were removed.
	OutcomeCleared Outcome = "cleared"
	// OutcomeUpdated means a new public address was looked up and stored.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkippedPrivate means the address changed but is not public, so nothing was stored.
	OutcomeSkippedPrivate Outcome = "skipped_private"
)

// Changed reports whether the record was mutated.
func (o Outcome) Changed() bool {
	return o == OutcomeCleared || o == OutcomeUpdated
}

// Record is the session state the Annotator reads and writes.
// *session.Session satisfies it.
type Record interface {
	GetString(key string) (string, bool)
	Set(key string, value any)
	Delete(key string)
}

// IPResolver resolves the client address of a request.
// *clientip.Resolver satisfies it.
type IPResolver interface {
	GetIP(r *http.Request) string
}

// Metrics records annotation outcomes.
type Metrics interface {
	RecordAnnotation(outcome string)
}

type noopMetrics struct{}

func (noopMetrics) RecordAnnotation(string) {}

// Annotator stores the client's country code in the session, keyed to the
// address it was derived from.
type Annotator struct {
	resolver IPResolver
	lookup   CountryLookup
	logger   *slog.Logger
	metrics  Metrics
	saver    Saver
}

// AnnotatorOption configures an Annotator.
type AnnotatorOption func(*Annotator)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) AnnotatorOption {
	return func(a *Annotator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics sets the metrics sink. Nil is ignored.
func WithMetrics(m Metrics) AnnotatorOption {
	return func(a *Annotator) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithSaver makes Middleware persist the session after a change.
func WithSaver(s Saver) AnnotatorOption {
	return func(a *Annotator) { a.saver = s }
}

// NewAnnotator returns an Annotator using resolver and lookup.
func NewAnnotator(resolver IPResolver, lookup CountryLookup, opts ...AnnotatorOption) *Annotator {
	a := &Annotator{
		resolver: resolver,
		lookup:   lookup,
		logger:   logger.Discard(),
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate updates rec for the client address newIP:
//
//   - newIP empty while an address is stored: both keys are removed;
//   - newIP differs from the stored address and is public: the country is
//     looked up and both keys are stored;
//   - otherwise rec is left alone.
func (a *Annotator) Annotate(ctx context.Context, newIP string, rec Record) Outcome {
	oldIP, _ := rec.GetString(KeyIPAddress)

	outcome := OutcomeUnchanged
	switch {
	case newIP == "" && oldIP != "":
		rec.Delete(KeyIPAddress)
		rec.Delete(KeyCountryCode)
		outcome = OutcomeCleared
	case newIP != oldIP && IsPublicIP(newIP):
		code := a.lookup.CountryCode(ctx, newIP)
		rec.Set(KeyCountryCode, code)
		rec.Set(KeyIPAddress, newIP)
		a.logger.DebugContext(ctx, "country code for IP is set", logger.IP(newIP), logger.CountryCode(code))
		outcome = OutcomeUpdated
	case newIP != oldIP:
		outcome = OutcomeSkippedPrivate
	}

	a.metrics.RecordAnnotation(string(outcome))
	return outcome
}

// AnnotateRequest annotates rec with the client address of r. An address
// already stored in the context by clientip.Resolver.Middleware is reused.
func (a *Annotator) AnnotateRequest(r *http.Request, rec Record) Outcome {
	ip, ok := clientip.LookupIPFromContext(r.Context())
	if !ok {
		ip = a.resolver.GetIP(r)
	}
	return a.Annotate(r.Context(), ip, rec)
}

// FromRecord returns the stored address and country code.
func FromRecord(rec Record) (ip, countryCode string, ok bool) {
	ip, hasIP := rec.GetString(KeyIPAddress)
	countryCode, hasCode := rec.GetString(KeyCountryCode)
	return ip, countryCode, hasIP && hasCode
}
