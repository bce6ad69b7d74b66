package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	resolutionTotalName = "client_ip_resolution_total"
	warningsTotalName   = "client_ip_resolution_warnings_total"
	annotationTotalName = "geoinfo_annotations_total"
)

// Collector is a Prometheus-backed sink for clientip.Metrics and
// geoinfo.Metrics.
type Collector struct {
	resolutions *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	annotations *prometheus.CounterVec
}

// New creates a Collector and registers its counters on registerer.
//
// If registerer is nil, prometheus.DefaultRegisterer is used. Counters that
// are already registered are reused, so New may be called more than once
// against the same registry.
func New(registerer prometheus.Registerer) (*Collector, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	resolutions, err := registerCounterVec(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: resolutionTotalName,
			Help: "Client IP resolutions by source of the returned address (field, fallback).",
		},
		[]string{"source"},
	), resolutionTotalName)
	if err != nil {
		return nil, err
	}

	warnings, err := registerCounterVec(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: warningsTotalName,
			Help: "Client IP resolution warnings by kind (index_out_of_range, no_address).",
		},
		[]string{"kind"},
	), warningsTotalName)
	if err != nil {
		return nil, err
	}

	annotations, err := registerCounterVec(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: annotationTotalName,
			Help: "Session geo annotations by outcome (unchanged, cleared, updated, skipped_private).",
		},
		[]string{"outcome"},
	), annotationTotalName)
	if err != nil {
		return nil, err
	}

	return &Collector{
		resolutions: resolutions,
		warnings:    warnings,
		annotations: annotations,
	}, nil
}

func registerCounterVec(registerer prometheus.Registerer, collector *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("%w: %q has collector type %T", ErrIncompatibleCollector, name, alreadyRegistered.ExistingCollector)
		}
		return nil, fmt.Errorf("register metric %q: %w", name, err)
	}
	return collector, nil
}

// RecordResolution increments client_ip_resolution_total for source.
func (c *Collector) RecordResolution(source string) {
	c.resolutions.WithLabelValues(source).Inc()
}

// RecordWarning increments client_ip_resolution_warnings_total for kind.
func (c *Collector) RecordWarning(kind string) {
	c.warnings.WithLabelValues(kind).Inc()
}

// RecordAnnotation increments geoinfo_annotations_total for outcome.
func (c *Collector) RecordAnnotation(outcome string) {
	c.annotations.WithLabelValues(outcome).Inc()
}

// Handler serves the metrics in gatherer. Nil means prometheus.DefaultGatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
