// Package metrics exposes client IP resolution and geo annotation counters to
// Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, err := metrics.New(reg)
//	if err != nil {
//	    return err
//	}
//	resolver := clientip.New(cfg, clientip.WithMetrics(collector))
//	annotator := geoinfo.NewAnnotator(resolver, lookup, geoinfo.WithMetrics(collector))
//	mux.Handle("/metrics", metrics.Handler(reg))
package metrics
