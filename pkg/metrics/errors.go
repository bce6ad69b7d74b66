package metrics

import "errors"

// ErrIncompatibleCollector is returned when a metric name is already taken by
// a collector of another type.
var ErrIncompatibleCollector = errors.New("metrics: metric already registered with incompatible collector")
