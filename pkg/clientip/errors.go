package clientip

import "errors"

// ErrUnpairedConfig reports that only one of the field/index settings was
// provided. Treat it as a warning: the resolver still works with the default
// for the missing half.
var ErrUnpairedConfig = errors.New("clientip: field and index settings should be overridden together")
