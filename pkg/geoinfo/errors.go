package geoinfo

import "errors"

var (
	// ErrOpenDatabase is returned when a MaxMind database cannot be opened.
	ErrOpenDatabase = errors.New("geoinfo: failed to open country database")

	// ErrInvalidTableEntry is returned for a country table entry with a bad
	// CIDR or country code.
	ErrInvalidTableEntry = errors.New("geoinfo: invalid country table entry")

	// ErrParseTable is returned when a country table document cannot be decoded.
	ErrParseTable = errors.New("geoinfo: failed to parse country table")
)
