package geoinfo

import (
	"log/slog"
	"time"
)

// SetClock replaces the cache's time source.
func (c *CachedLookup) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type CountryReader = countryReader

func NewMaxMindLookupWithReader(reader CountryReader, log *slog.Logger) *MaxMindLookup {
	return newMaxMindLookup(reader, log)
}
