package geoinfo

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	ip        string
	code      string
	expiresAt time.Time
}

// CachedLookup memoizes another CountryLookup. Entries expire after ttl and
// the least recently used entry is evicted once capacity is reached. It is
// safe for concurrent use.
type CachedLookup struct {
	next     CountryLookup
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
}

// NewCachedLookup wraps next. The capacity must be positive, otherwise it
// panics. A non-positive ttl keeps entries until they are evicted.
func NewCachedLookup(next CountryLookup, capacity int, ttl time.Duration) *CachedLookup {
	if capacity <= 0 {
		panic("geoinfo: cache capacity must be positive")
	}
	return &CachedLookup{
		next:     next,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// CountryCode returns the cached code for ip or asks the wrapped lookup.
// Unknown results are cached as well.
func (c *CachedLookup) CountryCode(ctx context.Context, ip string) string {
	if code, ok := c.get(ip); ok {
		return code
	}
	code := c.next.CountryCode(ctx, ip)
	c.put(ip, code)
	return code
}

// Len returns the number of cached entries, including expired ones not yet
// evicted.
func (c *CachedLookup) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Purge drops every entry.
func (c *CachedLookup) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

func (c *CachedLookup) get(ip string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[ip]
	if !ok {
		return "", false
	}
	entry := elem.Value.(*cacheEntry)
	if c.ttl > 0 && !c.now().Before(entry.expiresAt) {
		c.removeElement(elem)
		return "", false
	}
	c.eviction.MoveToFront(elem)
	return entry.code, true
}

func (c *CachedLookup) put(ip, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if elem, ok := c.items[ip]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.code = code
		entry.expiresAt = expiresAt
		c.eviction.MoveToFront(elem)
		return
	}

	c.items[ip] = c.eviction.PushFront(&cacheEntry{ip: ip, code: code, expiresAt: expiresAt})
	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Must be called with lock held.
func (c *CachedLookup) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).ip)
}
