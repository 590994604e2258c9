package router

import (
	"context"
	"sync"
	"time"

	"fuelroute/internal/domain"
	"fuelroute/internal/ports"
)

// RouteCache is the process-local fingerprint -> RouteGeometry cache
// spec §4.2 requires. It is read-through, safe for concurrent access,
// and honours TTL expiry on read; a racing write for the same
// fingerprint is tolerated (last writer wins) rather than deduplicated.
type RouteCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]cacheEntry
}

type cacheEntry struct {
	geom      domain.RouteGeometry
	expiresAt time.Time
}

var _ ports.RouteCache = (*RouteCache)(nil)

// NewRouteCache builds an in-process cache with the given TTL.
func NewRouteCache(ttl time.Duration) *RouteCache {
	return &RouteCache{ttl: ttl, m: make(map[string]cacheEntry)}
}

func (c *RouteCache) Get(_ context.Context, fingerprint string) (domain.RouteGeometry, bool) {
	c.mu.RLock()
	entry, ok := c.m[fingerprint]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return domain.RouteGeometry{}, false
	}
	return entry.geom, true
}

func (c *RouteCache) Put(_ context.Context, fingerprint string, geom domain.RouteGeometry) {
	c.mu.Lock()
	c.m[fingerprint] = cacheEntry{geom: geom, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
