package router

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"fuelroute/internal/domain"
	"fuelroute/internal/ports"
)

// RedisRouteCache is an optional, horizontally-shareable backing for the
// router's fingerprint cache, implementing the same ports.RouteCache
// contract as the default in-process RouteCache. It exists for
// deployments that run more than one server process behind a load
// balancer and want cache hits to carry across processes; the spec's
// process-local cache (RouteCache) remains the default wiring.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

var _ ports.RouteCache = (*RedisRouteCache)(nil)

// NewRedisRouteCache builds a Redis-backed cache against an existing
// client. Keys are namespaced under "fuelroute:route:".
func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

func (c *RedisRouteCache) key(fingerprint string) string {
	return fmt.Sprintf("fuelroute:route:%s", fingerprint)
}

func (c *RedisRouteCache) Get(ctx context.Context, fingerprint string) (domain.RouteGeometry, bool) {
	raw, err := c.client.Get(ctx, c.key(fingerprint)).Bytes()
	if err != nil {
		c.misses.Add(1)
		return domain.RouteGeometry{}, false
	}

	var geom domain.RouteGeometry
	if err := json.Unmarshal(raw, &geom); err != nil {
		c.misses.Add(1)
		return domain.RouteGeometry{}, false
	}

	c.hits.Add(1)
	return geom, true
}

func (c *RedisRouteCache) Put(ctx context.Context, fingerprint string, geom domain.RouteGeometry) {
	raw, err := json.Marshal(geom)
	if err != nil {
		return
	}
	// Best-effort write: a failed cache write should never fail the
	// planning request that produced the value being cached.
	c.client.Set(ctx, c.key(fingerprint), raw, c.ttl)
}

// Stats returns cumulative hit/miss counts for observability.
func (c *RedisRouteCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
