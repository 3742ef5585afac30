// Package query owns result caching and request ordering for the dashboard.
// Results are keyed by the full parameter set that produced them; re-fetch on
// parameter change is the only invalidation rule.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Prometheus metrics
var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtside_query_cache_hits_total",
		Help: "Total query cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtside_query_cache_misses_total",
		Help: "Total query cache misses",
	})

	cacheShared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtside_query_flights_shared_total",
		Help: "Total fetches that piggybacked on an identical in-flight request",
	})
)

// Cache is a cache-aside layer over Redis with in-process deduplication:
// concurrent fetches for the same key share one upstream flight. A nil Redis
// client degrades to dedup-only pass-through, and Redis failures are logged
// and treated as misses, never surfaced to the caller.
type Cache struct {
	rdb    *redis.Client
	logger *zap.SugaredLogger
	group  singleflight.Group
}

func NewCache(rdb *redis.Client, logger *zap.SugaredLogger) *Cache {
	return &Cache{rdb: rdb, logger: logger}
}

// Fetch resolves key into dest. On a cache hit the stored JSON is decoded
// into dest; on a miss fill runs (once per key across concurrent callers),
// its result is stored under key with the given ttl, and dest receives it.
// dest must be a pointer.
func (c *Cache) Fetch(ctx context.Context, key string, ttl time.Duration, dest any, fill func(ctx context.Context) (any, error)) error {
	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			cacheHits.Inc()
			if err := json.Unmarshal(data, dest); err == nil {
				return nil
			}
			// A corrupt entry falls through to a refetch.
			c.logger.Warnw("Dropping undecodable cache entry", "key", key)
			c.rdb.Del(ctx, key)
		case err != redis.Nil:
			c.logger.Warnw("Cache read failed, passing through", "key", key, "error", err)
		}
	}
	cacheMisses.Inc()

	data, err, shared := c.group.Do(key, func() (any, error) {
		v, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		if c.rdb != nil && ttl > 0 {
			if err := c.rdb.Set(ctx, key, encoded, ttl).Err(); err != nil {
				c.logger.Warnw("Cache write failed", "key", key, "error", err)
			}
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}
	if shared {
		cacheShared.Inc()
	}
	return json.Unmarshal(data.([]byte), dest)
}

// Invalidate drops a key. Used after saves so histories refetch fresh data.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnw("Cache invalidation failed", "keys", keys, "error", err)
	}
}

// Ping reports Redis reachability. A nil client is healthy pass-through.
func (c *Cache) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
