// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pharma_backend/internal/feature/forecast/usecase"
)

// CachingForecastRelay decorates an MLRelay with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying relay. Only upstream responses are cached; local
// mock forecasts never pass through here, so the fresh-data-per-request
// behavior of the generator is unaffected.
type CachingForecastRelay struct {
	inner     usecase.MLRelay
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingForecastRelayがMLRelayを実装していることをコンパイル時に検証します。
var _ usecase.MLRelay = (*CachingForecastRelay)(nil)

// NewCachingForecastRelay decorates an MLRelay with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "forecast".
func NewCachingForecastRelay(rdb *redis.Client, ttl time.Duration, inner usecase.MLRelay, namespace string) *CachingForecastRelay {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "forecast"
	}
	return &CachingForecastRelay{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Fetch retrieves a forecast payload, checking cache first then falling back
// to the upstream relay. Upstream failures are never cached.
func (c *CachingForecastRelay) Fetch(ctx context.Context, drug string, days int) ([]byte, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Fetch(ctx, drug, days)
	}

	key := c.cacheKey(drug, days)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		if json.Valid(b) {
			return b, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.Fetch(ctx, drug, days)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()

	return out, nil
}

// cacheKey generates a cache key for a specific query.
// The drug name is lowercased because upstream matching is case-insensitive.
func (c *CachingForecastRelay) cacheKey(drug string, days int) string {
	if drug == "" {
		drug = "all"
	}
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(strings.ToLower(drug)), days)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
