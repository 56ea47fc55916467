// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"weather_app/internal/feature/weather/usecase"
)

// CachingWeatherRepository decorates a WeatherRepository with Redis caching.
// Responses are cached per city so repeated lookups within the TTL do not
// hit the external API. It implements the decorator pattern, transparently
// adding caching without modifying the underlying client.
//
// Only the weather payload is cached. Credentials and history are never
// stored in Redis.
type CachingWeatherRepository struct {
	inner     usecase.WeatherRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.WeatherRepository = (*CachingWeatherRepository)(nil)

// NewCachingWeatherRepository decorates a WeatherRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "weather".
func NewCachingWeatherRepository(rdb *redis.Client, ttl time.Duration, inner usecase.WeatherRepository, namespace string) *CachingWeatherRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "weather"
	}
	return &CachingWeatherRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FetchCurrent retrieves the weather text, checking cache first then falling
// back to the external API.
func (c *CachingWeatherRepository) FetchCurrent(ctx context.Context, city string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FetchCurrent(ctx, city)
	}

	key := c.cacheKey(city)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		return s, nil
	}

	// 2) Fallback to the external API
	out, err := c.inner.FetchCurrent(ctx, city)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()

	return out, nil
}

// cacheKey generates a cache key for a specific city.
func (c *CachingWeatherRepository) cacheKey(city string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(city))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return strings.ToLower(s)
}
