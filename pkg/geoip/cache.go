package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by a Cache when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// Cache stores serialized lookups
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisCache implements Cache on a go-redis client
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps a redis client
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// CachedLocator decorates a Locator with a cache keyed by IP
type CachedLocator struct {
	next   Locator
	cache  Cache
	ttl    time.Duration
	logger logrus.FieldLogger
}

// NewCachedLocator creates a caching locator
func NewCachedLocator(next Locator, cache Cache, ttl time.Duration, logger logrus.FieldLogger) *CachedLocator {
	return &CachedLocator{next: next, cache: cache, ttl: ttl, logger: logger}
}

func cacheKey(ip string) string {
	return "geoip:" + ip
}

// Locate returns the cached location of ip or resolves and stores it.
// Cache failures degrade to a direct lookup; failed lookups are not cached.
func (c *CachedLocator) Locate(ctx context.Context, ip string) (*Location, error) {
	key := cacheKey(ip)

	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var loc Location
		if jsonErr := json.Unmarshal([]byte(raw), &loc); jsonErr == nil {
			return &loc, nil
		}
	case !errors.Is(err, ErrCacheMiss):
		c.logger.WithError(err).Warn("Geolocation cache read failed")
	}

	loc, err := c.next.Locate(ctx, ip)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(loc); jsonErr == nil {
		if setErr := c.cache.Set(ctx, key, string(encoded), c.ttl); setErr != nil {
			c.logger.WithError(setErr).Warn("Geolocation cache write failed")
		}
	}
	return loc, nil
}
