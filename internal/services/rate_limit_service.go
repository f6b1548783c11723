package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	MaxRequests int           // per identifier within Window
	Window      time.Duration // fixed window length
}

// counterStore is the subset of the redis client the limiter uses
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RateLimitService counts booking submissions per IP in fixed windows
type RateLimitService struct {
	store  counterStore
	config RateLimitConfig
	prefix string
	now    func() time.Time
	logger logrus.FieldLogger
}

// NewRateLimitService creates a new rate limit service. A nil store disables limiting.
func NewRateLimitService(store counterStore, config RateLimitConfig, logger logrus.FieldLogger) *RateLimitService {
	return &RateLimitService{
		store:  store,
		config: config,
		prefix: "ratelimit:booking:",
		now:    time.Now,
		logger: logger,
	}
}

// RateLimitError represents a rate limit error
type RateLimitError struct {
	Message    string
	RetryAfter time.Time
	Type       string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// Enabled reports whether requests are actually counted
func (s *RateLimitService) Enabled() bool {
	return s != nil && s.store != nil && s.config.MaxRequests > 0 && s.config.Window > 0
}

// Allow records one request for ip and returns a *RateLimitError once the
// window budget is spent. Redis failures let the request through.
func (s *RateLimitService) Allow(ctx context.Context, ip string) error {
	if !s.Enabled() || ip == "" {
		return nil
	}

	key := s.prefix + ip
	count, err := s.store.Incr(ctx, key).Result()
	if err != nil {
		s.logger.WithError(err).WithField("ip", ip).Warn("Rate limiter unavailable, allowing request")
		return nil
	}
	if count == 1 {
		if err := s.store.Expire(ctx, key, s.config.Window).Err(); err != nil {
			s.logger.WithError(err).WithField("ip", ip).Warn("Failed to set rate limit window")
		}
	}

	if count > int64(s.config.MaxRequests) {
		ttl, err := s.store.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = s.config.Window
		}
		retryAfter := s.now().Add(ttl)
		return &RateLimitError{
			Message:    fmt.Sprintf("Too many booking requests from this IP address. Please try again after %s", retryAfter.Format("15:04:05")),
			RetryAfter: retryAfter,
			Type:       "ip",
		}
	}
	return nil
}
