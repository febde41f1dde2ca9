package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCache remembers which order an idempotency key already produced.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) OrderMarkerKey(restaurantID uuid.UUID, idempotencyKey string) string {
	return "order:idempotency:" + restaurantID.String() + ":" + idempotencyKey
}

// LookupOrder returns the order recorded under key, if any.
func (c *RedisCache) LookupOrder(ctx context.Context, key string) (uuid.UUID, bool, error) {
	value, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	orderID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt order marker %q: %w", key, err)
	}
	return orderID, true, nil
}

// RememberOrder keeps the first order recorded under key.
func (c *RedisCache) RememberOrder(ctx context.Context, key string, orderID uuid.UUID) error {
	return c.Client.SetNX(ctx, key, orderID.String(), c.TTL).Err()
}

// RateLimiter is a fixed-window counter per subject.
type RateLimiter struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
	now    func() time.Time
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{Client: client, Limit: limit, Window: window, now: time.Now}
}

func (l *RateLimiter) windowKey(subject string) string {
	bucket := l.now().UnixNano() / int64(l.Window)
	return "ratelimit:orders:" + subject + ":" + strconv.FormatInt(bucket, 10)
}

// Allow counts one attempt for subject and reports whether it stays within the limit.
func (l *RateLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	if l.Limit <= 0 {
		return true, nil
	}

	key := l.windowKey(subject)
	pipe := l.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.Limit), nil
}
