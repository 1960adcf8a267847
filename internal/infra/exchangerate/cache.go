package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errs.New("exchange rate cache miss")

type RateCache interface {
	Get(ctx context.Context) (pricing.Rate, error)
	Set(ctx context.Context, rate pricing.Rate, ttl time.Duration) error
}

type MemoryCache struct {
	mu        sync.RWMutex
	clock     clock.Clock
	rate      pricing.Rate
	expiresAt time.Time
	filled    bool
}

func NewMemoryCache(clk clock.Clock) *MemoryCache {
	return &MemoryCache{clock: clk}
}

func (c *MemoryCache) Get(_ context.Context) (pricing.Rate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled || !c.clock.Now().Before(c.expiresAt) {
		return pricing.Rate{}, ErrCacheMiss
	}
	return c.rate, nil
}

func (c *MemoryCache) Set(_ context.Context, rate pricing.Rate, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
	c.expiresAt = c.clock.Now().Add(ttl)
	c.filled = true
	return nil
}

type cachedRate struct {
	Value     float64   `json:"value"`
	FetchedAt time.Time `json:"fetchedAt"`
	Source    string    `json:"source"`
}

// RedisCache shares the current rate between instances under one key.
type RedisCache struct {
	client *redis.Client
	key    string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, key: prefix + ":exchange-rate:bcv"}
}

func (c *RedisCache) Get(ctx context.Context) (pricing.Rate, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.Rate{}, ErrCacheMiss
		}
		return pricing.Rate{}, errs.Wrap(err, "redis get exchange rate")
	}

	var cr cachedRate
	if err := json.Unmarshal(val, &cr); err != nil {
		return pricing.Rate{}, errs.Wrap(err, "decode cached exchange rate")
	}
	return pricing.Rate{Value: cr.Value, FetchedAt: cr.FetchedAt, Source: cr.Source}, nil
}

func (c *RedisCache) Set(ctx context.Context, rate pricing.Rate, ttl time.Duration) error {
	data, err := json.Marshal(cachedRate{Value: rate.Value, FetchedAt: rate.FetchedAt, Source: rate.Source})
	if err != nil {
		return errs.Wrap(err, "encode exchange rate")
	}
	if err := c.client.Set(ctx, c.key, data, ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set exchange rate")
	}
	return nil
}
