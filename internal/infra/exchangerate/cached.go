package exchangerate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/pkg/errs"
)

// CachedProvider serves the rate from cache and refills it from upstream on a miss.
type CachedProvider struct {
	upstream pricing.RateProvider
	cache    RateCache
	ttl      time.Duration
}

func NewCachedProvider(upstream pricing.RateProvider, cache RateCache, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CachedProvider{upstream: upstream, cache: cache, ttl: ttl}
}

func (p *CachedProvider) CurrentRate(ctx context.Context) (pricing.Rate, error) {
	rate, err := p.cache.Get(ctx)
	if err == nil {
		rate.Source = pricing.SourceCache
		return rate, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("exchange rate cache unavailable, reading upstream", "error", err.Error())
	}
	return p.Refresh(ctx)
}

// Refresh reads upstream and overwrites the cached value.
func (p *CachedProvider) Refresh(ctx context.Context) (pricing.Rate, error) {
	rate, err := p.upstream.CurrentRate(ctx)
	if err != nil {
		return pricing.Rate{}, errs.Mark(errs.Wrap(err, "fetch exchange rate"), errs.ErrRateUnavailable)
	}
	if err := p.cache.Set(ctx, rate, p.ttl); err != nil {
		slog.Warn("failed to cache exchange rate", "error", err.Error())
	}
	return rate, nil
}
