package exchangerate

import (
	"context"
	"math/rand/v2"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/config"
)

// SimulatedProvider stands in for the BCV feed: a configured base rate with an
// optional relative jitter.
type SimulatedProvider struct {
	base   float64
	jitter float64
	clock  clock.Clock
	rand   func() float64
}

func NewSimulatedProvider(cfg config.PricingConfig, clk clock.Clock) *SimulatedProvider {
	return &SimulatedProvider{
		base:   pricing.EffectiveRate(cfg.FallbackRate),
		jitter: max(cfg.Jitter, 0),
		clock:  clk,
		rand:   rand.Float64,
	}
}

func (p *SimulatedProvider) CurrentRate(_ context.Context) (pricing.Rate, error) {
	value := p.base
	if p.jitter > 0 {
		value *= 1 + (p.rand()*2-1)*p.jitter
	}
	return pricing.Rate{
		Value:     value,
		FetchedAt: p.clock.Now(),
		Source:    pricing.SourceSimulated,
	}, nil
}
