package queries

import (
	"context"
	"log/slog"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/config"
)

type RateView struct {
	Rate      float64
	Formatted string
	FetchedAt string
	Source    string
}

type AreaView struct {
	ID          string
	Name        string
	PriceUSD    float64
	Description string
	Capacity    int
}

type QuoteParams struct {
	Category      string
	Entries       int
	Exempt        int
	SelectedAreas []string
}

type QuoteView struct {
	Category      reservation.Category
	TotalPeople   int
	EntryPriceUSD float64
	Rate          RateView
	Areas         []AreaView
	SubtotalUSD   float64
	SubtotalLocal float64
	TaxLocal      float64
	TotalLocal    float64
}

type PricingQueries interface {
	CurrentRate(ctx context.Context) RateView
	Areas(category string) ([]AreaView, error)
	Quote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	rates   pricing.RateProvider
	clock   clock.Clock
	pricing config.PricingConfig
}

func NewPricingQueries(rates pricing.RateProvider, clk clock.Clock, cfg config.Config) PricingQueries {
	return &pricingQueriesImpl{rates: rates, clock: clk, pricing: cfg.Pricing}
}

// CurrentRate never fails: provider errors and non-positive values fall back.
func (q *pricingQueriesImpl) CurrentRate(ctx context.Context) RateView {
	rate, err := q.rates.CurrentRate(ctx)
	if err != nil {
		slog.Warn("exchange rate unavailable, using fallback", "error", err.Error())
		rate = pricing.NewFallbackRate(q.clock.Now())
	}
	if rate.Value <= 0 {
		rate.Value = pricing.EffectiveRate(q.pricing.FallbackRate)
		rate.Source = pricing.SourceFallback
	}
	return RateView{
		Rate:      rate.Value,
		Formatted: pricing.FormatRate(rate.Value),
		FetchedAt: rate.FetchedAt.UTC().Format(time.RFC3339),
		Source:    rate.Source,
	}
}

func (q *pricingQueriesImpl) Areas(category string) ([]AreaView, error) {
	rules, err := rulesFor(category)
	if err != nil {
		return nil, err
	}
	return toAreaViews(rules.Areas), nil
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	rules, err := rulesFor(params.Category)
	if err != nil {
		return nil, err
	}
	rate := q.CurrentRate(ctx)

	quote := pricing.Calculate(rules.Areas, pricing.Input{
		Entries:           params.Entries,
		Exempt:            params.Exempt,
		AreaIDs:           params.SelectedAreas,
		UnitEntryPriceUSD: q.pricing.EntryPriceUSD,
		ExchangeRate:      rate.Rate,
		TaxRate:           q.pricing.TaxRate,
	})

	return &QuoteView{
		Category:      rules.Category,
		TotalPeople:   quote.TotalPeople,
		EntryPriceUSD: q.pricing.EntryPriceUSD,
		Rate:          rate,
		Areas:         toAreaViews(quote.Areas),
		SubtotalUSD:   quote.SubtotalUSD,
		SubtotalLocal: quote.SubtotalLocal,
		TaxLocal:      quote.TaxLocal,
		TotalLocal:    quote.TotalLocal,
	}, nil
}

func rulesFor(category string) (reservation.RuleSet, error) {
	c, err := reservation.ParseCategory(category)
	if err != nil {
		return reservation.RuleSet{}, err
	}
	return reservation.Rules(c)
}

func toAreaViews(areas []pricing.Area) []AreaView {
	views := make([]AreaView, 0, len(areas))
	for _, a := range areas {
		views = append(views, AreaView{
			ID:          a.ID,
			Name:        a.Name,
			PriceUSD:    a.PriceUSD,
			Description: a.Description,
			Capacity:    a.Capacity,
		})
	}
	return views
}
