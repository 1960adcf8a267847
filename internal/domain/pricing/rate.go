package pricing

import (
	"context"
	"time"
)

const (
	SourceSimulated = "simulated"
	SourceCache     = "cache"
	SourceFallback  = "fallback"
)

type Rate struct {
	Value     float64
	FetchedAt time.Time
	Source    string
}

func NewFallbackRate(now time.Time) Rate {
	return Rate{Value: FallbackRate, FetchedAt: now, Source: SourceFallback}
}

type RateProvider interface {
	CurrentRate(ctx context.Context) (Rate, error)
}
