package exchangerate

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Refresher struct {
	provider *CachedProvider
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefresher(provider *CachedProvider, interval time.Duration) *Refresher {
	return &Refresher{provider: provider, interval: interval}
}

// Start refreshes once synchronously, then on every interval until Stop.
func (r *Refresher) Start(ctx context.Context) {
	r.refresh(ctx)
	if r.interval <= 0 {
		return
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				r.refresh(loopCtx)
			}
		}
	}()
}

func (r *Refresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Refresher) refresh(ctx context.Context) {
	rate, err := r.provider.Refresh(ctx)
	if err != nil {
		slog.Warn("exchange rate refresh failed", "error", err.Error())
		return
	}
	slog.Debug("exchange rate refreshed", "rate", rate.Value, "source", rate.Source)
}
