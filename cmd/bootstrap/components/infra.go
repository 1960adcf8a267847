package components

import (
	"context"
	"log/slog"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/infra/exchangerate"
	"rincon-reservas/internal/infra/store"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewRecordStore,
		NewRateCache,
		exchangerate.NewSimulatedProvider,
		fx.Annotate(
			NewCachedProvider,
			fx.As(fx.Self()),
			fx.As(new(pricing.RateProvider)),
		),
	),
	fx.Invoke(startRateRefresher),
)

// NewRecordStore prefers Postgres and falls back to structured logs.
func NewRecordStore(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) commands.RecordStore {
	if pool == nil {
		return store.NewLogRecordStore(logger)
	}

	s := store.NewPostgresRecordStore(pool, logger)
	lc.Append(fx.Hook{
		OnStart: s.EnsureSchema,
	})
	return s
}

func NewRateCache(rdb *redis.Client, cfg config.Config, clk clock.Clock) exchangerate.RateCache {
	if rdb == nil {
		return exchangerate.NewMemoryCache(clk)
	}
	return exchangerate.NewRedisCache(rdb, cfg.Redis.KeyPrefix)
}

func NewCachedProvider(sim *exchangerate.SimulatedProvider, cache exchangerate.RateCache, cfg config.Config) *exchangerate.CachedProvider {
	return exchangerate.NewCachedProvider(sim, cache, cfg.Pricing.RefreshInterval)
}

func startRateRefresher(lc fx.Lifecycle, provider *exchangerate.CachedProvider, cfg config.Config) {
	r := exchangerate.NewRefresher(provider, cfg.Pricing.RefreshInterval)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			r.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			r.Stop()
			return nil
		},
	})
}
