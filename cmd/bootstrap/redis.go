package bootstrap

import (
	"context"
	"log/slog"

	"rincon-reservas/internal/infra/cache"
	"rincon-reservas/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis degrades to nil when Redis is unset or unreachable: the rate cache
// falls back to memory and rate limiting is disabled.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled() {
		return nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without it", "addr", cfg.Redis.Addr, "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client
}
