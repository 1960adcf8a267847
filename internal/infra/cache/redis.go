package cache

import (
	"context"
	"fmt"
	"time"

	"rincon-reservas/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		return nil, nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
