package bootstrap

import (
	"context"
	"log/slog"

	"rincon-reservas/internal/infra/db"
	"rincon-reservas/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool when DB_DSN is unset; records then go to the log store.
// A configured but unreachable database fails startup.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !cfg.DB.Enabled() {
		logger.Info("DB_DSN not set, reservation records will only be logged")
		return nil, nil
	}

	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("record store connected", "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}
