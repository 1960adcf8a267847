package bootstrap

import (
	"log/slog"

	"rincon-reservas/internal/handler/middleware"
	"rincon-reservas/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
