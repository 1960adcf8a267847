package bootstrap

import (
	"rincon-reservas/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	MailModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
