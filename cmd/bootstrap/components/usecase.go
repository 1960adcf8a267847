package components

import (
	"rincon-reservas/internal/usecase/commands"
	"rincon-reservas/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewIntakeCommands,
		commands.NewEmailCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
	),
)
