package bootstrap

import (
	"rincon-reservas/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigSections exposes the config sections that components take directly.
// Test apps that supply their own config.Config reuse it.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.PricingConfig { return cfg.Pricing },
	func(cfg config.Config) config.BusinessConfig { return cfg.Business },
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)
