package components

import (
	"rincon-reservas/internal/handler"
	"rincon-reservas/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewEmailHandler,
		api.NewPricingHandler,
		func(r *api.ReservationHandler, e *api.EmailHandler, p *api.PricingHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Email: e, Pricing: p}
		},
	),
	fx.Invoke(handler.NewRouter),
)
