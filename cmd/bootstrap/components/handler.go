package components

import (
	"agent-portal/internal/handler"
	"agent-portal/internal/handler/api"
	"agent-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewGuestHandler,
		api.NewCheckoutHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
