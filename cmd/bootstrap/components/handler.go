package components

import (
	"spigot-link/internal/handler"
	"spigot-link/internal/handler/api"
	"spigot-link/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromotionHandler,
		api.NewLinkHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
