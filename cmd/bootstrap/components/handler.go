package components

import (
	"rental-pricing/internal/handler"
	"rental-pricing/internal/handler/api"
	"rental-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewCatalogHandler,
		api.NewFormHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
