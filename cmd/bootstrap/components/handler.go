package components

import (
	"shoestore-api/internal/handler"
	"shoestore-api/internal/handler/api"
	"shoestore-api/internal/handler/middleware"
	"shoestore-api/internal/pkg/config"
	"shoestore-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewOrderHandler,
		api.NewCartHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
