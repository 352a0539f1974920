package components

import (
	"shoestore-api/internal/infra/cartstore"
	"shoestore-api/internal/infra/readstore"
	"shoestore-api/internal/infra/tokenstore"
	"shoestore-api/internal/infra/writerepo"
	"shoestore-api/internal/usecase/commands"
	"shoestore-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
		// Write side
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			writerepo.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Redis-backed stores
		fx.Annotate(
			cartstore.NewRedisCartStore,
			fx.As(new(commands.CartStore)),
		),
		fx.Annotate(
			tokenstore.NewRedisTokenStore,
			fx.As(new(commands.ResetTokenStore)),
		),
	),
)
