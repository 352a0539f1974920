package components

import (
	"log/slog"

	"shoestore-api/internal/pkg/mail"
	"shoestore-api/internal/usecase/commands"
	"shoestore-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		func(logger *slog.Logger) *mail.LogMailer {
			return mail.NewLogMailer(logger)
		},
		fx.As(new(mail.Mailer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewProductCommands,
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		queries.NewProductQueries,
		queries.NewDashboardQueries,
	),
)
