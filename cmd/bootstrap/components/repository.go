package components

import (
	"spigot-link/internal/infra/readstore"
	repo_impl "spigot-link/internal/infra/repository"
	"spigot-link/internal/usecase/commands"
	"spigot-link/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewLedgerRepository,
			fx.As(new(commands.LedgerRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewLinkReadStore,
			fx.As(new(queries.LinkReadStore)),
		),
	),
)
