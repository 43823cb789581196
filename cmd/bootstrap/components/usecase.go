package components

import (
	"log/slog"

	"spigot-link/internal/domain/promotion"
	"spigot-link/internal/pkg/clock"
	"spigot-link/internal/pkg/config"
	"spigot-link/internal/usecase/commands"
	"spigot-link/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *promotion.Cache {
		return promotion.NewCache(clk, cfg.Promotion.CodeTTL)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewIngestCommands,
		commands.NewPromotionCommands,
		NewRoleCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLinkQueries,
	),
)

func NewIngestCommands(
	ledger commands.LedgerRepository,
	settings commands.SettingsRepository,
	providers []commands.Provider,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.IngestCommands {
	return commands.NewIngestCommands(
		ledger, settings, providers, clk, cfg.Promotion, cfg.PayPal.BeginDate, logger,
	)
}

func NewRoleCommands(
	ledger commands.LedgerRepository,
	gateway commands.RoleGateway,
	cfg config.Config,
	logger *slog.Logger,
) commands.RoleCommands {
	return commands.NewRoleCommands(ledger, gateway, cfg.Discord, logger)
}
