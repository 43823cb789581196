package components

import (
	"context"
	"log/slog"

	"spigot-link/internal/domain/promotion"
	"spigot-link/internal/infra/mailbox"
	"spigot-link/internal/pkg/config"
	"spigot-link/internal/usecase/commands"
	"spigot-link/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(runSweeper),
)

func NewSweeper(
	pool *pgxpool.Pool,
	cache *promotion.Cache,
	ingest commands.IngestCommands,
	promo commands.PromotionCommands,
	roles commands.RoleCommands,
	gateway commands.RoleGateway,
	inbox *mailbox.Inbox,
	cfg config.Config,
	logger *slog.Logger,
) *worker.Sweeper {
	return worker.NewSweeper(
		pool, cache, ingest, promo, roles, gateway, inbox,
		cfg.Promotion.SweepInterval, logger,
	)
}

func runSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
