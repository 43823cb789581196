// Package worker runs the background sweep: transaction ingestion, inbox
// confirmation polling, and full role reconciliation.
package worker

import (
	"context"
	"log/slog"
	"time"

	"spigot-link/internal/domain/promotion"
	"spigot-link/internal/infra/mailbox"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/pkg/identity"
	"spigot-link/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConfirmationSource is the polled confirmation channel (the mailbox). A nil
// source disables inbox confirmation and leaves only the interactive one.
type ConfirmationSource interface {
	Ready() bool
	Poll(ctx context.Context) ([]mailbox.Confirmation, error)
}

type Sweeper struct {
	pool     *pgxpool.Pool
	cache    *promotion.Cache
	ingest   commands.IngestCommands
	promo    commands.PromotionCommands
	roles    commands.RoleCommands
	gateway  commands.RoleGateway
	inbox    ConfirmationSource
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(
	pool *pgxpool.Pool,
	cache *promotion.Cache,
	ingest commands.IngestCommands,
	promo commands.PromotionCommands,
	roles commands.RoleCommands,
	gateway commands.RoleGateway,
	inbox ConfirmationSource,
	interval time.Duration,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		pool:     pool,
		cache:    cache,
		ingest:   ingest,
		promo:    promo,
		roles:    roles,
		gateway:  gateway,
		inbox:    inbox,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. A sweep is
// skipped entirely while any dependent service is not ready.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	if !s.ready(ctx) {
		s.logger.Debug("sweep skipped, dependent services not ready")
		return
	}

	logger := s.logger.With("sweep_id", uuid.NewString())

	if err := s.ingest.IngestAll(ctx); err != nil {
		logger.Warn("sweep ingestion incomplete", "error", err.Error())
	}

	s.drainInbox(ctx, logger)

	changed, err := s.roles.ReconcileAll(ctx)
	if err != nil {
		logger.Warn("sweep reconciliation failed", "error", err.Error())
		return
	}
	if changed > 0 {
		logger.Info("sweep reconciled members", "changed", changed)
	}
}

// drainInbox routes received forum replies to the promotions awaiting them.
// Replies for identities with no in-flight promotion are ignored.
func (s *Sweeper) drainInbox(ctx context.Context, logger *slog.Logger) {
	if s.inbox == nil || !s.inbox.Ready() {
		return
	}

	confirmations, err := s.inbox.Poll(ctx)
	if err != nil {
		logger.Warn("inbox poll failed", "error", err.Error())
		return
	}

	for _, c := range confirmations {
		holder, ok := s.cache.HolderOf(identity.Normalize(c.Name))
		if !ok {
			continue
		}
		if _, err := s.promo.Confirm(ctx, holder, c.Body); err != nil {
			if errs.Is(err, commands.ErrNoActivePromo) {
				continue
			}
			logger.Info("inbox confirmation rejected",
				"user_id", holder, "error", err.Error())
		}
	}
}

func (s *Sweeper) ready(ctx context.Context) bool {
	if s.pool == nil || s.pool.Ping(ctx) != nil {
		return false
	}
	if !s.gateway.Ready() {
		return false
	}
	return s.ingest.Ready()
}
