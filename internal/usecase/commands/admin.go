package commands

import (
	"context"
	"log/slog"

	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/errs"
)

var ErrLinkNotFound = errs.New("link not found")

type AdminCommands interface {
	// Unlink removes a user's marketplace link and reconciles their roles
	// down. The freed identity becomes claimable again immediately.
	Unlink(ctx context.Context, userID int64) (bool, error)
}

type adminCommandsImpl struct {
	ledger LedgerRepository
	roles  RoleCommands
	logger *slog.Logger
}

func NewAdminCommands(ledger LedgerRepository, roles RoleCommands, logger *slog.Logger) AdminCommands {
	return &adminCommandsImpl{
		ledger: ledger,
		roles:  roles,
		logger: logger,
	}
}

func (a *adminCommandsImpl) Unlink(ctx context.Context, userID int64) (bool, error) {
	if err := a.ledger.Unlink(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrLinkNotFound
		}
		return false, err
	}

	a.logger.Info("link removed by admin", "user_id", userID)

	changed, err := a.roles.Reconcile(ctx, userID)
	if err != nil {
		a.logger.Warn("role cleanup after unlink failed",
			"user_id", userID, "error", err.Error())
	}
	return changed, nil
}
