package commands

import (
	"context"
	"log/slog"

	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
)

type RoleCommands interface {
	// Reconcile diffs the user's current roles against the role set derived
	// from their verified purchases and applies the minimal add/remove set.
	// Only managed roles (premium + resource-mapped) are ever touched.
	Reconcile(ctx context.Context, userID int64) (bool, error)
	// ReconcileAll reconciles every member currently holding any managed
	// role and returns how many members changed.
	ReconcileAll(ctx context.Context) (int, error)
}

type roleCommandsImpl struct {
	ledger  LedgerRepository
	gateway RoleGateway
	cfg     config.DiscordConfig
	logger  *slog.Logger
}

func NewRoleCommands(ledger LedgerRepository, gateway RoleGateway, cfg config.DiscordConfig, logger *slog.Logger) RoleCommands {
	return &roleCommandsImpl{
		ledger:  ledger,
		gateway: gateway,
		cfg:     cfg,
		logger:  logger,
	}
}

func (r *roleCommandsImpl) Reconcile(ctx context.Context, userID int64) (bool, error) {
	rids, err := r.ledger.PurchasedResourceIDs(ctx, userID)
	if err != nil {
		return false, err
	}

	desired := make(map[int64]bool)
	if len(rids) > 0 {
		desired[r.cfg.PremiumRoleID] = true
	}
	for _, rid := range rids {
		if roleID, ok := r.cfg.ResourceRoles[rid]; ok {
			desired[roleID] = true
		}
	}

	current, err := r.gateway.Roles(ctx, userID)
	if err != nil {
		return false, err
	}
	held := make(map[int64]bool, len(current))
	for _, roleID := range current {
		held[roleID] = true
	}

	// Each add/remove is an independent external call; one failure must not
	// block the others.
	changed := false
	var failures []error

	for _, roleID := range r.managedRoles() {
		switch {
		case held[roleID] && !desired[roleID]:
			if err := r.gateway.RemoveRole(ctx, userID, roleID); err != nil {
				failures = append(failures, errs.Wrap(err, "failed to remove role"))
				continue
			}
			r.logger.Info("removed role without purchase backing",
				"user_id", userID, "role_id", roleID, "purchases", len(rids))
			changed = true
		case !held[roleID] && desired[roleID]:
			if err := r.gateway.AddRole(ctx, userID, roleID); err != nil {
				failures = append(failures, errs.Wrap(err, "failed to add role"))
				continue
			}
			r.logger.Info("added role for verified purchases",
				"user_id", userID, "role_id", roleID, "purchases", len(rids))
			changed = true
		}
	}

	return changed, errs.Join(failures...)
}

func (r *roleCommandsImpl) ReconcileAll(ctx context.Context) (int, error) {
	// Scan only members holding a managed role instead of the whole guild.
	seen := make(map[int64]bool)
	var members []int64
	for _, roleID := range r.managedRoles() {
		holders, err := r.gateway.MembersWithRole(ctx, roleID)
		if err != nil {
			return 0, errs.Wrap(err, "failed to list role members")
		}
		for _, userID := range holders {
			if !seen[userID] {
				seen[userID] = true
				members = append(members, userID)
			}
		}
	}

	changedCount := 0
	for _, userID := range members {
		changed, err := r.Reconcile(ctx, userID)
		if err != nil {
			r.logger.Warn("member reconciliation failed",
				"user_id", userID, "error", err.Error())
			continue
		}
		if changed {
			changedCount++
		}
	}
	return changedCount, nil
}

// managedRoles deduplicates: several resources may map to one role, or a
// resource may map to the premium role itself.
func (r *roleCommandsImpl) managedRoles() []int64 {
	seen := map[int64]bool{r.cfg.PremiumRoleID: true}
	managed := []int64{r.cfg.PremiumRoleID}
	for _, roleID := range r.cfg.ResourceRoles {
		if !seen[roleID] {
			seen[roleID] = true
			managed = append(managed, roleID)
		}
	}
	return managed
}
