package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"spigot-link/internal/domain/promotion"
	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/pkg/identity"
)

var (
	ErrAlreadyLinked    = errs.New("account already linked")
	ErrIdentityReserved = errs.New("identity reserved by another promotion")
	ErrNoPurchase       = errs.New("no purchase on record")
	ErrNoActivePromo    = errs.New("no active promotion")
	ErrInvalidCode      = errs.New("promotion code mismatch")
	ErrCodeCooldown     = errs.New("promotion code already issued")
)

type StartOutcome string

const (
	// StartCodeSent: a reservation was created and the code went out.
	StartCodeSent StartOutcome = "code_sent"
	// StartAlreadyLinked: the user is linked already; their roles were
	// re-synced instead of restarting the flow.
	StartAlreadyLinked StartOutcome = "already_linked"
)

type StartResult struct {
	Outcome      StartOutcome
	RolesChanged bool
	// Delivered is false when the code could not reach the user; the
	// reservation stays valid and an operator can relay the code manually.
	Delivered bool
}

type ConfirmResult struct {
	RolesChanged bool
}

// PromotionCommands drives the verification sequence:
// issue code -> await external confirmation -> commit link -> update roles.
// All transitions run on whichever goroutine delivers the triggering event;
// the reservation cache is the only guard they need.
type PromotionCommands interface {
	Start(ctx context.Context, userID int64, name string) (*StartResult, error)
	Confirm(ctx context.Context, userID int64, text string) (*ConfirmResult, error)
	Cancel(ctx context.Context, userID int64) error
}

type promotionCommandsImpl struct {
	cache    *promotion.Cache
	ledger   LedgerRepository
	ingest   IngestCommands
	roles    RoleCommands
	notifier Notifier
	logger   *slog.Logger

	mu          sync.Mutex
	messageRefs map[int64]MessageRef
}

func NewPromotionCommands(
	cache *promotion.Cache,
	ledger LedgerRepository,
	ingest IngestCommands,
	roles RoleCommands,
	notifier Notifier,
	logger *slog.Logger,
) PromotionCommands {
	return &promotionCommandsImpl{
		cache:       cache,
		ledger:      ledger,
		ingest:      ingest,
		roles:       roles,
		notifier:    notifier,
		logger:      logger,
		messageRefs: make(map[int64]MessageRef),
	}
}

func (p *promotionCommandsImpl) Start(ctx context.Context, userID int64, name string) (*StartResult, error) {
	linked, err := p.ledger.IsUserLinked(ctx, userID)
	if err != nil {
		return nil, err
	}
	if linked {
		changed, rerr := p.roles.Reconcile(ctx, userID)
		if rerr != nil {
			p.logger.Warn("role sync for linked user failed",
				"user_id", userID, "error", rerr.Error())
		}
		return &StartResult{Outcome: StartAlreadyLinked, RolesChanged: changed}, nil
	}

	id := identity.Normalize(name)

	idLinked, err := p.ledger.IsIdentityLinked(ctx, id)
	if err != nil {
		return nil, err
	}
	if idLinked {
		return nil, ErrAlreadyLinked
	}

	// Refresh the ledger before looking for a match; a purchase made
	// minutes ago should verify on the first try. Best effort - a provider
	// outage must not block users whose purchases are already ingested.
	if err := p.ingest.IngestAll(ctx); err != nil {
		p.logger.Warn("transaction refresh before promotion failed", "error", err.Error())
	}

	hasPurchase, err := p.ledger.HasPurchase(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hasPurchase {
		p.logger.Info("promotion rejected, no purchase on record", "user_id", userID)
		return nil, ErrNoPurchase
	}

	code, err := p.cache.Reserve(userID, id)
	if err != nil {
		switch {
		case errs.Is(err, promotion.ErrUserReserved):
			return nil, ErrCodeCooldown
		case errs.Is(err, promotion.ErrIdentityReserved):
			return nil, ErrIdentityReserved
		}
		return nil, err
	}

	result := &StartResult{Outcome: StartCodeSent, Delivered: true}

	ref, err := p.notifier.DeliverCode(ctx, userID, name, code)
	if err != nil {
		// Not fatal to the workflow; the reservation stays valid and the
		// failure is mirrored to the operator log.
		p.logger.Error("promotion code undeliverable",
			"user_id", userID, "error", err.Error())
		result.Delivered = false
	} else {
		p.setMessageRef(userID, ref)
	}

	p.logger.Info("promotion started", "user_id", userID)
	return result, nil
}

func (p *promotionCommandsImpl) Confirm(ctx context.Context, userID int64, text string) (*ConfirmResult, error) {
	// Single use: the stored code is invalidated on first presentation,
	// whatever the outcome. The identity stays reserved until the flow
	// concludes or the TTL runs out.
	code, id, ok := p.cache.Consume(userID)
	if !ok {
		return nil, ErrNoActivePromo
	}

	// Someone may have linked this identity through a parallel flow while
	// the confirmation dialog was open.
	idLinked, err := p.ledger.IsIdentityLinked(ctx, id)
	if err != nil {
		return nil, err
	}
	if idLinked {
		p.release(ctx, userID, "This marketplace account was linked to another Discord account in the meantime.")
		return nil, ErrAlreadyLinked
	}

	// Containment rather than equality: confirmation artifacts arrive as
	// quoted replies and templated mails around the bare code.
	if code == nil || !strings.Contains(text, *code) {
		p.logger.Info("promotion confirmation failed", "user_id", userID)
		p.notifyOutcome(ctx, userID, "This promotion code is not correct. Please restart your promotion.")
		return nil, ErrInvalidCode
	}

	if err := p.ledger.Link(ctx, userID, id); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the database-level race; the constraint is the arbiter.
			p.release(ctx, userID, "This marketplace account was linked to another Discord account in the meantime.")
			return nil, ErrAlreadyLinked
		}
		return nil, err
	}

	changed, err := p.roles.Reconcile(ctx, userID)
	if err != nil {
		p.logger.Warn("role update after promotion failed",
			"user_id", userID, "error", err.Error())
	}

	p.release(ctx, userID, "Your account has been promoted to premium.")
	p.logger.Info("promotion completed", "user_id", userID)
	return &ConfirmResult{RolesChanged: changed}, nil
}

// Cancel is the admin-initiated transition. It only mutates the reservation;
// an outstanding external call for this user finds the reservation gone and
// its effect is suppressed.
func (p *promotionCommandsImpl) Cancel(ctx context.Context, userID int64) error {
	if _, _, ok := p.cache.Peek(userID); !ok {
		return ErrNoActivePromo
	}
	p.release(ctx, userID, "Your promotion has been cancelled. Please try again.")
	p.logger.Info("promotion cancelled by admin", "user_id", userID)
	return nil
}

func (p *promotionCommandsImpl) release(ctx context.Context, userID int64, notice string) {
	p.cache.Release(userID)
	p.notifyOutcome(ctx, userID, notice)
}

func (p *promotionCommandsImpl) notifyOutcome(ctx context.Context, userID int64, text string) {
	ref, ok := p.takeMessageRef(userID)
	if !ok {
		return
	}
	if err := p.notifier.Update(ctx, userID, ref, text); err != nil {
		p.logger.Warn("failed to update promotion message",
			"user_id", userID, "error", err.Error())
	}
}

func (p *promotionCommandsImpl) setMessageRef(userID int64, ref MessageRef) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messageRefs[userID] = ref
}

func (p *promotionCommandsImpl) takeMessageRef(userID int64) (MessageRef, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ref, ok := p.messageRefs[userID]
	if ok {
		delete(p.messageRefs, userID)
	}
	return ref, ok
}
