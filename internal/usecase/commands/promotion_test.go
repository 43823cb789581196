//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spigot-link/internal/domain/promotion"
	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/clock"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/pkg/identity"
	"spigot-link/internal/usecase/commands"
	commandsmock "spigot-link/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID  int64 = 111222333
	otherUserID int64 = 444555666
	testName          = "SomeBuyer"
)

type promotionFixture struct {
	cache    *promotion.Cache
	clock    *clock.MockClock
	ledger   *commandsmock.MockLedgerRepository
	ingest   *commandsmock.MockIngestCommands
	roles    *commandsmock.MockRoleCommands
	notifier *commandsmock.MockNotifier
	promo    commands.PromotionCommands
}

func newPromotionFixture(t *testing.T) *promotionFixture {
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	f := &promotionFixture{
		cache:    promotion.NewCache(clk, 15*time.Minute),
		clock:    clk,
		ledger:   commandsmock.NewMockLedgerRepository(ctrl),
		ingest:   commandsmock.NewMockIngestCommands(ctrl),
		roles:    commandsmock.NewMockRoleCommands(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.promo = commands.NewPromotionCommands(f.cache, f.ledger, f.ingest, f.roles, f.notifier, logger)
	return f
}

// startPromotion drives a successful Start and returns the issued code.
func (f *promotionFixture) startPromotion(t *testing.T, userID int64, name string) string {
	t.Helper()
	ctx := context.Background()
	id := identity.Normalize(name)

	f.ledger.EXPECT().IsUserLinked(ctx, userID).Return(false, nil)
	f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
	f.ingest.EXPECT().IngestAll(ctx).Return(nil)
	f.ledger.EXPECT().HasPurchase(ctx, id).Return(true, nil)

	var issued string
	f.notifier.EXPECT().DeliverCode(ctx, userID, name, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _, code string) (commands.MessageRef, error) {
			issued = code
			return commands.MessageRef("msg-1"), nil
		})

	result, err := f.promo.Start(ctx, userID, name)
	require.NoError(t, err)
	require.Equal(t, commands.StartCodeSent, result.Outcome)
	require.True(t, result.Delivered)
	require.NotEmpty(t, issued)
	return issued
}

// =============================================================================
// Start Tests
// =============================================================================

func TestPromotionCommands_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("linked user gets a role re-sync instead of a new flow", func(t *testing.T) {
		f := newPromotionFixture(t)
		f.ledger.EXPECT().IsUserLinked(ctx, testUserID).Return(true, nil)
		f.roles.EXPECT().Reconcile(ctx, testUserID).Return(true, nil)

		result, err := f.promo.Start(ctx, testUserID, testName)
		require.NoError(t, err)
		assert.Equal(t, commands.StartAlreadyLinked, result.Outcome)
		assert.True(t, result.RolesChanged)
	})

	t.Run("identity claimed by another account is rejected", func(t *testing.T) {
		f := newPromotionFixture(t)
		f.ledger.EXPECT().IsUserLinked(ctx, testUserID).Return(false, nil)
		f.ledger.EXPECT().IsIdentityLinked(ctx, identity.Normalize(testName)).Return(true, nil)

		_, err := f.promo.Start(ctx, testUserID, testName)
		assert.ErrorIs(t, err, commands.ErrAlreadyLinked)
	})

	t.Run("no purchase on record", func(t *testing.T) {
		f := newPromotionFixture(t)
		id := identity.Normalize(testName)
		f.ledger.EXPECT().IsUserLinked(ctx, testUserID).Return(false, nil)
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ingest.EXPECT().IngestAll(ctx).Return(nil)
		f.ledger.EXPECT().HasPurchase(ctx, id).Return(false, nil)

		_, err := f.promo.Start(ctx, testUserID, testName)
		assert.ErrorIs(t, err, commands.ErrNoPurchase)
	})

	t.Run("ingestion failure does not block verification", func(t *testing.T) {
		f := newPromotionFixture(t)
		id := identity.Normalize(testName)
		f.ledger.EXPECT().IsUserLinked(ctx, testUserID).Return(false, nil)
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ingest.EXPECT().IngestAll(ctx).Return(errs.New("provider outage"))
		f.ledger.EXPECT().HasPurchase(ctx, id).Return(true, nil)
		f.notifier.EXPECT().DeliverCode(ctx, testUserID, testName, gomock.Any()).
			Return(commands.MessageRef("msg-1"), nil)

		result, err := f.promo.Start(ctx, testUserID, testName)
		require.NoError(t, err)
		assert.Equal(t, commands.StartCodeSent, result.Outcome)
	})

	t.Run("undeliverable code keeps the reservation", func(t *testing.T) {
		f := newPromotionFixture(t)
		id := identity.Normalize(testName)
		f.ledger.EXPECT().IsUserLinked(ctx, testUserID).Return(false, nil)
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ingest.EXPECT().IngestAll(ctx).Return(nil)
		f.ledger.EXPECT().HasPurchase(ctx, id).Return(true, nil)
		f.notifier.EXPECT().DeliverCode(ctx, testUserID, testName, gomock.Any()).
			Return(commands.MessageRef(""), errs.New("dm closed"))

		result, err := f.promo.Start(ctx, testUserID, testName)
		require.NoError(t, err)
		assert.Equal(t, commands.StartCodeSent, result.Outcome)
		assert.False(t, result.Delivered)

		// Reservation survives; an operator can still drive the confirmation.
		_, _, ok := f.cache.Peek(testUserID)
		assert.True(t, ok)
	})

	t.Run("second start within the TTL is a cooldown", func(t *testing.T) {
		f := newPromotionFixture(t)
		f.startPromotion(t, testUserID, testName)

		id := identity.Normalize(testName)
		f.ledger.EXPECT().IsUserLinked(ctx, testUserID).Return(false, nil)
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ingest.EXPECT().IngestAll(ctx).Return(nil)
		f.ledger.EXPECT().HasPurchase(ctx, id).Return(true, nil)

		_, err := f.promo.Start(ctx, testUserID, testName)
		assert.ErrorIs(t, err, commands.ErrCodeCooldown)
	})

	t.Run("identity reserved by another user's flow", func(t *testing.T) {
		f := newPromotionFixture(t)
		f.startPromotion(t, testUserID, testName)

		// Same marketplace name, different casing, different Discord user.
		variant := "somebuyer"
		id := identity.Normalize(variant)
		f.ledger.EXPECT().IsUserLinked(ctx, otherUserID).Return(false, nil)
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ingest.EXPECT().IngestAll(ctx).Return(nil)
		f.ledger.EXPECT().HasPurchase(ctx, id).Return(true, nil)

		_, err := f.promo.Start(ctx, otherUserID, variant)
		assert.ErrorIs(t, err, commands.ErrIdentityReserved)
	})

	t.Run("expired reservation allows a fresh start", func(t *testing.T) {
		f := newPromotionFixture(t)
		first := f.startPromotion(t, testUserID, testName)

		f.clock.Add(16 * time.Minute)

		second := f.startPromotion(t, testUserID, testName)
		assert.NotEmpty(t, second)
		_ = first
	})
}

// =============================================================================
// Confirm Tests
// =============================================================================

func TestPromotionCommands_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("no active promotion", func(t *testing.T) {
		f := newPromotionFixture(t)
		_, err := f.promo.Confirm(ctx, testUserID, "anything")
		assert.ErrorIs(t, err, commands.ErrNoActivePromo)
	})

	t.Run("success commits the link and updates roles", func(t *testing.T) {
		f := newPromotionFixture(t)
		code := f.startPromotion(t, testUserID, testName)
		id := identity.Normalize(testName)

		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ledger.EXPECT().Link(ctx, testUserID, id).Return(nil)
		f.roles.EXPECT().Reconcile(ctx, testUserID).Return(true, nil)
		f.notifier.EXPECT().Update(ctx, testUserID, commands.MessageRef("msg-1"), gomock.Any()).Return(nil)

		// The artifact carries the code inside surrounding text.
		result, err := f.promo.Confirm(ctx, testUserID, "Here is my code: "+code+" thanks!")
		require.NoError(t, err)
		assert.True(t, result.RolesChanged)

		// Flow concluded; the identity is free again.
		_, ok := f.cache.HolderOf(id)
		assert.False(t, ok)
	})

	t.Run("wrong code invalidates the stored code", func(t *testing.T) {
		f := newPromotionFixture(t)
		code := f.startPromotion(t, testUserID, testName)
		id := identity.Normalize(testName)

		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.notifier.EXPECT().Update(ctx, testUserID, commands.MessageRef("msg-1"), gomock.Any()).Return(nil)

		_, err := f.promo.Confirm(ctx, testUserID, "000000")
		assert.ErrorIs(t, err, commands.ErrInvalidCode)

		// Single use: the right code no longer works either.
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		_, err = f.promo.Confirm(ctx, testUserID, code)
		assert.ErrorIs(t, err, commands.ErrInvalidCode)

		// The identity claim outlives the code until the TTL runs out.
		holder, ok := f.cache.HolderOf(id)
		assert.True(t, ok)
		assert.Equal(t, testUserID, holder)
	})

	t.Run("identity linked by a parallel flow in the meantime", func(t *testing.T) {
		f := newPromotionFixture(t)
		code := f.startPromotion(t, testUserID, testName)
		id := identity.Normalize(testName)

		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(true, nil)
		f.notifier.EXPECT().Update(ctx, testUserID, commands.MessageRef("msg-1"), gomock.Any()).Return(nil)

		_, err := f.promo.Confirm(ctx, testUserID, code)
		assert.ErrorIs(t, err, commands.ErrAlreadyLinked)

		// Reservation released.
		_, ok := f.cache.HolderOf(id)
		assert.False(t, ok)
	})

	t.Run("lost the unique-constraint race on link", func(t *testing.T) {
		f := newPromotionFixture(t)
		code := f.startPromotion(t, testUserID, testName)
		id := identity.Normalize(testName)

		dup := infra.WrapRepoErr("link already exists", errs.New("23505"), infra.KindDuplicateKey)
		f.ledger.EXPECT().IsIdentityLinked(ctx, id).Return(false, nil)
		f.ledger.EXPECT().Link(ctx, testUserID, id).Return(dup)
		f.notifier.EXPECT().Update(ctx, testUserID, commands.MessageRef("msg-1"), gomock.Any()).Return(nil)

		_, err := f.promo.Confirm(ctx, testUserID, code)
		assert.ErrorIs(t, err, commands.ErrAlreadyLinked)
	})

	t.Run("expired promotion no longer confirms", func(t *testing.T) {
		f := newPromotionFixture(t)
		code := f.startPromotion(t, testUserID, testName)

		f.clock.Add(15*time.Minute + time.Second)

		_, err := f.promo.Confirm(ctx, testUserID, code)
		assert.ErrorIs(t, err, commands.ErrNoActivePromo)
	})
}

// =============================================================================
// Cancel Tests
// =============================================================================

func TestPromotionCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to cancel", func(t *testing.T) {
		f := newPromotionFixture(t)
		err := f.promo.Cancel(ctx, testUserID)
		assert.ErrorIs(t, err, commands.ErrNoActivePromo)
	})

	t.Run("cancel frees the reservation and notifies the user", func(t *testing.T) {
		f := newPromotionFixture(t)
		code := f.startPromotion(t, testUserID, testName)
		id := identity.Normalize(testName)

		f.notifier.EXPECT().Update(ctx, testUserID, commands.MessageRef("msg-1"), gomock.Any()).Return(nil)

		require.NoError(t, f.promo.Cancel(ctx, testUserID))

		_, ok := f.cache.HolderOf(id)
		assert.False(t, ok)

		_, err := f.promo.Confirm(ctx, testUserID, code)
		assert.ErrorIs(t, err, commands.ErrNoActivePromo)
	})
}
