//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spigot-link/internal/infra"
	"spigot-link/internal/infra/provider"
	"spigot-link/internal/pkg/clock"
	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
	commandsmock "spigot-link/tests/mock/commands"
	providermock "spigot-link/tests/mock/provider"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testBeginDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

type ingestFixture struct {
	ledger   *commandsmock.MockLedgerRepository
	settings *commandsmock.MockSettingsRepository
	provider *commandsmock.MockProvider
	clock    *clock.MockClock
	ingest   commands.IngestCommands
}

func newIngestFixture(t *testing.T, now time.Time, providers ...commands.Provider) *ingestFixture {
	ctrl := gomock.NewController(t)
	f := &ingestFixture{
		ledger:   commandsmock.NewMockLedgerRepository(ctrl),
		settings: commandsmock.NewMockSettingsRepository(ctrl),
		provider: commandsmock.NewMockProvider(ctrl),
		clock:    clock.NewMockClock(now),
	}
	if len(providers) == 0 {
		providers = []commands.Provider{f.provider}
	}
	cfg := config.PromotionConfig{
		CodeTTL:        15 * time.Minute,
		IngestDebounce: 30 * time.Second,
		SweepInterval:  5 * time.Minute,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.ingest = commands.NewIngestCommands(f.ledger, f.settings, providers, f.clock, cfg, testBeginDate, logger)
	return f
}

type window struct{ Start, End time.Time }

// =============================================================================
// Ingest Tests
// =============================================================================

func TestIngestCommands_Ingest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("recent checkpoint is debounced", func(t *testing.T) {
		f := newIngestFixture(t, now)
		checkpoint := now.Add(-10 * time.Second)
		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)

		result, err := f.ingest.Ingest(ctx, f.provider)
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Equal(t, 0, result.RecordsWritten)
	})

	t.Run("missing checkpoint falls back to the begin date", func(t *testing.T) {
		f := newIngestFixture(t, now)
		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").Return("", false, nil)
		f.provider.EXPECT().MaxWindow().Return(time.Duration(0))

		var got window
		f.provider.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]commands.ProviderTransaction, error) {
				got = window{start, end}
				return nil, nil
			})
		f.settings.EXPECT().Set(ctx, "last_paypal_fetch", now.Format(time.RFC3339)).Return(nil)

		result, err := f.ingest.Ingest(ctx, f.provider)
		require.NoError(t, err)
		assert.Equal(t, testBeginDate, got.Start)
		assert.Equal(t, now, got.End)
		assert.Equal(t, now, result.NewCheckpoint)
	})

	t.Run("long range is split into bounded contiguous windows", func(t *testing.T) {
		f := newIngestFixture(t, now)
		checkpoint := now.Add(-100 * 24 * time.Hour)
		maxWindow := 31 * 24 * time.Hour

		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)
		f.provider.EXPECT().MaxWindow().Return(maxWindow)

		var windows []window
		f.provider.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).Times(4).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]commands.ProviderTransaction, error) {
				windows = append(windows, window{start, end})
				return nil, nil
			})
		f.settings.EXPECT().Set(ctx, "last_paypal_fetch", now.Format(time.RFC3339)).Return(nil)

		_, err := f.ingest.Ingest(ctx, f.provider)
		require.NoError(t, err)

		expected := []window{
			{Start: checkpoint, End: checkpoint.Add(maxWindow)},
			{Start: checkpoint.Add(maxWindow), End: checkpoint.Add(2 * maxWindow)},
			{Start: checkpoint.Add(2 * maxWindow), End: checkpoint.Add(3 * maxWindow)},
			{Start: checkpoint.Add(3 * maxWindow), End: now},
		}
		if diff := cmp.Diff(expected, windows); diff != "" {
			t.Errorf("fetch windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate rows are swallowed, the rest are written", func(t *testing.T) {
		f := newIngestFixture(t, now)
		checkpoint := now.Add(-time.Hour)
		txs := []commands.ProviderTransaction{
			{ResourceID: 1, Name: "BuyerA", OccurredAt: now.Add(-30 * time.Minute), Paid: 10},
			{ResourceID: 1, Name: "BuyerB", OccurredAt: now.Add(-20 * time.Minute), Paid: 10},
			{ResourceID: 2, Name: "BuyerA", OccurredAt: now.Add(-10 * time.Minute), Paid: 5},
		}

		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)
		f.provider.EXPECT().MaxWindow().Return(time.Duration(0))
		f.provider.EXPECT().Fetch(ctx, checkpoint, now).Return(txs, nil)

		dup := infra.WrapRepoErr("payment already recorded", errs.New("23505"), infra.KindDuplicateKey)
		gomock.InOrder(
			f.ledger.EXPECT().AddPayment(ctx, gomock.Any()).Return(nil),
			f.ledger.EXPECT().AddPayment(ctx, gomock.Any()).Return(dup),
			f.ledger.EXPECT().AddPayment(ctx, gomock.Any()).Return(nil),
		)
		f.settings.EXPECT().Set(ctx, "last_paypal_fetch", now.Format(time.RFC3339)).Return(nil)

		result, err := f.ingest.Ingest(ctx, f.provider)
		require.NoError(t, err)
		assert.Equal(t, 2, result.RecordsWritten)
	})

	t.Run("fetch failure leaves the checkpoint untouched", func(t *testing.T) {
		f := newIngestFixture(t, now)
		checkpoint := now.Add(-time.Hour)

		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)
		f.provider.EXPECT().MaxWindow().Return(time.Duration(0))
		f.provider.EXPECT().Fetch(ctx, checkpoint, now).Return(nil, errs.New("boom"))

		result, err := f.ingest.Ingest(ctx, f.provider)
		require.Error(t, err)
		assert.Equal(t, checkpoint, result.NewCheckpoint)
	})

	t.Run("expired credential is refreshed once and the range retried", func(t *testing.T) {
		f := newIngestFixture(t, now)
		checkpoint := now.Add(-time.Hour)

		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)
		f.provider.EXPECT().MaxWindow().Return(time.Duration(0))

		authErr := errs.Mark(errs.New("401"), commands.ErrProviderAuth)
		gomock.InOrder(
			f.provider.EXPECT().Fetch(ctx, checkpoint, now).Return(nil, authErr),
			f.provider.EXPECT().RefreshCredential(ctx).Return(nil),
			f.provider.EXPECT().Fetch(ctx, checkpoint, now).Return(nil, nil),
		)
		f.settings.EXPECT().Set(ctx, "last_paypal_fetch", now.Format(time.RFC3339)).Return(nil)

		result, err := f.ingest.Ingest(ctx, f.provider)
		require.NoError(t, err)
		assert.Equal(t, now, result.NewCheckpoint)
	})

	t.Run("failed refresh aborts the run", func(t *testing.T) {
		f := newIngestFixture(t, now)
		checkpoint := now.Add(-time.Hour)

		f.provider.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)
		f.provider.EXPECT().MaxWindow().Return(time.Duration(0))

		authErr := errs.Mark(errs.New("401"), commands.ErrProviderAuth)
		f.provider.EXPECT().Fetch(ctx, checkpoint, now).Return(nil, authErr)
		f.provider.EXPECT().RefreshCredential(ctx).Return(errs.New("bad credentials"))

		result, err := f.ingest.Ingest(ctx, f.provider)
		require.ErrorIs(t, err, commands.ErrProviderAuth)
		assert.Equal(t, checkpoint, result.NewCheckpoint)
	})
}

// =============================================================================
// IngestAll / Ready Tests
// =============================================================================

func TestIngestCommands_IngestAll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("uncredentialed provider is bootstrapped through the auth path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := providermock.NewMockPayPalAPI(ctrl)
		paypal := provider.NewPayPal(api)
		f := newIngestFixture(t, now, paypal)
		checkpoint := now.Add(-time.Hour)

		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").
			Return(checkpoint.Format(time.RFC3339), true, nil)
		gomock.InOrder(
			api.EXPECT().AccessToken(ctx).Return("tok-1", nil),
			api.EXPECT().Transactions(ctx, "tok-1", checkpoint, now).Return(nil, nil),
		)
		f.settings.EXPECT().Set(ctx, "last_paypal_fetch", now.Format(time.RFC3339)).Return(nil)

		require.False(t, paypal.Ready())
		require.NoError(t, f.ingest.IngestAll(ctx))
		assert.True(t, paypal.Ready())
		assert.True(t, f.ingest.Ready())
	})

	t.Run("one failing provider does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		failing := commandsmock.NewMockProvider(ctrl)
		working := commandsmock.NewMockProvider(ctrl)
		f := newIngestFixture(t, now, failing, working)

		failing.EXPECT().Name().Return("paypal").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_paypal_fetch").Return("", false, nil)
		failing.EXPECT().MaxWindow().Return(time.Duration(0))
		failing.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).Return(nil, errs.New("down"))

		working.EXPECT().Name().Return("stripe").AnyTimes()
		f.settings.EXPECT().Get(ctx, "last_stripe_fetch").Return("", false, nil)
		working.EXPECT().MaxWindow().Return(time.Duration(0))
		working.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		f.settings.EXPECT().Set(ctx, "last_stripe_fetch", now.Format(time.RFC3339)).Return(nil)

		err := f.ingest.IngestAll(ctx)
		assert.Error(t, err)
	})
}

func TestIngestCommands_Ready(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ready when any provider is ready", func(t *testing.T) {
		f := newIngestFixture(t, now)
		f.provider.EXPECT().Ready().Return(true)
		assert.True(t, f.ingest.Ready())
	})

	t.Run("not ready with no ready providers", func(t *testing.T) {
		f := newIngestFixture(t, now)
		f.provider.EXPECT().Ready().Return(false)
		assert.False(t, f.ingest.Ready())
	})
}
