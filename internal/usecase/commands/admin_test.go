//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
	commandsmock "spigot-link/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminCommands_Unlink(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unlink removes the link and reconciles roles down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := commandsmock.NewMockLedgerRepository(ctrl)
		roles := commandsmock.NewMockRoleCommands(ctrl)
		admin := commands.NewAdminCommands(ledger, roles, logger)

		ledger.EXPECT().Unlink(ctx, testUserID).Return(nil)
		roles.EXPECT().Reconcile(ctx, testUserID).Return(true, nil)

		changed, err := admin.Unlink(ctx, testUserID)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("unknown user maps to ErrLinkNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := commandsmock.NewMockLedgerRepository(ctrl)
		roles := commandsmock.NewMockRoleCommands(ctrl)
		admin := commands.NewAdminCommands(ledger, roles, logger)

		notFound := infra.WrapRepoErr("link not found", nil, infra.KindNotFound)
		ledger.EXPECT().Unlink(ctx, testUserID).Return(notFound)

		_, err := admin.Unlink(ctx, testUserID)
		assert.ErrorIs(t, err, commands.ErrLinkNotFound)
	})

	t.Run("role cleanup failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := commandsmock.NewMockLedgerRepository(ctrl)
		roles := commandsmock.NewMockRoleCommands(ctrl)
		admin := commands.NewAdminCommands(ledger, roles, logger)

		ledger.EXPECT().Unlink(ctx, testUserID).Return(nil)
		roles.EXPECT().Reconcile(ctx, testUserID).Return(false, errs.New("gateway down"))

		changed, err := admin.Unlink(ctx, testUserID)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}
