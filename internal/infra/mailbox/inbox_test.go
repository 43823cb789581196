//go:build unit

package mailbox_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"spigot-link/internal/infra/mailbox"
	"spigot-link/internal/pkg/config"
	mailboxmock "spigot-link/tests/mock/mailbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const forumSender = "Spigot Forums <forums@spigotmc.org>"

var inboxCfg = config.MailConfig{
	SenderAddress: forumSender,
	ScanDepth:     2,
}

const separator = "\n----------------------------------------------------------------------\n"

// notificationBody mimics a forum conversation notification mail.
func notificationBody(name, quoted string) string {
	var b strings.Builder
	b.WriteString("Hi PluginAuthor, " + name + " replied to a conversation with you.\n")
	b.WriteString(separator)
	b.WriteString(quoted)
	b.WriteString(separator)
	b.WriteString("To view the full conversation, visit the link below.\n")
	return b.String()
}

func TestInbox_Poll(t *testing.T) {
	ctx := context.Background()
	received := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("extracts the replying account and the quoted text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mailboxmock.NewMockMailClient(ctrl)
		inbox := mailbox.NewInbox(client, inboxCfg)
		require.True(t, inbox.Ready())

		client.EXPECT().RecentMessages(ctx, 2).Return([]mailbox.Message{
			{
				From:       forumSender,
				Subject:    "BuyerName started a conversation with you",
				Body:       notificationBody("BuyerName", "123456"),
				ReceivedAt: received,
			},
		}, nil)

		confirmations, err := inbox.Poll(ctx)
		require.NoError(t, err)
		require.Len(t, confirmations, 1)
		assert.Equal(t, "BuyerName", confirmations[0].Name)
		assert.Equal(t, "123456", confirmations[0].Body)
		assert.Equal(t, received, confirmations[0].ReceivedAt)
	})

	t.Run("ignores mail from other senders and unrelated subjects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mailboxmock.NewMockMailClient(ctrl)
		inbox := mailbox.NewInbox(client, inboxCfg)

		client.EXPECT().RecentMessages(ctx, 2).Return([]mailbox.Message{
			{
				From:    "spoofer@example.com",
				Subject: "BuyerName started a conversation with you",
				Body:    notificationBody("BuyerName", "123456"),
			},
			{
				From:    forumSender,
				Subject: "Weekly digest",
				Body:    notificationBody("BuyerName", "123456"),
			},
			{
				From:    forumSender,
				Subject: "New reply to your conversation",
				Body:    "mangled body with no separators",
			},
		}, nil)

		confirmations, err := inbox.Poll(ctx)
		require.NoError(t, err)
		assert.Empty(t, confirmations)
	})

	t.Run("nil client means not ready", func(t *testing.T) {
		inbox := mailbox.NewInbox(nil, inboxCfg)
		assert.False(t, inbox.Ready())
	})
}
