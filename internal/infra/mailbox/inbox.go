// Package mailbox turns forum notification mails into confirmation
// artifacts. The IMAP transport sits behind MailClient; this package only
// knows how the forum formats its conversation notifications.
package mailbox

import (
	"context"
	"strings"
	"time"

	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
)

const bodySeparator = "\n----------------------------------------------------------------------\n"

var notificationSubjects = []string{
	"started a conversation with you",
	"New reply to your conversation",
}

type Message struct {
	From       string
	Subject    string
	Body       string
	ReceivedAt time.Time
}

// MailClient is the external mailbox boundary.
type MailClient interface {
	RecentMessages(ctx context.Context, count int) ([]Message, error)
}

// Confirmation is one received reply attributed to a marketplace account.
type Confirmation struct {
	Name       string // sender's marketplace name, as it appears in the mail
	Body       string
	ReceivedAt time.Time
}

type Inbox struct {
	client MailClient
	cfg    config.MailConfig
}

func NewInbox(client MailClient, cfg config.MailConfig) *Inbox {
	return &Inbox{client: client, cfg: cfg}
}

func (i *Inbox) Ready() bool {
	return i.client != nil
}

// Poll scans the most recent messages for forum conversation notifications
// and extracts the replying account plus the quoted message text.
func (i *Inbox) Poll(ctx context.Context) ([]Confirmation, error) {
	messages, err := i.client.RecentMessages(ctx, i.cfg.ScanDepth)
	if err != nil {
		return nil, errs.Wrap(err, "failed to poll mailbox")
	}

	var confirmations []Confirmation
	for _, m := range messages {
		if m.From != i.cfg.SenderAddress {
			continue
		}
		if !isNotificationSubject(m.Subject) {
			continue
		}

		name, ok := senderName(m.Body)
		if !ok {
			continue
		}
		body, ok := quotedMessage(m.Body)
		if !ok {
			continue
		}

		confirmations = append(confirmations, Confirmation{
			Name:       name,
			Body:       body,
			ReceivedAt: m.ReceivedAt,
		})
	}
	return confirmations, nil
}

func isNotificationSubject(subject string) bool {
	for _, s := range notificationSubjects {
		if strings.Contains(subject, s) {
			return true
		}
	}
	return false
}

// senderName pulls the account name out of the greeting line, which reads
// "Hi <recipient>, <name> replied to ...".
func senderName(body string) (string, bool) {
	comma := strings.Index(body, ", ")
	if comma < 0 {
		return "", false
	}
	rest := body[comma+2:]

	space := strings.Index(rest, " ")
	if space <= 0 {
		return "", false
	}
	return rest[:space], true
}

// quotedMessage extracts the reply text between the first pair of separator
// rules in the notification body.
func quotedMessage(body string) (string, bool) {
	from := strings.Index(body, bodySeparator)
	if from < 0 {
		return "", false
	}
	from += len(bodySeparator)

	to := strings.Index(body[from:], bodySeparator)
	if to < 0 {
		return "", false
	}
	return body[from : from+to], true
}
