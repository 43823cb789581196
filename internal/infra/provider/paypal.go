// Package provider adapts payment-provider APIs onto the ingestion boundary.
// The HTTP clients themselves live behind the *API interfaces; this package
// owns credential state, pagination, and field extraction.
package provider

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
)

// Sentinels the external API clients return for transient conditions.
var (
	ErrInvalidToken = errs.New("provider token invalid or expired")
	ErrRateLimited  = errs.New("provider rate limited")
)

// PayPal caps transaction reports at 31 days per request.
const paypalMaxWindow = 31 * 24 * time.Hour

// PayPalTransaction is the already-decoded shape of one reporting API row.
type PayPalTransaction struct {
	TransactionID  string
	CustomField    string // checkout metadata, resource id after the last '|'
	ItemName       string // listing title with the buyer name in a '(...)' suffix
	InitiationDate time.Time
	Amount         float64
	Fee            float64
}

// PayPalAPI is the external reporting client (treated as a collaborator).
type PayPalAPI interface {
	Transactions(ctx context.Context, token string, start, end time.Time) ([]PayPalTransaction, error)
	AccessToken(ctx context.Context) (string, error)
}

type PayPal struct {
	api PayPalAPI

	mu    sync.Mutex
	token string
}

func NewPayPal(api PayPalAPI) *PayPal {
	return &PayPal{api: api}
}

func (p *PayPal) Name() string {
	return "paypal"
}

func (p *PayPal) MaxWindow() time.Duration {
	return paypalMaxWindow
}

func (p *PayPal) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token != ""
}

func (p *PayPal) RefreshCredential(ctx context.Context) error {
	token, err := p.api.AccessToken(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to fetch paypal access token")
	}
	p.mu.Lock()
	p.token = token
	p.mu.Unlock()
	return nil
}

func (p *PayPal) Fetch(ctx context.Context, start, end time.Time) ([]commands.ProviderTransaction, error) {
	p.mu.Lock()
	token := p.token
	p.mu.Unlock()

	if token == "" {
		return nil, commands.ErrProviderAuth
	}

	raw, err := p.api.Transactions(ctx, token, start, end)
	if err != nil {
		switch {
		case errs.Is(err, ErrInvalidToken):
			return nil, errs.Join(commands.ErrProviderAuth, err)
		case errs.Is(err, ErrRateLimited):
			return nil, errs.Join(commands.ErrProviderRateLimited, err)
		}
		return nil, errs.Wrap(err, "failed to fetch paypal transactions")
	}

	txs := make([]commands.ProviderTransaction, 0, len(raw))
	for _, t := range raw {
		tx, ok := extractPayPal(t)
		if !ok {
			// A malformed record is skipped, never the whole batch.
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func extractPayPal(t PayPalTransaction) (commands.ProviderTransaction, bool) {
	rid, ok := resourceIDFromCustomField(t.CustomField)
	if !ok {
		return commands.ProviderTransaction{}, false
	}
	name, ok := nameFromItemName(t.ItemName)
	if !ok {
		return commands.ProviderTransaction{}, false
	}
	if t.TransactionID == "" || t.InitiationDate.IsZero() {
		return commands.ProviderTransaction{}, false
	}
	return commands.ProviderTransaction{
		ResourceID: rid,
		Name:       name,
		OccurredAt: t.InitiationDate,
		Paid:       t.Amount,
		Fee:        t.Fee,
	}, true
}

// resourceIDFromCustomField parses the resource id out of the checkout custom
// field, which ends in "|<resource id>".
func resourceIDFromCustomField(field string) (int64, bool) {
	idx := strings.LastIndex(field, "|")
	if idx < 0 || idx+1 >= len(field) {
		return 0, false
	}
	rid, err := strconv.ParseInt(field[idx+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return rid, true
}

// nameFromItemName extracts the buyer's marketplace name from a listing title
// of the form "Some Plugin (Name)".
func nameFromItemName(item string) (string, bool) {
	if !strings.HasSuffix(item, ")") {
		return "", false
	}
	idx := strings.LastIndex(item, "(")
	if idx < 0 || idx+1 >= len(item)-1 {
		return "", false
	}
	return item[idx+1 : len(item)-1], true
}
