package provider

import (
	"context"
	"sync"
	"time"

	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
)

// StripeCheckout is the decoded shape of one completed checkout session with
// its charge expanded.
type StripeCheckout struct {
	ID            string
	PaymentLinkID string
	CustomFields  map[string]string
	Created       time.Time
	AmountCents   int64
	FeeCents      int64
	Refunded      bool
	FullyCaptured bool
}

// StripeAPI is the external checkout-sessions client. ListCheckouts pages
// internally through the full completed-session history.
type StripeAPI interface {
	ListCheckouts(ctx context.Context) ([]StripeCheckout, error)
	// PaymentLinks maps payment link id -> public url.
	PaymentLinks(ctx context.Context) (map[string]string, error)
}

// Stripe resolves checkouts against the configured payment-link -> resource
// mapping. The API key is static, so RefreshCredential has nothing to do.
type Stripe struct {
	api StripeAPI
	cfg config.StripeConfig

	mu          sync.Mutex
	linkToRID   map[string]int64 // payment link id -> resource id
	linksLoaded bool
}

func NewStripe(api StripeAPI, cfg config.StripeConfig) *Stripe {
	return &Stripe{api: api, cfg: cfg}
}

func (s *Stripe) Name() string {
	return "stripe"
}

// Cursor-paginated internally; the ingestor hands over the whole range.
func (s *Stripe) MaxWindow() time.Duration {
	return 0
}

func (s *Stripe) Ready() bool {
	return s.cfg.Secret != ""
}

func (s *Stripe) RefreshCredential(_ context.Context) error {
	return nil
}

func (s *Stripe) Fetch(ctx context.Context, start, end time.Time) ([]commands.ProviderTransaction, error) {
	links, err := s.paymentLinks(ctx)
	if err != nil {
		return nil, err
	}

	checkouts, err := s.api.ListCheckouts(ctx)
	if err != nil {
		switch {
		case errs.Is(err, ErrInvalidToken):
			return nil, errs.Join(commands.ErrProviderAuth, err)
		case errs.Is(err, ErrRateLimited):
			return nil, errs.Join(commands.ErrProviderRateLimited, err)
		}
		return nil, errs.Wrap(err, "failed to fetch stripe checkouts")
	}

	var txs []commands.ProviderTransaction
	for _, c := range checkouts {
		if c.Created.Before(start) || c.Created.After(end) {
			continue
		}
		tx, ok := s.extract(c, links)
		if !ok {
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *Stripe) extract(c StripeCheckout, links map[string]int64) (commands.ProviderTransaction, bool) {
	if c.Refunded || !c.FullyCaptured {
		return commands.ProviderTransaction{}, false
	}

	rid, ok := links[c.PaymentLinkID]
	if !ok {
		return commands.ProviderTransaction{}, false
	}

	name, ok := c.CustomFields[s.cfg.CustomField]
	if !ok || name == "" {
		return commands.ProviderTransaction{}, false
	}

	return commands.ProviderTransaction{
		ResourceID: rid,
		Name:       name,
		OccurredAt: c.Created,
		Paid:       float64(c.AmountCents) / 100.0,
		// Negated to match the paypal fee convention in the ledger.
		Fee: -float64(c.FeeCents) / 100.0,
	}, true
}

// paymentLinks resolves the configured url -> resource mapping into link ids,
// fetched once and cached.
func (s *Stripe) paymentLinks(ctx context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.linksLoaded {
		return s.linkToRID, nil
	}

	byURL, err := s.api.PaymentLinks(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch stripe payment links")
	}

	s.linkToRID = make(map[string]int64)
	for linkID, url := range byURL {
		if rid, ok := s.cfg.PaymentLinks[url]; ok {
			s.linkToRID[linkID] = rid
		}
	}
	s.linksLoaded = true
	return s.linkToRID, nil
}
