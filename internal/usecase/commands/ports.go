package commands

import (
	"context"
	"time"

	"spigot-link/internal/pkg/identity"
)

// PurchaseRecord is one verified marketplace purchase. Rows are append-only;
// (ResourceID, Identity) is the uniqueness boundary.
type PurchaseRecord struct {
	ResourceID int64
	Identity   identity.Hash
	BoughtAt   time.Time
	Paid       float64
	Fee        float64
	Provider   string
}

type LedgerRepository interface {
	AddPayment(ctx context.Context, rec PurchaseRecord) error
	HasPurchase(ctx context.Context, id identity.Hash) (bool, error)
	IsIdentityLinked(ctx context.Context, id identity.Hash) (bool, error)
	IsUserLinked(ctx context.Context, userID int64) (bool, error)
	Link(ctx context.Context, userID int64, id identity.Hash) error
	Unlink(ctx context.Context, userID int64) error
	PurchasedResourceIDs(ctx context.Context, userID int64) ([]int64, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ProviderTransaction is a provider-agnostic view of one settled payment.
// Field extraction from raw provider payloads happens inside the adapters;
// transactions that are missing required fields never reach the ingestor.
type ProviderTransaction struct {
	ResourceID int64
	Name       string // marketplace account name as entered at checkout
	OccurredAt time.Time
	Paid       float64
	Fee        float64
}

// Provider is the payment-provider boundary. Fetch errors caused by an
// expired credential must be marked with ErrProviderAuth so the ingestor can
// refresh once and retry the same range.
type Provider interface {
	Name() string
	// MaxWindow bounds a single Fetch date range. Zero means the provider
	// paginates internally (cursor based) and takes the whole range at once.
	MaxWindow() time.Duration
	Fetch(ctx context.Context, start, end time.Time) ([]ProviderTransaction, error)
	RefreshCredential(ctx context.Context) error
	Ready() bool
}

// MessageRef identifies an outbound notification so its content can be
// edited when the promotion concludes.
type MessageRef string

// Notifier is the out-of-band channel that carries the verification code to
// the user (an email send or an interactive prompt).
type Notifier interface {
	DeliverCode(ctx context.Context, userID int64, name, code string) (MessageRef, error)
	Update(ctx context.Context, userID int64, ref MessageRef, text string) error
}

// RoleGateway is the Discord membership boundary.
type RoleGateway interface {
	Roles(ctx context.Context, userID int64) ([]int64, error)
	AddRole(ctx context.Context, userID, roleID int64) error
	RemoveRole(ctx context.Context, userID, roleID int64) error
	MembersWithRole(ctx context.Context, roleID int64) ([]int64, error)
	Ready() bool
}
