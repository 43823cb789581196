package components

import (
	"context"
	"log/slog"

	"spigot-link/internal/infra/bridge"
	"spigot-link/internal/infra/mailbox"
	"spigot-link/internal/infra/provider"
	"spigot-link/internal/pkg/config"
	"spigot-link/internal/usecase/commands"

	"go.uber.org/fx"
)

// GatewayModule wires the external boundaries: the Discord bridge, the
// payment providers, and the forum mailbox.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewBridgeClient,
			fx.As(new(commands.RoleGateway)),
			fx.As(new(commands.Notifier)),
		),
		NewProviders,
		NewInbox,
	),
)

func NewBridgeClient(cfg config.Config) *bridge.Client {
	return bridge.NewClient(cfg.Bridge)
}

// NewProviders assembles the configured payment providers. A provider with no
// credentials configured is left out entirely rather than wired unready.
// Credentials are fetched on startup so the first sweep finds the providers
// ready; a failed fetch is retried through the ingestion auth path.
func NewProviders(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) []commands.Provider {
	var providers []commands.Provider
	if cfg.PayPal.ClientID != "" {
		providers = append(providers, provider.NewPayPal(provider.NewPayPalClient(cfg.PayPal)))
	}
	if cfg.Stripe.Secret != "" {
		providers = append(providers, provider.NewStripe(provider.NewStripeClient(cfg.Stripe), cfg.Stripe))
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, p := range providers {
				if p.Ready() {
					continue
				}
				if err := p.RefreshCredential(ctx); err != nil {
					logger.Warn("provider credential fetch on startup failed",
						"provider", p.Name(), "error", err.Error())
				}
			}
			return nil
		},
	})
	return providers
}

// NewInbox builds the mailbox confirmation channel. No IMAP transport ships
// with the service yet, so the inbox stays disabled until a MailClient is
// wired in; the interactive confirmation path is unaffected.
func NewInbox(cfg config.Config) *mailbox.Inbox {
	return mailbox.NewInbox(nil, cfg.Mail)
}
