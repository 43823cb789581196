package commands

import (
	"context"
	"log/slog"
	"time"

	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/clock"
	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/pkg/identity"
)

var (
	ErrProviderAuth        = errs.New("provider authentication failed")
	ErrProviderRateLimited = errs.New("provider rate limited")
)

type IngestResult struct {
	RecordsWritten int
	NewCheckpoint  time.Time
	Skipped        bool // debounced, nothing fetched
}

type IngestCommands interface {
	// Ingest pulls provider transactions since the stored checkpoint and
	// writes them into the ledger. The checkpoint advances only after the
	// whole batch succeeded; an aborted run retries the same window on the
	// next tick, which is safe because writes are idempotent.
	Ingest(ctx context.Context, p Provider) (IngestResult, error)
	// IngestAll runs Ingest for every registered provider. One provider
	// failing does not stop the others.
	IngestAll(ctx context.Context) error
	Ready() bool
}

type ingestCommandsImpl struct {
	ledger    LedgerRepository
	settings  SettingsRepository
	providers []Provider
	clock     clock.Clock
	cfg       config.PromotionConfig
	beginDate time.Time
	logger    *slog.Logger
}

func NewIngestCommands(
	ledger LedgerRepository,
	settings SettingsRepository,
	providers []Provider,
	clk clock.Clock,
	cfg config.PromotionConfig,
	beginDate time.Time,
	logger *slog.Logger,
) IngestCommands {
	return &ingestCommandsImpl{
		ledger:    ledger,
		settings:  settings,
		providers: providers,
		clock:     clk,
		cfg:       cfg,
		beginDate: beginDate,
		logger:    logger,
	}
}

func (i *ingestCommandsImpl) Ingest(ctx context.Context, p Provider) (IngestResult, error) {
	checkpoint, err := i.checkpoint(ctx, p.Name())
	if err != nil {
		return IngestResult{}, err
	}

	now := i.clock.Now().UTC()

	// Avoid hammering the provider when a fetch just happened.
	if i.cfg.IngestDebounce > 0 && now.Sub(checkpoint) <= i.cfg.IngestDebounce {
		return IngestResult{NewCheckpoint: checkpoint, Skipped: true}, nil
	}

	written := 0
	for _, w := range splitWindows(checkpoint, now, p.MaxWindow()) {
		txs, err := i.fetchWithRetry(ctx, p, w.start, w.end)
		if err != nil {
			// Checkpoint untouched; the next scheduled run retries the
			// same window wholesale.
			return IngestResult{RecordsWritten: written, NewCheckpoint: checkpoint}, err
		}

		for _, tx := range txs {
			rec := PurchaseRecord{
				ResourceID: tx.ResourceID,
				Identity:   identity.Normalize(tx.Name),
				BoughtAt:   tx.OccurredAt,
				Paid:       tx.Paid,
				Fee:        tx.Fee,
				Provider:   p.Name(),
			}
			if err := i.ledger.AddPayment(ctx, rec); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					continue // already ingested
				}
				return IngestResult{RecordsWritten: written, NewCheckpoint: checkpoint}, err
			}
			written++
		}
	}

	if err := i.settings.Set(ctx, checkpointKey(p.Name()), now.Format(time.RFC3339)); err != nil {
		return IngestResult{RecordsWritten: written, NewCheckpoint: checkpoint}, err
	}

	if written > 0 {
		i.logger.Info("ingested provider transactions",
			"provider", p.Name(), "records", written, "since", checkpoint)
	}
	return IngestResult{RecordsWritten: written, NewCheckpoint: now}, nil
}

func (i *ingestCommandsImpl) IngestAll(ctx context.Context) error {
	var failures []error
	for _, p := range i.providers {
		// A provider without a credential is still attempted: its fetch
		// fails with ErrProviderAuth and the retry path below fetches the
		// missing credential. That is how paypal gets its first token.
		if _, err := i.Ingest(ctx, p); err != nil {
			i.logger.Warn("provider ingestion failed",
				"provider", p.Name(), "error", err.Error())
			failures = append(failures, err)
		}
	}
	return errs.Join(failures...)
}

func (i *ingestCommandsImpl) Ready() bool {
	for _, p := range i.providers {
		if p.Ready() {
			return true
		}
	}
	return false
}

// fetchWithRetry refreshes the provider credential once on an auth failure
// and retries the same range. A bounded retry, not recursive reentry.
func (i *ingestCommandsImpl) fetchWithRetry(ctx context.Context, p Provider, start, end time.Time) ([]ProviderTransaction, error) {
	txs, err := p.Fetch(ctx, start, end)
	if err == nil || !errs.Is(err, ErrProviderAuth) {
		return txs, err
	}

	i.logger.Info("refreshing provider credential", "provider", p.Name())
	if refreshErr := p.RefreshCredential(ctx); refreshErr != nil {
		return nil, errs.Join(ErrProviderAuth, refreshErr)
	}
	return p.Fetch(ctx, start, end)
}

func (i *ingestCommandsImpl) checkpoint(ctx context.Context, provider string) (time.Time, error) {
	raw, ok, err := i.settings.Get(ctx, checkpointKey(provider))
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return i.beginDate, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "corrupt ingestion checkpoint")
	}
	return t, nil
}

func checkpointKey(provider string) string {
	return "last_" + provider + "_fetch"
}

type window struct {
	start, end time.Time
}

// splitWindows covers [start, end] with consecutive sub-ranges no larger than
// max. No gaps, no overlaps; a zero max yields the whole range at once.
func splitWindows(start, end time.Time, max time.Duration) []window {
	if max <= 0 || end.Sub(start) <= max {
		return []window{{start: start, end: end}}
	}

	var windows []window
	for cur := start; cur.Before(end); {
		next := cur.Add(max)
		if next.After(end) {
			next = end
		}
		windows = append(windows, window{start: cur, end: next})
		cur = next
	}
	return windows
}
