package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
)

const stripePageSize = 100

// StripeClient talks to the Stripe REST API and implements StripeAPI.
type StripeClient struct {
	cfg  config.StripeConfig
	http *http.Client
}

func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	return &StripeClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *StripeClient) ListCheckouts(ctx context.Context) ([]StripeCheckout, error) {
	var all []StripeCheckout
	after := ""
	for {
		q := url.Values{}
		q.Set("status", "complete")
		q.Set("limit", fmt.Sprint(stripePageSize))
		q.Add("expand[]", "data.payment_intent.latest_charge.balance_transaction")
		if after != "" {
			q.Set("starting_after", after)
		}

		var out struct {
			HasMore bool `json:"has_more"`
			Data    []struct {
				ID           string `json:"id"`
				PaymentLink  string `json:"payment_link"`
				Created      int64  `json:"created"`
				AmountTotal  int64  `json:"amount_total"`
				CustomFields []struct {
					Key  string `json:"key"`
					Text struct {
						Value string `json:"value"`
					} `json:"text"`
				} `json:"custom_fields"`
				PaymentIntent struct {
					LatestCharge struct {
						Refunded           bool `json:"refunded"`
						Captured           bool `json:"captured"`
						BalanceTransaction struct {
							Fee int64 `json:"fee"`
						} `json:"balance_transaction"`
					} `json:"latest_charge"`
				} `json:"payment_intent"`
			} `json:"data"`
		}
		if err := c.get(ctx, "/v1/checkout/sessions", q, &out); err != nil {
			return nil, err
		}

		for _, s := range out.Data {
			checkout := StripeCheckout{
				ID:            s.ID,
				PaymentLinkID: s.PaymentLink,
				CustomFields:  make(map[string]string, len(s.CustomFields)),
				Created:       time.Unix(s.Created, 0).UTC(),
				AmountCents:   s.AmountTotal,
				FeeCents:      s.PaymentIntent.LatestCharge.BalanceTransaction.Fee,
				Refunded:      s.PaymentIntent.LatestCharge.Refunded,
				FullyCaptured: s.PaymentIntent.LatestCharge.Captured,
			}
			for _, f := range s.CustomFields {
				checkout.CustomFields[f.Key] = f.Text.Value
			}
			all = append(all, checkout)
			after = s.ID
		}

		if !out.HasMore || len(out.Data) == 0 {
			return all, nil
		}
	}
}

func (c *StripeClient) PaymentLinks(ctx context.Context) (map[string]string, error) {
	links := make(map[string]string)
	after := ""
	for {
		q := url.Values{}
		q.Set("limit", fmt.Sprint(stripePageSize))
		if after != "" {
			q.Set("starting_after", after)
		}

		var out struct {
			HasMore bool `json:"has_more"`
			Data    []struct {
				ID  string `json:"id"`
				URL string `json:"url"`
			} `json:"data"`
		}
		if err := c.get(ctx, "/v1/payment_links", q, &out); err != nil {
			return nil, err
		}

		for _, l := range out.Data {
			links[l.ID] = l.URL
			after = l.ID
		}

		if !out.HasMore || len(out.Data) == 0 {
			return links, nil
		}
	}
}

func (c *StripeClient) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return errs.Wrap(err, "failed to build stripe request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "stripe request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errs.Mark(
				errs.New(fmt.Sprintf("stripe rejected the key: %s", string(raw))),
				ErrInvalidToken,
			)
		case http.StatusTooManyRequests:
			return errs.Mark(errs.New("stripe rate limit hit"), ErrRateLimited)
		}
		return errs.New(fmt.Sprintf("stripe returned %d: %s", resp.StatusCode, string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode stripe response")
	}
	return nil
}

var _ StripeAPI = (*StripeClient)(nil)
