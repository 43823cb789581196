package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
)

const paypalPageSize = 500

// PayPalClient talks to the PayPal reporting REST API and implements
// PayPalAPI. Tokens are owned by the PayPal adapter, not here.
type PayPalClient struct {
	cfg  config.PayPalConfig
	http *http.Client
}

func NewPayPalClient(cfg config.PayPalConfig) *PayPalClient {
	return &PayPalClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *PayPalClient) AccessToken(ctx context.Context) (string, error) {
	form := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", form)
	if err != nil {
		return "", errs.Wrap(err, "failed to build paypal token request")
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "paypal token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", paypalStatusErr(resp)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode paypal token response")
	}
	if out.AccessToken == "" {
		return "", errs.New("paypal returned an empty access token")
	}
	return out.AccessToken, nil
}

func (c *PayPalClient) Transactions(ctx context.Context, token string, start, end time.Time) ([]PayPalTransaction, error) {
	var all []PayPalTransaction
	for page := 1; ; page++ {
		rows, totalPages, err := c.transactionsPage(ctx, token, start, end, page)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if page >= totalPages {
			return all, nil
		}
	}
}

func (c *PayPalClient) transactionsPage(ctx context.Context, token string, start, end time.Time, page int) ([]PayPalTransaction, int, error) {
	q := url.Values{}
	q.Set("start_date", start.UTC().Format(time.RFC3339))
	q.Set("end_date", end.UTC().Format(time.RFC3339))
	q.Set("fields", "all")
	q.Set("page_size", strconv.Itoa(paypalPageSize))
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/v1/reporting/transactions?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to build paypal transactions request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errs.Wrap(err, "paypal transactions request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, paypalStatusErr(resp)
	}

	var out struct {
		TotalPages         int `json:"total_pages"`
		TransactionDetails []struct {
			TransactionInfo struct {
				TransactionID             string `json:"transaction_id"`
				CustomField               string `json:"custom_field"`
				TransactionInitiationDate string `json:"transaction_initiation_date"`
				TransactionAmount         struct {
					Value string `json:"value"`
				} `json:"transaction_amount"`
				FeeAmount struct {
					Value string `json:"value"`
				} `json:"fee_amount"`
			} `json:"transaction_info"`
			CartInfo struct {
				ItemDetails []struct {
					ItemName string `json:"item_name"`
				} `json:"item_details"`
			} `json:"cart_info"`
		} `json:"transaction_details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, 0, errs.Wrap(err, "failed to decode paypal transactions response")
	}

	rows := make([]PayPalTransaction, 0, len(out.TransactionDetails))
	for _, d := range out.TransactionDetails {
		info := d.TransactionInfo
		t := PayPalTransaction{
			TransactionID: info.TransactionID,
			CustomField:   info.CustomField,
		}
		if len(d.CartInfo.ItemDetails) > 0 {
			t.ItemName = d.CartInfo.ItemDetails[0].ItemName
		}
		if when, err := time.Parse(time.RFC3339, info.TransactionInitiationDate); err == nil {
			t.InitiationDate = when
		}
		t.Amount, _ = strconv.ParseFloat(info.TransactionAmount.Value, 64)
		t.Fee, _ = strconv.ParseFloat(info.FeeAmount.Value, 64)
		rows = append(rows, t)
	}
	return rows, max(out.TotalPages, 1), nil
}

func paypalStatusErr(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		strings.Contains(string(raw), "invalid_token"):
		return errs.Mark(
			errs.New(fmt.Sprintf("paypal rejected the token: %s", string(raw))),
			ErrInvalidToken,
		)
	case resp.StatusCode == http.StatusTooManyRequests:
		return errs.Mark(
			errs.New("paypal rate limit hit"),
			ErrRateLimited,
		)
	}
	return errs.New(fmt.Sprintf("paypal returned %d: %s", resp.StatusCode, string(raw)))
}

var _ PayPalAPI = (*PayPalClient)(nil)
