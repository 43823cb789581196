// Package bridge is the REST client for the companion bot process that owns
// the Discord gateway connection. The service never talks to Discord
// directly; role mutations and user notifications go through the bridge.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.BridgeConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Ready() bool {
	return c.baseURL != ""
}

func (c *Client) Roles(ctx context.Context, userID int64) ([]int64, error) {
	var out struct {
		Roles []string `json:"roles"`
	}
	err := c.call(ctx, http.MethodGet,
		fmt.Sprintf("/members/%d/roles", userID), nil, &out)
	if err != nil {
		return nil, err
	}
	return parseSnowflakes(out.Roles)
}

func (c *Client) AddRole(ctx context.Context, userID, roleID int64) error {
	return c.call(ctx, http.MethodPut,
		fmt.Sprintf("/members/%d/roles/%d", userID, roleID), nil, nil)
}

func (c *Client) RemoveRole(ctx context.Context, userID, roleID int64) error {
	return c.call(ctx, http.MethodDelete,
		fmt.Sprintf("/members/%d/roles/%d", userID, roleID), nil, nil)
}

func (c *Client) MembersWithRole(ctx context.Context, roleID int64) ([]int64, error) {
	var out struct {
		Members []string `json:"members"`
	}
	err := c.call(ctx, http.MethodGet,
		fmt.Sprintf("/roles/%d/members", roleID), nil, &out)
	if err != nil {
		return nil, err
	}
	return parseSnowflakes(out.Members)
}

// DeliverCode DMs the verification code to the user. The returned reference
// identifies the sent message so the flow can edit it later.
func (c *Client) DeliverCode(ctx context.Context, userID int64, name, code string) (commands.MessageRef, error) {
	in := map[string]string{
		"spigot_name": name,
		"code":        code,
	}
	var out struct {
		MessageID string `json:"message_id"`
	}
	err := c.call(ctx, http.MethodPost,
		fmt.Sprintf("/members/%d/promotion-code", userID), in, &out)
	if err != nil {
		return "", err
	}
	return commands.MessageRef(out.MessageID), nil
}

func (c *Client) Update(ctx context.Context, userID int64, ref commands.MessageRef, text string) error {
	in := map[string]string{"content": text}
	return c.call(ctx, http.MethodPatch,
		fmt.Sprintf("/members/%d/messages/%s", userID, ref), in, nil)
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode bridge request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to build bridge request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "bridge request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("bridge returned %d: %s", resp.StatusCode, string(raw)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode bridge response")
		}
	}
	return nil
}

func parseSnowflakes(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errs.Wrap(err, "invalid snowflake from bridge")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var _ commands.RoleGateway = (*Client)(nil)
var _ commands.Notifier = (*Client)(nil)
