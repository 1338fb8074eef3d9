// Package client is an HTTP implementation of store.Repository over the
// dashboard REST API. CLI tools use it so they get the same consistency
// model as the server's own store: write, then refetch in full.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dvloznov/budgetmentor/internal/model"
	"github.com/dvloznov/budgetmentor/internal/store"
)

// Client talks to a running API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListTransactions implements store.Repository.
func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &out); err != nil {
		return nil, fmt.Errorf("ListTransactions: %w", err)
	}
	return out, nil
}

// CreateTransaction implements store.Repository. The server assigns the ID
// when the transaction has none; it is copied back into t.
func (c *Client) CreateTransaction(ctx context.Context, t *model.Transaction) error {
	var resp struct {
		Transaction model.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transactions", t, &resp); err != nil {
		return fmt.Errorf("CreateTransaction: %w", err)
	}
	t.ID = resp.Transaction.ID
	return nil
}

// DeleteTransaction implements store.Repository.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil); err != nil {
		return fmt.Errorf("DeleteTransaction: %w", err)
	}
	return nil
}

// ListGoals implements store.Repository.
func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	var out []model.Goal
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &out); err != nil {
		return nil, fmt.Errorf("ListGoals: %w", err)
	}
	return out, nil
}

// CreateGoal implements store.Repository.
func (c *Client) CreateGoal(ctx context.Context, g *model.Goal) error {
	var created model.Goal
	if err := c.do(ctx, http.MethodPost, "/api/goals", g, &created); err != nil {
		return fmt.Errorf("CreateGoal: %w", err)
	}
	g.ID = created.ID
	return nil
}

// UpdateGoalAmount implements store.Repository.
func (c *Client) UpdateGoalAmount(ctx context.Context, id string, current float64) error {
	body := map[string]float64{"current_amount": current}
	if err := c.do(ctx, http.MethodPut, "/api/goals/"+id, body, nil); err != nil {
		return fmt.Errorf("UpdateGoalAmount: %w", err)
	}
	return nil
}

// DeleteGoal implements store.Repository.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/goals/"+id, nil, nil); err != nil {
		return fmt.Errorf("DeleteGoal: %w", err)
	}
	return nil
}

// do sends one request and decodes the response into out when non-nil. A 404
// maps to store.ErrNotFound; other non-2xx statuses surface the server's
// error message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, store.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Ensure Client implements the store interface.
var _ store.Repository = (*Client)(nil)
