package walletclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	"github.com/shopspring/decimal"
)

// Client talks to the wallet service. A positive transaction amount debits the
// wallet and a negative one credits it.
type Client struct {
	baseURL string
	client  *http.Client
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
	UserID  int64           `json:"user_id"`
}

type transactionRequest struct {
	Amount json.Number `json:"amount"`
	UserID int64       `json:"user_id"`
}

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wallet service returned %d: %s", e.StatusCode, e.Body)
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetBalance(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	q := url.Values{"user_id": []string{strconv.FormatInt(clientID, 10)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/wallets/balance?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var out balanceResponse
	if err := c.do(req, &out); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return decimal.Zero, port_external.ErrWalletNotFound
		}
		return decimal.Zero, err
	}

	return out.Balance, nil
}

func (c *Client) Debit(ctx context.Context, clientID int64, amount decimal.Decimal) error {
	return c.transaction(ctx, clientID, amount)
}

func (c *Client) Credit(ctx context.Context, clientID int64, amount decimal.Decimal) error {
	return c.transaction(ctx, clientID, amount.Neg())
}

func (c *Client) transaction(ctx context.Context, clientID int64, amount decimal.Decimal) error {
	body, err := json.Marshal(transactionRequest{Amount: json.Number(amount.String()), UserID: clientID})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wallets/transactions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("wallet request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("wallet service response", logger.Fields{"path": req.URL.Path, "status": resp.StatusCode})

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
