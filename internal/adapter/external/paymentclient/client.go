package paymentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	"github.com/shopspring/decimal"
)

const sourceTypeCompany = "COMPANY"

type Client struct {
	baseURL string
	client  *http.Client
}

type accountData struct {
	AccountNumber string `json:"accountNumber"`
	Currency      string `json:"currency"`
	RoutingNumber string `json:"routingNumber"`
}

type sourceInformation struct {
	Name string `json:"name"`
}

type sourceData struct {
	Type              string            `json:"type"`
	SourceInformation sourceInformation `json:"sourceInformation"`
	Account           accountData       `json:"account"`
}

type destinationData struct {
	Name    string      `json:"name"`
	Account accountData `json:"account"`
}

type paymentRequest struct {
	Source      sourceData      `json:"source"`
	Destination destinationData `json:"destination"`
	Amount      json.Number     `json:"amount"`
}

type paymentResponse struct {
	RequestInfo struct {
		Status string `json:"status"`
	} `json:"requestInfo"`
	PaymentInfo struct {
		Amount decimal.Decimal `json:"amount"`
		ID     string          `json:"id"`
	} `json:"paymentInfo"`
}

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("payment service returned %d: %s", e.StatusCode, e.Body)
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) ExecutePayment(ctx context.Context, source port_external.PaymentSource, destination port_external.PaymentDestination, amount decimal.Decimal) error {
	body, err := json.Marshal(paymentRequest{
		Source: sourceData{
			Type:              sourceTypeCompany,
			SourceInformation: sourceInformation{Name: source.Name},
			Account:           toAccount(source.Account),
		},
		Destination: destinationData{
			Name:    destination.Name,
			Account: toAccount(destination.Account),
		},
		Amount: json.Number(amount.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/payments", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Response bodies carry account data; only the status is logged.
	logger.Info("payment service response", logger.Fields{"status": resp.StatusCode})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out paymentResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	if strings.EqualFold(out.RequestInfo.Status, "failed") {
		return fmt.Errorf("payment %s rejected", out.PaymentInfo.ID)
	}

	return nil
}

func toAccount(a port_external.BankAccount) accountData {
	return accountData{
		AccountNumber: a.AccountNumber,
		Currency:      a.Currency,
		RoutingNumber: a.RoutingNumber,
	}
}
