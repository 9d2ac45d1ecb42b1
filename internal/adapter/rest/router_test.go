package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	storemem "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/persistence/memory"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/platform"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/rest"
	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	impl_recipient "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/recipient"
	impl_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/transfer"
	port_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initiateFunc func(ctx context.Context, in port_transfer.InitiateTransferInput) (port_transfer.InitiateTransferOutput, error)

func (f initiateFunc) Execute(ctx context.Context, in port_transfer.InitiateTransferInput) (port_transfer.InitiateTransferOutput, error) {
	return f(ctx, in)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func newServer(t *testing.T, initiate initiateFunc) (*httptest.Server, *storemem.Ledger) {
	t.Helper()

	ledger := storemem.NewLedger()
	recipients := storemem.NewRecipientDirectory()
	ids := platform.UUIDGenerator{}
	clock := platform.SystemClock{}

	h := &rest.Handlers{
		Initiate:         initiate,
		GetTransaction:   impl_transfer.NewGetTransactionUsecaseImpl(ledger),
		ListTransactions: impl_transfer.NewListTransactionsUsecaseImpl(ledger),
		CreateRecipient:  impl_recipient.NewCreateRecipientUsecaseImpl(recipients, clock, ids, decimal.RequireFromString("0.1")),
		GetRecipient:     impl_recipient.NewGetRecipientUsecaseImpl(recipients),
		ListRecipients:   impl_recipient.NewListRecipientsUsecaseImpl(recipients),
	}

	srv := httptest.NewServer(rest.NewRouter(h, 5*time.Second))
	t.Cleanup(srv.Close)
	return srv, ledger
}

func do(t *testing.T, method, url, clientID, body string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if clientID != "" {
		req.Header.Set(rest.HeaderClientID, clientID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestPostTransfer(t *testing.T) {
	var got port_transfer.InitiateTransferInput
	srv, _ := newServer(t, func(_ context.Context, in port_transfer.InitiateTransferInput) (port_transfer.InitiateTransferOutput, error) {
		got = in
		if in.Amount.Decimal.GreaterThan(decimal.NewFromInt(1000)) {
			return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrInsufficientBalance
		}
		return port_transfer.InitiateTransferOutput{TransactionID: "tx-1", Status: "PENDING", CreatedAt: time.Now().UTC()}, nil
	})

	status, env := do(t, http.MethodPost, srv.URL+"/transfers", "42", `{"recipient_id":"r-1","amount":100.25}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"transaction_id":"tx-1"`)
	assert.Equal(t, int64(42), got.RequestingClientID)
	assert.True(t, got.Amount.Valid)
	assert.True(t, got.Amount.Decimal.Equal(decimal.RequireFromString("100.25")))
	assert.NotEmpty(t, got.CorrelationID)

	status, _ = do(t, http.MethodPost, srv.URL+"/transfers", "42", `{"recipient_id":"r-1","amount":5000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = do(t, http.MethodPost, srv.URL+"/transfers", "", `{"recipient_id":"r-1","amount":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPostTransfer_NullAmountReachesUseCase(t *testing.T) {
	srv, _ := newServer(t, func(_ context.Context, in port_transfer.InitiateTransferInput) (port_transfer.InitiateTransferOutput, error) {
		if !in.Amount.Valid {
			return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrIllegalAmount
		}
		return port_transfer.InitiateTransferOutput{}, nil
	})

	status, env := do(t, http.MethodPost, srv.URL+"/transfers", "42", `{"recipient_id":"r-1","amount":null}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestTransactionsEndpoints(t *testing.T) {
	srv, ledger := newServer(t, nil)

	created := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tx, err := domain_transfer.New(domain_transfer.NewTransactionParams{
			TransactionID: fmt.Sprintf("tx-%d", i),
			OwnerClientID: 42,
			RecipientID:   "r-1",
			RecipientName: "Grace",
			Amount:        decimal.NewFromInt(10),
			Now:           created.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		require.NoError(t, ledger.Create(context.Background(), tx))
	}

	status, env := do(t, http.MethodGet, srv.URL+"/transactions/tx-1", "42", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"transaction_id":"tx-1"`)

	status, _ = do(t, http.MethodGet, srv.URL+"/transactions/tx-1", "7", "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/transactions/missing", "42", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env = do(t, http.MethodGet, srv.URL+"/transactions?date=2026-04-02&page=0&page_size=2", "42", "")
	require.Equal(t, http.StatusOK, status)

	var page struct {
		Items []struct {
			TransactionID string `json:"transaction_id"`
		} `json:"items"`
		TotalPages int `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, "tx-2", page.Items[0].TransactionID)
	assert.Equal(t, 2, page.TotalPages)

	status, _ = do(t, http.MethodGet, srv.URL+"/transactions?page_size=500", "42", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/transactions?date=02-04-2026", "42", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRecipientsEndpoints(t *testing.T) {
	srv, _ := newServer(t, nil)

	status, env := do(t, http.MethodPost, srv.URL+"/recipients", "42",
		`{"name":"Grace Hopper","routing_number":"021000021","national_identification":"123456789","account_number":"000123"}`)
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		ID  string `json:"id"`
		Fee string `json:"fee"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "0.1", created.Fee)

	status, _ = do(t, http.MethodGet, srv.URL+"/recipients/"+created.ID, "42", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/recipients/"+created.ID, "43", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, http.MethodPost, srv.URL+"/recipients", "42", `{"name":"","routing_number":"1","national_identification":"2","account_number":"3"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = do(t, http.MethodGet, srv.URL+"/recipients?page=0&size=10", "42", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), created.ID)
}
