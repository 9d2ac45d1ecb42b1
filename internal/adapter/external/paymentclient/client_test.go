package paymentclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/external/paymentclient"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	source = port_external.PaymentSource{
		Name:    "ONTOP INC",
		Account: port_external.BankAccount{AccountNumber: "0245253419", RoutingNumber: "028444018", Currency: "USD"},
	}
	destination = port_external.PaymentDestination{
		Name:    "Grace Hopper",
		Account: port_external.BankAccount{AccountNumber: "000123", RoutingNumber: "021000021", Currency: "USD"},
	}
)

func TestExecutePayment_RequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments", r.URL.Path)

		var body struct {
			Source struct {
				Type              string `json:"type"`
				SourceInformation struct {
					Name string `json:"name"`
				} `json:"sourceInformation"`
				Account map[string]string `json:"account"`
			} `json:"source"`
			Destination struct {
				Name    string            `json:"name"`
				Account map[string]string `json:"account"`
			} `json:"destination"`
			Amount json.Number `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "COMPANY", body.Source.Type)
		assert.Equal(t, "ONTOP INC", body.Source.SourceInformation.Name)
		assert.Equal(t, "0245253419", body.Source.Account["accountNumber"])
		assert.Equal(t, "Grace Hopper", body.Destination.Name)
		assert.Equal(t, "021000021", body.Destination.Account["routingNumber"])
		assert.Equal(t, json.Number("90"), body.Amount)

		_, _ = w.Write([]byte(`{"requestInfo":{"status":"Processing"},"paymentInfo":{"amount":90,"id":"p-1"}}`))
	}))
	defer srv.Close()

	err := paymentclient.New(srv.URL, time.Second).ExecutePayment(context.Background(), source, destination, decimal.NewFromInt(90))
	require.NoError(t, err)
}

func TestExecutePayment_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"requestInfo":{"status":"Failed","error":"bank rejected payment"}}`))
	}))
	defer srv.Close()

	err := paymentclient.New(srv.URL, time.Second).ExecutePayment(context.Background(), source, destination, decimal.NewFromInt(1))

	var se *paymentclient.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)

	rejected := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"requestInfo":{"status":"Failed"},"paymentInfo":{"id":"p-2"}}`))
	}))
	defer rejected.Close()

	err = paymentclient.New(rejected.URL, time.Second).ExecutePayment(context.Background(), source, destination, decimal.NewFromInt(1))
	assert.Error(t, err)
}
