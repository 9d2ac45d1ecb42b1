package rest

import (
	"time"

	port_recipient "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/recipient"
	port_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/transfer"
	"github.com/shopspring/decimal"
)

type transferRequest struct {
	RecipientID string              `json:"recipient_id"`
	Amount      decimal.NullDecimal `json:"amount"`
}

type transferResponse struct {
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type stepResponse struct {
	CreatedAt    time.Time `json:"created_at"`
	TargetSystem string    `json:"target_system"`
	Status       string    `json:"status"`
}

type transactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	ClientID      int64           `json:"client_id"`
	RecipientID   string          `json:"recipient_id"`
	RecipientName string          `json:"recipient_name"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	Steps         []stepResponse  `json:"steps"`
}

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type recipientRequest struct {
	Name                   string `json:"name"`
	RoutingNumber          string `json:"routing_number"`
	NationalIdentification string `json:"national_identification"`
	AccountNumber          string `json:"account_number"`
}

type recipientResponse struct {
	ID                     string          `json:"id"`
	ClientID               int64           `json:"client_id"`
	Name                   string          `json:"name"`
	RoutingNumber          string          `json:"routing_number"`
	NationalIdentification string          `json:"national_identification"`
	AccountNumber          string          `json:"account_number"`
	Fee                    decimal.Decimal `json:"fee"`
	CreatedAt              time.Time       `json:"created_at"`
}

func toTransactionResponse(o port_transfer.TransactionOutput) transactionResponse {
	steps := make([]stepResponse, 0, len(o.Steps))
	for _, s := range o.Steps {
		steps = append(steps, stepResponse{CreatedAt: s.CreatedAt, TargetSystem: s.TargetSystem, Status: s.Status})
	}
	return transactionResponse{
		TransactionID: o.TransactionID,
		ClientID:      o.OwnerClientID,
		RecipientID:   o.RecipientID,
		RecipientName: o.RecipientName,
		Amount:        o.Amount,
		CreatedAt:     o.CreatedAt,
		Steps:         steps,
	}
}

func toRecipientResponse(o port_recipient.RecipientOutput) recipientResponse {
	return recipientResponse{
		ID:                     o.ID,
		ClientID:               o.OwnerClientID,
		Name:                   o.Name,
		RoutingNumber:          o.RoutingNumber,
		NationalIdentification: o.NationalIdentification,
		AccountNumber:          o.AccountNumber,
		Fee:                    o.Fee,
		CreatedAt:              o.CreatedAt,
	}
}
