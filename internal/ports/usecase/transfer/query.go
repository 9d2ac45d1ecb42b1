package port_transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type StepOutput struct {
	CreatedAt    time.Time
	TargetSystem string
	Status       string
}

type TransactionOutput struct {
	TransactionID string
	OwnerClientID int64
	RecipientID   string
	RecipientName string
	Amount        decimal.Decimal
	CreatedAt     time.Time
	Steps         []StepOutput
}

type GetTransactionInput struct {
	TransactionID      string
	RequestingClientID int64
}

type GetTransactionUseCase interface {
	Execute(ctx context.Context, input GetTransactionInput) (TransactionOutput, error)
}

type ListTransactionsInput struct {
	OwnerClientID int64
	// Date restricts results to one UTC calendar day.
	Date     *time.Time
	Page     int
	PageSize int
}

type ListTransactionsOutput struct {
	Items      []TransactionOutput
	Page       int
	PageSize   int
	TotalPages int
}

type ListTransactionsUseCase interface {
	Execute(ctx context.Context, input ListTransactionsInput) (ListTransactionsOutput, error)
}
