package port_transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type InitiateTransferInput struct {
	RecipientID        string
	RequestingClientID int64
	Amount             decimal.NullDecimal
	CorrelationID      string
}

type InitiateTransferOutput struct {
	TransactionID string
	Status        string
	CreatedAt     time.Time
	CorrelationID string
}

// InitiateTransferUseCase starts a transfer saga. It returns once the wallet
// and payment commands are published; completion is observed through the ledger.
type InitiateTransferUseCase interface {
	Execute(ctx context.Context, input InitiateTransferInput) (InitiateTransferOutput, error)
}
