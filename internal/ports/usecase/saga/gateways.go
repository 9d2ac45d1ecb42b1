package port_saga

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

type PrepareParams struct {
	TransactionID string
	CorrelationID string
	Recipient     *domain_transfer.Recipient
	Amount        decimal.Decimal
}

// Prepare* publish a saga command and report PENDING on broker ack, FAILED
// otherwise. Execute* perform the side effect when the command is consumed.

type WalletGateway interface {
	PrepareWithdraw(ctx context.Context, p PrepareParams) domain_transfer.Status
	Execute(ctx context.Context, cmd *domain_transfer.WalletWithdrawCommand) domain_transfer.Status
}

type PaymentGateway interface {
	PrepareTransfer(ctx context.Context, p PrepareParams) domain_transfer.Status
	Execute(ctx context.Context, cmd *domain_transfer.PaymentTransferCommand) domain_transfer.Status
}

type ChargebackGateway interface {
	PrepareChargeback(ctx context.Context, transactionID, correlationID string) domain_transfer.Status
	Execute(ctx context.Context, cmd *domain_transfer.ChargebackCommand) domain_transfer.Status
}
