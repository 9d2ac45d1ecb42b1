package impl_saga

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	port_platform "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform"
	port_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/saga"
)

type PaymentGateway struct {
	commands commandPublisher
	rail     port_external.PaymentRail
	waiter   *WalletOutcomeWaiter
	source   port_external.PaymentSource
}

// NewPaymentGateway builds the gateway. source is the company account every
// payment is drawn from.
func NewPaymentGateway(
	pub messaging.Publisher,
	ids port_platform.IDGenerator,
	cfg PublishConfig,
	rail port_external.PaymentRail,
	waiter *WalletOutcomeWaiter,
	source port_external.PaymentSource,
) *PaymentGateway {
	return &PaymentGateway{
		commands: commandPublisher{pub: pub, ids: ids, cfg: cfg},
		rail:     rail,
		waiter:   waiter,
		source:   source,
	}
}

func (g *PaymentGateway) PrepareTransfer(ctx context.Context, p port_saga.PrepareParams) domain_transfer.Status {
	cmd := domain_transfer.NewPaymentCommand(p.TransactionID, p.Recipient, p.Amount)
	cmd.CorrelationID = p.CorrelationID
	return g.commands.publish(ctx, cmd)
}

// Execute never calls the payment rail before the wallet leg is COMPLETED.
// A FAILED wallet leg or a wait timeout yields CANCELED.
func (g *PaymentGateway) Execute(ctx context.Context, cmd *domain_transfer.PaymentTransferCommand) domain_transfer.Status {
	fields := logger.Fields{"transaction_id": cmd.TransactionID}

	walletStatus, err := g.waiter.Wait(ctx, cmd.TransactionID)
	if err != nil {
		logger.Warn("wallet outcome unknown, payment canceled", fields)
		return domain_transfer.StatusCanceled
	}
	if walletStatus == domain_transfer.StatusFailed {
		logger.Info("wallet debit failed, payment canceled", fields)
		return domain_transfer.StatusCanceled
	}

	destination := port_external.PaymentDestination{
		Name:                   cmd.RecipientName,
		NationalIdentification: cmd.NationalIdentification,
		Account: port_external.BankAccount{
			AccountNumber: cmd.AccountNumber,
			RoutingNumber: cmd.RoutingNumber,
			Currency:      g.source.Account.Currency,
		},
	}

	if err := g.rail.ExecutePayment(ctx, g.source, destination, cmd.Amount); err != nil {
		logger.Error("payment rail failed after wallet debit", err, fields)
		return domain_transfer.StatusFailed
	}

	return domain_transfer.StatusCompleted
}
