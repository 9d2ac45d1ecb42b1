package impl_saga

import (
	"context"
	"errors"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform"
)

type ChargebackGateway struct {
	commands commandPublisher
	ledger   port_persistence.TransactionLedger
	balances port_external.BalanceService
}

func NewChargebackGateway(
	pub messaging.Publisher,
	ids port_platform.IDGenerator,
	cfg PublishConfig,
	ledger port_persistence.TransactionLedger,
	balances port_external.BalanceService,
) *ChargebackGateway {
	return &ChargebackGateway{
		commands: commandPublisher{pub: pub, ids: ids, cfg: cfg},
		ledger:   ledger,
		balances: balances,
	}
}

func (g *ChargebackGateway) PrepareChargeback(ctx context.Context, transactionID, correlationID string) domain_transfer.Status {
	cmd := domain_transfer.NewChargebackCommand(transactionID)
	cmd.CorrelationID = correlationID
	return g.commands.publish(ctx, cmd)
}

// Execute credits the debited amount back to the owner's wallet.
func (g *ChargebackGateway) Execute(ctx context.Context, cmd *domain_transfer.ChargebackCommand) domain_transfer.Status {
	fields := logger.Fields{"transaction_id": cmd.TransactionID}

	tx, err := g.ledger.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			err = domain_transfer.ErrTransactionNotFound
		}
		logger.Error("chargeback could not load transaction", err, fields)
		return domain_transfer.StatusFailed
	}

	fields["client_id"] = tx.OwnerClientID()
	if err := g.balances.Credit(ctx, tx.OwnerClientID(), tx.Amount()); err != nil {
		logger.Error("chargeback credit failed", err, fields)
		return domain_transfer.StatusFailed
	}

	return domain_transfer.StatusCompleted
}
