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

type WalletGateway struct {
	commands commandPublisher
	balances port_external.BalanceService
}

func NewWalletGateway(pub messaging.Publisher, ids port_platform.IDGenerator, cfg PublishConfig, balances port_external.BalanceService) *WalletGateway {
	return &WalletGateway{
		commands: commandPublisher{pub: pub, ids: ids, cfg: cfg},
		balances: balances,
	}
}

func (g *WalletGateway) PrepareWithdraw(ctx context.Context, p port_saga.PrepareParams) domain_transfer.Status {
	cmd := domain_transfer.NewWithdrawCommand(p.TransactionID, p.Recipient, p.Amount)
	cmd.CorrelationID = p.CorrelationID
	return g.commands.publish(ctx, cmd)
}

// Execute is the only place a wallet is debited.
func (g *WalletGateway) Execute(ctx context.Context, cmd *domain_transfer.WalletWithdrawCommand) domain_transfer.Status {
	if err := g.balances.Debit(ctx, cmd.OwnerClientID, cmd.Amount); err != nil {
		logger.Error("wallet debit failed", err, logger.Fields{
			"transaction_id": cmd.TransactionID,
			"client_id":      cmd.OwnerClientID,
		})
		return domain_transfer.StatusFailed
	}
	return domain_transfer.StatusCompleted
}
