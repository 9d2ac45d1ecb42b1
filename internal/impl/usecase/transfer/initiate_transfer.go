package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform"
	port_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/saga"
	port_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/transfer"
)

type InitiateTransferUsecaseImpl struct {
	recipients port_persistence.RecipientDirectory
	balances   port_external.BalanceService
	ledger     port_persistence.TransactionLedger
	wallet     port_saga.WalletGateway
	payment    port_saga.PaymentGateway
	chargeback port_saga.ChargebackGateway
	clock      port_platform.Clock
	ids        port_platform.IDGenerator
}

func NewInitiateTransferUsecaseImpl(
	recipients port_persistence.RecipientDirectory,
	balances port_external.BalanceService,
	ledger port_persistence.TransactionLedger,
	wallet port_saga.WalletGateway,
	payment port_saga.PaymentGateway,
	chargeback port_saga.ChargebackGateway,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
) *InitiateTransferUsecaseImpl {
	return &InitiateTransferUsecaseImpl{
		recipients: recipients,
		balances:   balances,
		ledger:     ledger,
		wallet:     wallet,
		payment:    payment,
		chargeback: chargeback,
		clock:      clock,
		ids:        ids,
	}
}

func (u *InitiateTransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.InitiateTransferInput) (port_transfer.InitiateTransferOutput, error) {
	if strings.TrimSpace(in.RecipientID) == "" || in.RequestingClientID <= 0 {
		return port_transfer.InitiateTransferOutput{}, ErrInvalidInput
	}

	txID := u.ids.NewUUID().String()

	recipient, err := u.recipients.FindByID(ctx, in.RecipientID, in.RequestingClientID)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrRecipientNotFound
		}
		return port_transfer.InitiateTransferOutput{}, fmt.Errorf("resolve recipient: %w", err)
	}

	if !recipient.IsOwnedBy(in.RequestingClientID) {
		return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrOwnershipViolation
	}

	transferAmount, err := recipient.ApplyFee(in.Amount)
	if err != nil {
		return port_transfer.InitiateTransferOutput{}, err
	}
	withdrawAmount := in.Amount.Decimal

	available, err := u.balances.GetBalance(ctx, recipient.OwnerClientID())
	if err != nil {
		if errors.Is(err, port_external.ErrWalletNotFound) {
			return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrWalletNotFound
		}
		return port_transfer.InitiateTransferOutput{}, fmt.Errorf("read balance: %w", err)
	}

	balance := domain_transfer.Balance{Amount: available}
	if err := balance.CheckSufficientBalance(in.Amount); err != nil {
		return port_transfer.InitiateTransferOutput{}, err
	}

	now := u.clock.Now().UTC()
	tx, err := domain_transfer.New(domain_transfer.NewTransactionParams{
		TransactionID: txID,
		OwnerClientID: recipient.OwnerClientID(),
		RecipientID:   recipient.ID(),
		RecipientName: recipient.Name(),
		Amount:        withdrawAmount,
		Now:           now,
	})
	if err != nil {
		return port_transfer.InitiateTransferOutput{}, err
	}

	if err := u.ledger.Create(ctx, tx); err != nil {
		return port_transfer.InitiateTransferOutput{}, fmt.Errorf("create transaction: %w", err)
	}

	fields := logger.Fields{
		"transaction_id": txID,
		"correlation_id": in.CorrelationID,
		"client_id":      in.RequestingClientID,
	}

	// Publish steps carry the time the command was issued, so a consumer step
	// recorded first still sorts after them.
	issuedAt := u.clock.Now().UTC()
	walletStatus := u.wallet.PrepareWithdraw(ctx, port_saga.PrepareParams{
		TransactionID: txID,
		CorrelationID: in.CorrelationID,
		Recipient:     recipient,
		Amount:        withdrawAmount,
	})
	if err := u.appendStep(ctx, txID, domain_transfer.TargetWallet, walletStatus, issuedAt); err != nil {
		return port_transfer.InitiateTransferOutput{}, err
	}
	if walletStatus == domain_transfer.StatusFailed {
		logger.Warn("withdraw command not published", fields)
		return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrTransferFailed
	}

	issuedAt = u.clock.Now().UTC()
	paymentStatus := u.payment.PrepareTransfer(ctx, port_saga.PrepareParams{
		TransactionID: txID,
		CorrelationID: in.CorrelationID,
		Recipient:     recipient,
		Amount:        transferAmount,
	})
	if err := u.appendStep(ctx, txID, domain_transfer.TargetPayment, paymentStatus, issuedAt); err != nil {
		return port_transfer.InitiateTransferOutput{}, err
	}
	if paymentStatus == domain_transfer.StatusFailed {
		// The withdraw command is already queued and will debit the wallet.
		issuedAt = u.clock.Now().UTC()
		chargebackStatus := u.chargeback.PrepareChargeback(ctx, txID, in.CorrelationID)
		if err := u.appendStep(ctx, txID, domain_transfer.TargetChargeback, chargebackStatus, issuedAt); err != nil {
			return port_transfer.InitiateTransferOutput{}, err
		}
		if chargebackStatus == domain_transfer.StatusFailed {
			logger.Critical("chargeback command not published after payment publish failure", nil, fields)
		} else {
			logger.Warn("payment command not published, chargeback scheduled", fields)
		}
		return port_transfer.InitiateTransferOutput{}, domain_transfer.ErrTransferFailed
	}

	logger.Info("transfer initiated", fields)

	return port_transfer.InitiateTransferOutput{
		TransactionID: txID,
		Status:        string(domain_transfer.StatusPending),
		CreatedAt:     tx.CreatedAt(),
		CorrelationID: in.CorrelationID,
	}, nil
}

func (u *InitiateTransferUsecaseImpl) appendStep(ctx context.Context, txID string, target domain_transfer.TargetSystem, status domain_transfer.Status, at time.Time) error {
	step, err := domain_transfer.NewStep(target, status, at)
	if err != nil {
		return err
	}
	if err := u.ledger.AppendStep(ctx, txID, step); err != nil {
		return fmt.Errorf("append %s step: %w", target, err)
	}
	return nil
}
