package impl_saga

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform"
	port_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/saga"
)

// Dispatcher routes consumed saga commands to their gateway and records every
// outcome as a ledger step. Errors never escape Handle: the ledger is the
// record of asynchronous outcomes.
type Dispatcher struct {
	ledger     port_persistence.TransactionLedger
	wallet     port_saga.WalletGateway
	payment    port_saga.PaymentGateway
	chargeback port_saga.ChargebackGateway
	clock      port_platform.Clock

	locks    *keyedMutex
	inflight sync.WaitGroup
}

func NewDispatcher(
	ledger port_persistence.TransactionLedger,
	wallet port_saga.WalletGateway,
	payment port_saga.PaymentGateway,
	chargeback port_saga.ChargebackGateway,
	clock port_platform.Clock,
) *Dispatcher {
	return &Dispatcher{
		ledger:     ledger,
		wallet:     wallet,
		payment:    payment,
		chargeback: chargeback,
		clock:      clock,
		locks:      newKeyedMutex(),
	}
}

// Handle is a messaging.Handler. It is called sequentially per partition.
func (d *Dispatcher) Handle(ctx context.Context, delivery messaging.Delivery) {
	msg := delivery.Message()

	cmd, err := DecodeCommand(msg.Payload)
	if err != nil {
		logger.Error("dropping undecodable saga message", err, logger.Fields{
			"message_id": msg.ID,
			"key":        msg.Key,
			"partition":  msg.Partition,
		})
		d.ack(ctx, delivery, msg.Key)
		return
	}

	switch cmd.Kind {
	case domain_transfer.KindWalletWithdraw:
		d.handleWithdraw(ctx, cmd.Withdraw)
		d.ack(ctx, delivery, cmd.TransactionID)
	case domain_transfer.KindPaymentTransfer:
		d.handlePayment(ctx, delivery, cmd)
	case domain_transfer.KindChargebackExecute:
		d.handleChargeback(ctx, cmd.Chargeback)
		d.ack(ctx, delivery, cmd.TransactionID)
	default:
		logger.Warn("dropping saga message with unknown kind", logger.Fields{"event_type": string(cmd.Kind)})
		d.ack(ctx, delivery, cmd.TransactionID)
	}
}

// Wait blocks until every in-flight payment execution has finished.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

func (d *Dispatcher) handleWithdraw(ctx context.Context, cmd *domain_transfer.WalletWithdrawCommand) {
	d.append(ctx, cmd.TransactionID, domain_transfer.TargetWallet, domain_transfer.StatusInProgress)
	status := d.wallet.Execute(ctx, cmd)
	d.append(ctx, cmd.TransactionID, domain_transfer.TargetWallet, status)
}

// handlePayment records IN_PROGRESS before returning and leaves the wait for
// the wallet leg to a separate goroutine, so the partition keeps flowing.
// The delivery is acked only once the terminal step is recorded.
func (d *Dispatcher) handlePayment(ctx context.Context, delivery messaging.Delivery, cmd domain_transfer.Command) {
	txID := cmd.TransactionID
	d.append(ctx, txID, domain_transfer.TargetPayment, domain_transfer.StatusInProgress)

	bg := context.WithoutCancel(ctx)

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		defer d.ack(bg, delivery, txID)

		status := d.payment.Execute(bg, cmd.Payment)

		unlock := d.locks.Lock(txID)
		defer unlock()

		d.append(bg, txID, domain_transfer.TargetPayment, status)
		if status != domain_transfer.StatusFailed {
			return
		}

		issuedAt := d.clock.Now().UTC()
		chargebackStatus := d.chargeback.PrepareChargeback(bg, txID, cmd.CorrelationID)
		d.appendAt(bg, txID, domain_transfer.TargetChargeback, chargebackStatus, issuedAt)
		if chargebackStatus == domain_transfer.StatusFailed {
			logger.Critical("chargeback could not be scheduled after payment failure", nil, logger.Fields{"transaction_id": txID})
		}
	}()
}

func (d *Dispatcher) handleChargeback(ctx context.Context, cmd *domain_transfer.ChargebackCommand) {
	fields := logger.Fields{"transaction_id": cmd.TransactionID}

	defer func() {
		if r := recover(); r != nil {
			logger.Critical("chargeback execution panicked", fmt.Errorf("%v", r), fields)
		}
	}()

	d.append(ctx, cmd.TransactionID, domain_transfer.TargetChargeback, domain_transfer.StatusInProgress)
	status := d.chargeback.Execute(ctx, cmd)
	d.append(ctx, cmd.TransactionID, domain_transfer.TargetChargeback, status)

	if status != domain_transfer.StatusCompleted {
		fields["status"] = string(status)
		logger.Critical("chargeback did not complete, manual intervention required", nil, fields)
	}
}

func (d *Dispatcher) append(ctx context.Context, txID string, target domain_transfer.TargetSystem, status domain_transfer.Status) {
	d.appendAt(ctx, txID, target, status, d.clock.Now().UTC())
}

func (d *Dispatcher) appendAt(ctx context.Context, txID string, target domain_transfer.TargetSystem, status domain_transfer.Status, at time.Time) {
	step, err := domain_transfer.NewStep(target, status, at)
	if err == nil {
		err = d.ledger.AppendStep(ctx, txID, step)
	}
	if err != nil {
		logger.Error("append saga step", err, logger.Fields{
			"transaction_id": txID,
			"target_system":  string(target),
			"status":         string(status),
		})
	}
}

func (d *Dispatcher) ack(ctx context.Context, delivery messaging.Delivery, key string) {
	if err := delivery.Ack(ctx); err != nil {
		logger.Error("ack saga message", err, logger.Fields{"key": key})
	}
}
