package impl_saga

import (
	"context"
	"errors"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
)

const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultWaitTimeout  = 5000 * time.Millisecond
)

var ErrWalletOutcomeTimeout = errors.New("saga: wallet outcome not observed before timeout")

// WalletOutcomeWaiter watches the ledger until the wallet leg of a transaction
// is COMPLETED or FAILED.
type WalletOutcomeWaiter struct {
	ledger   port_persistence.TransactionLedger
	interval time.Duration
	timeout  time.Duration
}

func NewWalletOutcomeWaiter(ledger port_persistence.TransactionLedger, interval, timeout time.Duration) *WalletOutcomeWaiter {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	return &WalletOutcomeWaiter{ledger: ledger, interval: interval, timeout: timeout}
}

// Wait checks immediately, then every interval, until timeout elapses from the
// first check. It returns COMPLETED or FAILED, or ErrWalletOutcomeTimeout.
func (w *WalletOutcomeWaiter) Wait(ctx context.Context, transactionID string) (domain_transfer.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	result := make(chan domain_transfer.Status, 1)
	go w.poll(ctx, transactionID, result)

	select {
	case status, ok := <-result:
		if ok {
			return status, nil
		}
		return "", ErrWalletOutcomeTimeout
	case <-ctx.Done():
		// poll closes result once its in-flight lookup returns; an outcome
		// it observed at the deadline still wins.
		if status, ok := <-result; ok {
			return status, nil
		}
		return "", ErrWalletOutcomeTimeout
	}
}

func (w *WalletOutcomeWaiter) poll(ctx context.Context, transactionID string, result chan<- domain_transfer.Status) {
	defer close(result)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		status, found, err := w.ledger.LatestStatus(ctx, transactionID, domain_transfer.TargetWallet)
		if err != nil && ctx.Err() == nil {
			logger.Warn("wallet outcome lookup failed", logger.Fields{
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
		}
		if found && (status == domain_transfer.StatusCompleted || status == domain_transfer.StatusFailed) {
			result <- status
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
