package impl_saga

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	port_platform "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform"
)

type PublishConfig struct {
	Topic    string
	Producer string
}

type commandPublisher struct {
	pub messaging.Publisher
	ids port_platform.IDGenerator
	cfg PublishConfig
}

// publish blocks until the broker acknowledges. It reports PENDING on ack and
// FAILED on any encoding or transport error.
func (p commandPublisher) publish(ctx context.Context, cmd domain_transfer.Command) domain_transfer.Status {
	fields := logger.Fields{
		"transaction_id": cmd.TransactionID,
		"correlation_id": cmd.CorrelationID,
		"event_type":     string(cmd.Kind),
	}

	payload, err := EncodeCommand(cmd, p.ids.NewUUID().String(), p.cfg.Producer)
	if err != nil {
		logger.Error("encode saga command", err, fields)
		return domain_transfer.StatusFailed
	}

	correlationID := cmd.CorrelationID
	if correlationID == "" {
		correlationID = cmd.TransactionID
	}
	headers := map[string]string{
		messaging.HeaderCorrelationID: correlationID,
		messaging.HeaderTransactionID: cmd.TransactionID,
		messaging.HeaderEventType:     string(cmd.Kind),
	}

	if err := p.pub.Publish(ctx, p.cfg.Topic, cmd.TransactionID, payload, headers); err != nil {
		logger.Error("publish saga command", err, fields)
		return domain_transfer.StatusFailed
	}

	return domain_transfer.StatusPending
}
