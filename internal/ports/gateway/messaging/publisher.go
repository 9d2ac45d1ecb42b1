package messaging

import (
	"context"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderTransactionID = "x-transaction-id"
	HeaderEventType     = "x-event-type"
)

// Publisher returns only once the broker has acknowledged the message.
// Messages sharing a key are delivered in publish order.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}
