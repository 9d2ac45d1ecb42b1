package messaging

import "context"

type Message struct {
	Topic     string
	Key       string
	Payload   []byte
	Headers   map[string]string
	Partition int
	ID        string
}

// Delivery is a received message. Un-acked deliveries may be redelivered.
type Delivery interface {
	Message() Message
	Ack(ctx context.Context) error
}

type Handler func(ctx context.Context, d Delivery)

// Subscriber calls handler sequentially per partition and blocks until ctx is done.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
}
