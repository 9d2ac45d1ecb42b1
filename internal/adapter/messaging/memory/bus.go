package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/messaging/partition"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	"github.com/google/uuid"
)

// Bus is an in-process partitioned message bus. Un-acked messages are not
// redelivered.
type Bus struct {
	partitions int
	buffer     int

	mu     sync.Mutex
	topics map[string][]chan messaging.Message
}

func NewBus(partitions, buffer int) *Bus {
	if partitions <= 0 {
		partitions = 1
	}
	if buffer <= 0 {
		buffer = 256
	}
	return &Bus{partitions: partitions, buffer: buffer, topics: make(map[string][]chan messaging.Message)}
}

func (b *Bus) channels(topic string) []chan messaging.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	chs, ok := b.topics[topic]
	if !ok {
		chs = make([]chan messaging.Message, b.partitions)
		for i := range chs {
			chs[i] = make(chan messaging.Message, b.buffer)
		}
		b.topics[topic] = chs
	}
	return chs
}

func (b *Bus) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	p := partition.For(key, b.partitions)

	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}
	body := make([]byte, len(payload))
	copy(body, payload)

	msg := messaging.Message{
		Topic:     topic,
		Key:       key,
		Payload:   body,
		Headers:   h,
		Partition: p,
		ID:        uuid.NewString(),
	}

	select {
	case b.channels(topic)[p] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) Subscribe(ctx context.Context, topic string, handler messaging.Handler) error {
	var wg sync.WaitGroup
	for _, ch := range b.channels(topic) {
		wg.Add(1)
		go func(ch <-chan messaging.Message) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case msg := <-ch:
					handler(ctx, &delivery{msg: msg})
				}
			}
		}(ch)
	}

	wg.Wait()
	return ctx.Err()
}

type delivery struct {
	msg   messaging.Message
	acked atomic.Bool
}

func (d *delivery) Message() messaging.Message { return d.msg }

func (d *delivery) Ack(context.Context) error {
	d.acked.Store(true)
	return nil
}
