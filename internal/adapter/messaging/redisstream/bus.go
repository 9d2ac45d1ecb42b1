package redisstream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/messaging/partition"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	fieldKey     = "key"
	fieldPayload = "payload"
	headerPrefix = "h:"
)

type Options struct {
	Partitions   int
	Group        string
	Consumer     string
	Block        time.Duration
	Count        int64
	ClaimMinIdle time.Duration
}

func (o Options) withDefaults() Options {
	if o.Partitions <= 0 {
		o.Partitions = 1
	}
	if o.Group == "" {
		o.Group = "transfers"
	}
	if o.Consumer == "" {
		o.Consumer = "transfers-1"
	}
	if o.Block <= 0 {
		o.Block = 2 * time.Second
	}
	if o.Count <= 0 {
		o.Count = 16
	}
	if o.ClaimMinIdle <= 0 {
		o.ClaimMinIdle = 30 * time.Second
	}
	return o
}

// Bus maps each topic partition to its own stream, "<topic>:<n>", consumed by
// one group. Un-acked entries are reclaimed when a consumer starts.
type Bus struct {
	client redis.UniversalClient
	opts   Options
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewBus(client redis.UniversalClient, opts Options) *Bus {
	return &Bus{client: client, opts: opts.withDefaults()}
}

func streamName(topic string, p int) string {
	return fmt.Sprintf("%s:%d", topic, p)
}

func (b *Bus) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	stream := streamName(topic, partition.For(key, b.opts.Partitions))

	err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: encodeValues(key, payload, headers),
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", stream, err)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, topic string, handler messaging.Handler) error {
	for p := 0; p < b.opts.Partitions; p++ {
		if err := b.ensureGroup(ctx, streamName(topic, p)); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < b.opts.Partitions; p++ {
		p := p
		g.Go(func() error {
			return b.consume(gctx, topic, p, handler)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ctx.Err()
}

func (b *Bus) ensureGroup(ctx context.Context, stream string) error {
	err := b.client.XGroupCreateMkStream(ctx, stream, b.opts.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group on %s: %w", stream, err)
	}
	return nil
}

func (b *Bus) consume(ctx context.Context, topic string, p int, handler messaging.Handler) error {
	stream := streamName(topic, p)

	if err := b.reclaim(ctx, topic, p, handler); err != nil {
		return err
	}

	// An explicit id walks the entries already delivered to this consumer name;
	// ">" reads new ones.
	cursor := "0"
	for {
		if ctx.Err() != nil {
			return nil
		}

		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.opts.Group,
			Consumer: b.opts.Consumer,
			Streams:  []string{stream, cursor},
			Count:    b.opts.Count,
			Block:    b.opts.Block,
		}).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error("read stream", err, logger.Fields{"stream": stream})
			time.Sleep(b.opts.Block)
			continue
		}

		last := ""
		for _, s := range res {
			for _, xm := range s.Messages {
				b.deliver(ctx, topic, p, xm, handler)
				last = xm.ID
			}
		}
		if cursor != ">" {
			if last == "" {
				cursor = ">"
			} else {
				cursor = last
			}
		}
	}
}

func (b *Bus) reclaim(ctx context.Context, topic string, p int, handler messaging.Handler) error {
	stream := streamName(topic, p)
	start := "0-0"
	for {
		msgs, next, err := b.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   stream,
			Group:    b.opts.Group,
			Consumer: b.opts.Consumer,
			MinIdle:  b.opts.ClaimMinIdle,
			Start:    start,
			Count:    b.opts.Count,
		}).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("xautoclaim %s: %w", stream, err)
		}

		for _, xm := range msgs {
			b.deliver(ctx, topic, p, xm, handler)
		}
		if next == "0-0" || next == "" {
			return nil
		}
		start = next
	}
}

func (b *Bus) deliver(ctx context.Context, topic string, p int, xm redis.XMessage, handler messaging.Handler) {
	stream := streamName(topic, p)
	d := &delivery{client: b.client, stream: stream, group: b.opts.Group, id: xm.ID}

	msg, err := decodeMessage(topic, p, xm)
	if err != nil {
		logger.Error("dropping malformed stream entry", err, logger.Fields{"stream": stream, "entry_id": xm.ID})
		if ackErr := d.Ack(ctx); ackErr != nil {
			logger.Error("ack malformed stream entry", ackErr, logger.Fields{"stream": stream, "entry_id": xm.ID})
		}
		return
	}
	d.msg = msg

	handler(ctx, d)
}

type delivery struct {
	client redis.UniversalClient
	stream string
	group  string
	id     string
	msg    messaging.Message
}

func (d *delivery) Message() messaging.Message { return d.msg }

func (d *delivery) Ack(ctx context.Context) error {
	if err := d.client.XAck(ctx, d.stream, d.group, d.id).Err(); err != nil {
		return fmt.Errorf("xack %s %s: %w", d.stream, d.id, err)
	}
	return nil
}
