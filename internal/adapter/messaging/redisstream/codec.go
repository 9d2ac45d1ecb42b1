package redisstream

import (
	"errors"
	"strings"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	"github.com/redis/go-redis/v9"
)

var ErrMalformedEntry = errors.New("malformed stream entry")

func encodeValues(key string, payload []byte, headers map[string]string) map[string]any {
	values := make(map[string]any, len(headers)+2)
	values[fieldKey] = key
	values[fieldPayload] = string(payload)
	for k, v := range headers {
		values[headerPrefix+k] = v
	}
	return values
}

func decodeMessage(topic string, p int, xm redis.XMessage) (messaging.Message, error) {
	msg := messaging.Message{
		Topic:     topic,
		Partition: p,
		ID:        xm.ID,
		Headers:   map[string]string{},
	}

	payload, ok := xm.Values[fieldPayload].(string)
	if !ok {
		return msg, ErrMalformedEntry
	}
	msg.Payload = []byte(payload)
	msg.Key, _ = xm.Values[fieldKey].(string)

	for k, v := range xm.Values {
		name, found := strings.CutPrefix(k, headerPrefix)
		if !found {
			continue
		}
		if s, ok := v.(string); ok {
			msg.Headers[name] = s
		}
	}
	return msg, nil
}
