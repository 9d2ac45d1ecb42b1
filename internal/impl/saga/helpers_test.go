package impl_saga_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	impl_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/saga"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOwner int64 = 42

func testRecipient(t *testing.T) *domain_transfer.Recipient {
	t.Helper()
	r, err := domain_transfer.NewRecipient(domain_transfer.NewRecipientParams{
		ID:                     "rcp-1",
		OwnerClientID:          testOwner,
		Name:                   "Grace Hopper",
		RoutingNumber:          "021000021",
		NationalIdentification: "123456789",
		AccountNumber:          "000123",
		Fee:                    decimal.RequireFromString("0.1"),
	})
	require.NoError(t, err)
	return r
}

type fakeDelivery struct {
	msg   messaging.Message
	acks  atomic.Int32
	acked chan struct{}
}

func newDelivery(t *testing.T, cmd domain_transfer.Command) *fakeDelivery {
	t.Helper()
	payload, err := impl_saga.EncodeCommand(cmd, "msg", "test")
	require.NoError(t, err)
	return rawDelivery(cmd.TransactionID, payload)
}

func rawDelivery(key string, payload []byte) *fakeDelivery {
	return &fakeDelivery{
		msg:   messaging.Message{Topic: "cmds", Key: key, Payload: payload},
		acked: make(chan struct{}, 16),
	}
}

func (d *fakeDelivery) Message() messaging.Message { return d.msg }

func (d *fakeDelivery) Ack(context.Context) error {
	d.acks.Add(1)
	d.acked <- struct{}{}
	return nil
}

func (d *fakeDelivery) waitAck(t *testing.T) {
	t.Helper()
	select {
	case <-d.acked:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery was not acked")
	}
}

type decimalMatcher struct{ want decimal.Decimal }

func decimalEq(v string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(v)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "decimal " + m.want.String() }

func statuses(tx *domain_transfer.Transaction, target domain_transfer.TargetSystem) []domain_transfer.Status {
	var out []domain_transfer.Status
	for _, s := range tx.Steps() {
		if s.TargetSystem == target {
			out = append(out, s.Status)
		}
	}
	return out
}

func decimalOf(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
