package impl_saga_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/platform"
	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	impl_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/saga"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	gwmocks "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/mocks"
	port_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/saga"
	"go.uber.org/mock/gomock"
)

func newPublishingWalletGateway(ctrl *gomock.Controller) (*impl_saga.WalletGateway, *gwmocks.MockPublisher) {
	pub := gwmocks.NewMockPublisher(ctrl)
	cfg := impl_saga.PublishConfig{Topic: "cmds", Producer: "test"}
	return impl_saga.NewWalletGateway(pub, platform.UUIDGenerator{}, cfg, gwmocks.NewMockBalanceService(ctrl)), pub
}

func TestPublish_CorrelationHeaderDefaultsToTransactionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway, pub := newPublishingWalletGateway(ctrl)
	pub.EXPECT().Publish(gomock.Any(), "cmds", "tx-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, _ []byte, headers map[string]string) error {
			if got := headers[messaging.HeaderCorrelationID]; got != "tx-1" {
				t.Fatalf("expected correlation header tx-1, got %q", got)
			}
			if got := headers[messaging.HeaderTransactionID]; got != "tx-1" {
				t.Fatalf("expected transaction header tx-1, got %q", got)
			}
			return nil
		}).Times(1)

	status := gateway.PrepareWithdraw(context.Background(), port_saga.PrepareParams{
		TransactionID: "tx-1",
		Recipient:     testRecipient(t),
		Amount:        decimalOf("1000"),
	})
	if status != domain_transfer.StatusPending {
		t.Fatalf("expected PENDING, got %s", status)
	}
}

func TestPublish_CorrelationHeaderKeepsCallerValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway, pub := newPublishingWalletGateway(ctrl)
	pub.EXPECT().Publish(gomock.Any(), "cmds", "tx-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, _ []byte, headers map[string]string) error {
			if got := headers[messaging.HeaderCorrelationID]; got != "corr-9" {
				t.Fatalf("expected correlation header corr-9, got %q", got)
			}
			return nil
		}).Times(1)

	status := gateway.PrepareWithdraw(context.Background(), port_saga.PrepareParams{
		TransactionID: "tx-1",
		CorrelationID: "corr-9",
		Recipient:     testRecipient(t),
		Amount:        decimalOf("1000"),
	})
	if status != domain_transfer.StatusPending {
		t.Fatalf("expected PENDING, got %s", status)
	}
}

func TestPublish_BrokerErrorReportsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway, pub := newPublishingWalletGateway(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	status := gateway.PrepareWithdraw(context.Background(), port_saga.PrepareParams{
		TransactionID: "tx-1",
		Recipient:     testRecipient(t),
		Amount:        decimalOf("1000"),
	})
	if status != domain_transfer.StatusFailed {
		t.Fatalf("expected FAILED, got %s", status)
	}
}
