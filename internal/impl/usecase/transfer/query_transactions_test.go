package impl_transfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	impl_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/transfer"
	gwmocks "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/mocks"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	port_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/transfer"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func storedTransaction(t *testing.T, id string, owner int64) *domain_transfer.Transaction {
	t.Helper()
	tx, err := domain_transfer.New(domain_transfer.NewTransactionParams{
		TransactionID: id,
		OwnerClientID: owner,
		RecipientID:   testRecipientID,
		RecipientName: "Grace Hopper",
		Amount:        decimal.RequireFromString("100"),
		Now:           testNow,
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}
	tx.AppendStep(domain_transfer.Step{CreatedAt: testNow, TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusPending})
	return tx
}

func TestGetTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := gwmocks.NewMockTransactionLedger(ctrl)
	svc := impl_transfer.NewGetTransactionUsecaseImpl(ledger)

	ledger.EXPECT().GetByID(gomock.Any(), "tx-1").Return(storedTransaction(t, "tx-1", testOwner), nil).Times(2)
	ledger.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, port_persistence.ErrNotFound)

	out, err := svc.Execute(context.Background(), port_transfer.GetTransactionInput{TransactionID: "tx-1", RequestingClientID: testOwner})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Steps) != 1 || out.Steps[0].TargetSystem != "wallet" || out.Steps[0].Status != "PENDING" {
		t.Fatalf("unexpected steps %+v", out.Steps)
	}

	_, err = svc.Execute(context.Background(), port_transfer.GetTransactionInput{TransactionID: "tx-1", RequestingClientID: 99})
	if !errors.Is(err, domain_transfer.ErrUnauthorizedAccess) {
		t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
	}

	_, err = svc.Execute(context.Background(), port_transfer.GetTransactionInput{TransactionID: "missing", RequestingClientID: testOwner})
	if !errors.Is(err, domain_transfer.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestListTransactions_InvalidPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := gwmocks.NewMockTransactionLedger(ctrl)
	ledger.EXPECT().FindByOwner(gomock.Any(), gomock.Any()).Times(0)
	svc := impl_transfer.NewListTransactionsUsecaseImpl(ledger)

	for _, in := range []port_transfer.ListTransactionsInput{
		{OwnerClientID: testOwner, Page: -1, PageSize: 10},
		{OwnerClientID: testOwner, Page: 0, PageSize: 0},
		{OwnerClientID: testOwner, Page: 0, PageSize: 101},
	} {
		if _, err := svc.Execute(context.Background(), in); !errors.Is(err, impl_transfer.ErrInvalidPagination) {
			t.Fatalf("expected ErrInvalidPagination for %+v, got %v", in, err)
		}
	}
}

func TestListTransactions_DateFilterIsUTCDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := gwmocks.NewMockTransactionLedger(ctrl)
	svc := impl_transfer.NewListTransactionsUsecaseImpl(ledger)

	date := time.Date(2026, 1, 9, 15, 30, 0, 0, time.UTC)

	ledger.EXPECT().FindByOwner(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q port_persistence.FindByOwnerQuery) (port_persistence.Page[*domain_transfer.Transaction], error) {
			wantFrom := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
			if q.From == nil || !q.From.Equal(wantFrom) {
				t.Fatalf("expected from %v, got %v", wantFrom, q.From)
			}
			if q.To == nil || !q.To.Equal(wantFrom.AddDate(0, 0, 1)) {
				t.Fatalf("expected to %v, got %v", wantFrom.AddDate(0, 0, 1), q.To)
			}
			return port_persistence.Page[*domain_transfer.Transaction]{
				Items:      []*domain_transfer.Transaction{storedTransaction(t, "tx-1", testOwner)},
				Page:       q.Page,
				PageSize:   q.PageSize,
				TotalItems: 11,
			}, nil
		})

	out, err := svc.Execute(context.Background(), port_transfer.ListTransactionsInput{
		OwnerClientID: testOwner,
		Date:          &date,
		Page:          0,
		PageSize:      10,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", out.TotalPages)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.Items))
	}
}
