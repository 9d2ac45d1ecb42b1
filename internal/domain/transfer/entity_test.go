package domain_transfer_test

import (
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTransaction(t *testing.T, now time.Time) *domain_transfer.Transaction {
	t.Helper()

	tx, err := domain_transfer.New(domain_transfer.NewTransactionParams{
		TransactionID: uuid.NewString(),
		OwnerClientID: 42,
		RecipientID:   uuid.NewString(),
		RecipientName: "Ada Lovelace",
		Amount:        decimal.RequireFromString("100.00"),
		Now:           now,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return tx
}

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates transaction with no steps", func(t *testing.T) {
		tx := newTransaction(t, now)

		if tx.OwnerClientID() != 42 {
			t.Errorf("expected owner 42, got %d", tx.OwnerClientID())
		}

		if !tx.Amount().Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected amount 100, got %s", tx.Amount())
		}

		if !tx.CreatedAt().Equal(now) {
			t.Errorf("expected created at %v, got %v", now, tx.CreatedAt())
		}

		if len(tx.Steps()) != 0 {
			t.Errorf("expected no steps, got %d", len(tx.Steps()))
		}
	})

	t.Run("defaults created at to now", func(t *testing.T) {
		tx := newTransaction(t, time.Time{})
		if tx.CreatedAt().IsZero() {
			t.Fatalf("expected created at to be set")
		}
	})

	tests := []struct {
		name   string
		params domain_transfer.NewTransactionParams
		want   error
	}{
		{
			name:   "empty transaction id",
			params: domain_transfer.NewTransactionParams{RecipientID: "r", OwnerClientID: 1},
			want:   domain_transfer.ErrInvalidTransaction,
		},
		{
			name:   "empty recipient id",
			params: domain_transfer.NewTransactionParams{TransactionID: "t", OwnerClientID: 1},
			want:   domain_transfer.ErrInvalidTransaction,
		},
		{
			name:   "non positive owner",
			params: domain_transfer.NewTransactionParams{TransactionID: "t", RecipientID: "r"},
			want:   domain_transfer.ErrInvalidClientID,
		},
		{
			name: "negative amount",
			params: domain_transfer.NewTransactionParams{
				TransactionID: "t", RecipientID: "r", OwnerClientID: 1,
				Amount: decimal.NewFromInt(-1),
			},
			want: domain_transfer.ErrIllegalAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain_transfer.New(tt.params)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTransaction_LatestStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no step for target", func(t *testing.T) {
		tx := newTransaction(t, base)
		tx.AppendStep(domain_transfer.Step{CreatedAt: base, TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusPending})

		if _, ok := tx.LatestStatus(domain_transfer.TargetPayment); ok {
			t.Fatalf("expected no payment status")
		}
	})

	t.Run("latest timestamp wins", func(t *testing.T) {
		tx := newTransaction(t, base)
		tx.AppendStep(domain_transfer.Step{CreatedAt: base.Add(2 * time.Second), TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusCompleted})
		tx.AppendStep(domain_transfer.Step{CreatedAt: base, TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusPending})

		got, ok := tx.LatestStatus(domain_transfer.TargetWallet)
		if !ok || got != domain_transfer.StatusCompleted {
			t.Fatalf("expected COMPLETED, got %v (found=%v)", got, ok)
		}
	})

	t.Run("equal timestamps resolve to last appended", func(t *testing.T) {
		tx := newTransaction(t, base)
		tx.AppendStep(domain_transfer.Step{CreatedAt: base, TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusInProgress})
		tx.AppendStep(domain_transfer.Step{CreatedAt: base, TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusFailed})

		got, _ := tx.LatestStatus(domain_transfer.TargetWallet)
		if got != domain_transfer.StatusFailed {
			t.Fatalf("expected FAILED, got %v", got)
		}
	})

	t.Run("other targets are ignored", func(t *testing.T) {
		tx := newTransaction(t, base)
		tx.AppendStep(domain_transfer.Step{CreatedAt: base, TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusPending})
		tx.AppendStep(domain_transfer.Step{CreatedAt: base.Add(time.Minute), TargetSystem: domain_transfer.TargetPayment, Status: domain_transfer.StatusFailed})

		got, _ := tx.LatestStatus(domain_transfer.TargetWallet)
		if got != domain_transfer.StatusPending {
			t.Fatalf("expected PENDING, got %v", got)
		}
	})
}

func TestTransaction_StepsIsACopy(t *testing.T) {
	tx := newTransaction(t, time.Now().UTC())
	tx.AppendStep(domain_transfer.Step{CreatedAt: time.Now().UTC(), TargetSystem: domain_transfer.TargetWallet, Status: domain_transfer.StatusPending})

	steps := tx.Steps()
	steps[0].Status = domain_transfer.StatusFailed

	if tx.Steps()[0].Status != domain_transfer.StatusPending {
		t.Fatalf("expected stored step to be unchanged")
	}

	clone := tx.Clone()
	clone.AppendStep(domain_transfer.Step{CreatedAt: time.Now().UTC(), TargetSystem: domain_transfer.TargetPayment, Status: domain_transfer.StatusPending})
	if len(tx.Steps()) != 1 {
		t.Fatalf("expected clone append not to leak, got %d steps", len(tx.Steps()))
	}
}

func TestTransaction_ValidateOwnership(t *testing.T) {
	tx := newTransaction(t, time.Now().UTC())

	if err := tx.ValidateOwnership(42); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := tx.ValidateOwnership(7); !errors.Is(err, domain_transfer.ErrUnauthorizedAccess) {
		t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
	}
}

func TestNewStep(t *testing.T) {
	if _, err := domain_transfer.NewStep("ledger", domain_transfer.StatusPending, time.Time{}); !errors.Is(err, domain_transfer.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	if _, err := domain_transfer.NewStep(domain_transfer.TargetWallet, "DONE", time.Time{}); !errors.Is(err, domain_transfer.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	step, err := domain_transfer.NewStep(domain_transfer.TargetChargeback, domain_transfer.StatusCompleted, time.Time{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if step.CreatedAt.IsZero() {
		t.Fatalf("expected step time to default to now")
	}
}
