package postgres

import (
	"fmt"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomain_KeepsSeqOrderAndTieBreak(t *testing.T) {
	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	rec := transactionRecord{
		ID:            "tx-1",
		OwnerClientID: 3,
		RecipientID:   "r-1",
		RecipientName: "Ada",
		Amount:        decimal.RequireFromString("12.3400"),
		CreatedAt:     at,
		Steps: []stepRecord{
			{Seq: 1, TransactionID: "tx-1", TargetSystem: "wallet", Status: "IN_PROGRESS", CreatedAt: at},
			{Seq: 2, TransactionID: "tx-1", TargetSystem: "wallet", Status: "COMPLETED", CreatedAt: at},
		},
	}

	tx, err := toDomain(rec)
	require.NoError(t, err)
	assert.True(t, tx.Amount().Equal(decimal.RequireFromString("12.34")))

	status, ok := tx.LatestStatus(domain_transfer.TargetWallet)
	assert.True(t, ok)
	assert.Equal(t, domain_transfer.StatusCompleted, status)

	back := toRecord(tx)
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, rec.OwnerClientID, back.OwnerClientID)
}

func TestToDomain_RejectsUnknownValues(t *testing.T) {
	rec := transactionRecord{ID: "tx", Steps: []stepRecord{{TargetSystem: "ledger", Status: "PENDING"}}}
	_, err := toDomain(rec)
	assert.ErrorIs(t, err, domain_transfer.ErrInvalidTarget)

	rec.Steps[0] = stepRecord{TargetSystem: "wallet", Status: "DONE"}
	_, err = toDomain(rec)
	assert.ErrorIs(t, err, domain_transfer.ErrInvalidStatus)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("boom")))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, offset(0, 10))
	assert.Equal(t, 20, offset(2, 10))
	assert.Equal(t, 0, offset(-1, 10))
}
