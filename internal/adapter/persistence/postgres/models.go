package postgres

import (
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

type transactionRecord struct {
	ID            string          `gorm:"primaryKey;type:varchar(64)"`
	OwnerClientID int64           `gorm:"not null;index:idx_transactions_owner_created,priority:1"`
	RecipientID   string          `gorm:"not null;type:varchar(64)"`
	RecipientName string          `gorm:"type:varchar(255)"`
	Amount        decimal.Decimal `gorm:"not null;type:numeric(20,4)"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_transactions_owner_created,priority:2,sort:desc"`
	Steps         []stepRecord    `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

func (transactionRecord) TableName() string { return "transactions" }

// stepRecord.Seq preserves insertion order between steps sharing a timestamp.
type stepRecord struct {
	Seq           int64     `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"not null;type:varchar(64);index:idx_steps_tx_target,priority:1"`
	TargetSystem  string    `gorm:"not null;type:varchar(16);index:idx_steps_tx_target,priority:2"`
	Status        string    `gorm:"not null;type:varchar(16)"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (stepRecord) TableName() string { return "transaction_steps" }

func toRecord(tx *domain_transfer.Transaction) transactionRecord {
	return transactionRecord{
		ID:            tx.ID(),
		OwnerClientID: tx.OwnerClientID(),
		RecipientID:   tx.RecipientID(),
		RecipientName: tx.RecipientName(),
		Amount:        tx.Amount(),
		CreatedAt:     tx.CreatedAt().UTC(),
	}
}

func toStepRecord(transactionID string, s domain_transfer.Step) stepRecord {
	return stepRecord{
		TransactionID: transactionID,
		TargetSystem:  string(s.TargetSystem),
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt.UTC(),
	}
}

// toDomain expects rec.Steps ordered by seq.
func toDomain(rec transactionRecord) (*domain_transfer.Transaction, error) {
	steps := make([]domain_transfer.Step, 0, len(rec.Steps))
	for _, s := range rec.Steps {
		target, err := domain_transfer.ParseTargetSystem(s.TargetSystem)
		if err != nil {
			return nil, err
		}
		status, err := domain_transfer.ParseStatus(s.Status)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain_transfer.Step{
			CreatedAt:    s.CreatedAt.UTC(),
			TargetSystem: target,
			Status:       status,
		})
	}

	return domain_transfer.Rehydrate(domain_transfer.NewTransactionParams{
		TransactionID: rec.ID,
		OwnerClientID: rec.OwnerClientID,
		RecipientID:   rec.RecipientID,
		RecipientName: rec.RecipientName,
		Amount:        rec.Amount,
		Now:           rec.CreatedAt.UTC(),
	}, steps), nil
}
