package postgres

import (
	"context"
	"errors"
	"fmt"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

func orderedSteps(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

func (l *Ledger) Create(ctx context.Context, tx *domain_transfer.Transaction) error {
	rec := toRecord(tx)
	for _, s := range tx.Steps() {
		rec.Steps = append(rec.Steps, toStepRecord(tx.ID(), s))
	}

	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return port_persistence.ErrAlreadyExists
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// AppendStep locks the parent row so appends to one transaction serialize.
func (l *Ledger) AppendStep(ctx context.Context, transactionID string, step domain_transfer.Step) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent transactionRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", transactionID).
			Take(&parent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return port_persistence.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock transaction: %w", err)
		}

		rec := toStepRecord(transactionID, step)
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("insert step: %w", err)
		}
		return nil
	})
}

func (l *Ledger) GetByID(ctx context.Context, transactionID string) (*domain_transfer.Transaction, error) {
	var rec transactionRecord
	err := l.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Where("id = ?", transactionID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return toDomain(rec)
}

func (l *Ledger) FindByOwner(ctx context.Context, q port_persistence.FindByOwnerQuery) (port_persistence.Page[*domain_transfer.Transaction], error) {
	out := port_persistence.Page[*domain_transfer.Transaction]{
		Items:    []*domain_transfer.Transaction{},
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	base := l.db.WithContext(ctx).Model(&transactionRecord{}).Where("owner_client_id = ?", q.OwnerClientID)
	if q.From != nil {
		base = base.Where("created_at >= ?", q.From.UTC())
	}
	if q.To != nil {
		base = base.Where("created_at < ?", q.To.UTC())
	}

	if err := base.Session(&gorm.Session{}).Count(&out.TotalItems).Error; err != nil {
		return out, fmt.Errorf("count transactions: %w", err)
	}

	var recs []transactionRecord
	err := base.Session(&gorm.Session{}).
		Preload("Steps", orderedSteps).
		Order("created_at DESC, id DESC").
		Offset(offset(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&recs).Error
	if err != nil {
		return out, fmt.Errorf("find transactions: %w", err)
	}

	for _, rec := range recs {
		tx, err := toDomain(rec)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, tx)
	}
	return out, nil
}

func (l *Ledger) LatestStatus(ctx context.Context, transactionID string, target domain_transfer.TargetSystem) (domain_transfer.Status, bool, error) {
	var step stepRecord
	err := l.db.WithContext(ctx).
		Where("transaction_id = ? AND target_system = ?", transactionID, string(target)).
		Order("created_at DESC, seq DESC").
		Limit(1).
		Take(&step).Error
	if err == nil {
		status, err := domain_transfer.ParseStatus(step.Status)
		return status, err == nil, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, fmt.Errorf("latest step: %w", err)
	}

	var n int64
	if err := l.db.WithContext(ctx).Model(&transactionRecord{}).Where("id = ?", transactionID).Count(&n).Error; err != nil {
		return "", false, fmt.Errorf("count transaction: %w", err)
	}
	if n == 0 {
		return "", false, port_persistence.ErrNotFound
	}
	return "", false, nil
}
