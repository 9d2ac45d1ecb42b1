package port_persistence

import (
	"context"
	"errors"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
)

var (
	ErrNotFound      = errors.New("persistence: not found")
	ErrAlreadyExists = errors.New("persistence: already exists")
)

type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int64
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// FindByOwnerQuery selects an owner's transactions created in [From, To).
// A nil bound is open.
type FindByOwnerQuery struct {
	OwnerClientID int64
	From          *time.Time
	To            *time.Time
	Page          int
	PageSize      int
}

// TransactionLedger is the system of record for saga progress. Steps are
// append-only; concurrent appends to the same transaction must never lose a step.
type TransactionLedger interface {
	Create(ctx context.Context, tx *domain_transfer.Transaction) error
	AppendStep(ctx context.Context, transactionID string, step domain_transfer.Step) error
	GetByID(ctx context.Context, transactionID string) (*domain_transfer.Transaction, error)
	FindByOwner(ctx context.Context, q FindByOwnerQuery) (Page[*domain_transfer.Transaction], error)
	LatestStatus(ctx context.Context, transactionID string, target domain_transfer.TargetSystem) (domain_transfer.Status, bool, error)
}
