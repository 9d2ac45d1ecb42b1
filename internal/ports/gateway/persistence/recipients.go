package port_persistence

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
)

type RecipientDirectory interface {
	Save(ctx context.Context, r *domain_transfer.Recipient) error
	// FindByID returns ErrNotFound when no recipient with id belongs to owner.
	FindByID(ctx context.Context, id string, ownerClientID int64) (*domain_transfer.Recipient, error)
	FindByOwner(ctx context.Context, ownerClientID int64, page, pageSize int) (Page[*domain_transfer.Recipient], error)
}
