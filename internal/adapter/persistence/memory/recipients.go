package memory

import (
	"context"
	"sort"
	"sync"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
)

type RecipientDirectory struct {
	mu   sync.RWMutex
	byID map[string]*domain_transfer.Recipient
}

func NewRecipientDirectory() *RecipientDirectory {
	return &RecipientDirectory{byID: make(map[string]*domain_transfer.Recipient)}
}

func (d *RecipientDirectory) Save(_ context.Context, r *domain_transfer.Recipient) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byID[r.ID()]; ok {
		return port_persistence.ErrAlreadyExists
	}
	d.byID[r.ID()] = r
	return nil
}

func (d *RecipientDirectory) FindByID(_ context.Context, id string, ownerClientID int64) (*domain_transfer.Recipient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.byID[id]
	if !ok || !r.IsOwnedBy(ownerClientID) {
		return nil, port_persistence.ErrNotFound
	}
	return r, nil
}

func (d *RecipientDirectory) FindByOwner(_ context.Context, ownerClientID int64, page, pageSize int) (port_persistence.Page[*domain_transfer.Recipient], error) {
	d.mu.RLock()
	matched := make([]*domain_transfer.Recipient, 0)
	for _, r := range d.byID {
		if r.IsOwnedBy(ownerClientID) {
			matched = append(matched, r)
		}
	}
	d.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt().Equal(matched[j].CreatedAt()) {
			return matched[i].ID() < matched[j].ID()
		}
		return matched[i].CreatedAt().Before(matched[j].CreatedAt())
	})

	return paginate(matched, page, pageSize), nil
}
