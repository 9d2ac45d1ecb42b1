package memory

import (
	"context"
	"sort"
	"sync"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
)

type entry struct {
	mu sync.Mutex
	tx *domain_transfer.Transaction
}

// Ledger keeps transactions in memory. The store lock guards the index and
// each entry's lock serializes appends to one transaction.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*entry)}
}

func (l *Ledger) Create(_ context.Context, tx *domain_transfer.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[tx.ID()]; ok {
		return port_persistence.ErrAlreadyExists
	}
	l.entries[tx.ID()] = &entry{tx: tx.Clone()}
	return nil
}

func (l *Ledger) lookup(id string) (*entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[id]
	return e, ok
}

func (l *Ledger) AppendStep(_ context.Context, transactionID string, step domain_transfer.Step) error {
	e, ok := l.lookup(transactionID)
	if !ok {
		return port_persistence.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.tx.AppendStep(step)
	return nil
}

func (l *Ledger) GetByID(_ context.Context, transactionID string) (*domain_transfer.Transaction, error) {
	e, ok := l.lookup(transactionID)
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tx.Clone(), nil
}

func (l *Ledger) LatestStatus(_ context.Context, transactionID string, target domain_transfer.TargetSystem) (domain_transfer.Status, bool, error) {
	e, ok := l.lookup(transactionID)
	if !ok {
		return "", false, port_persistence.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	status, found := e.tx.LatestStatus(target)
	return status, found, nil
}

func (l *Ledger) FindByOwner(_ context.Context, q port_persistence.FindByOwnerQuery) (port_persistence.Page[*domain_transfer.Transaction], error) {
	l.mu.RLock()
	matched := make([]*domain_transfer.Transaction, 0)
	for _, e := range l.entries {
		e.mu.Lock()
		tx := e.tx
		if tx.OwnerClientID() == q.OwnerClientID && inRange(tx, q) {
			matched = append(matched, tx.Clone())
		}
		e.mu.Unlock()
	}
	l.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt().Equal(matched[j].CreatedAt()) {
			return matched[i].ID() > matched[j].ID()
		}
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	return paginate(matched, q.Page, q.PageSize), nil
}

func inRange(tx *domain_transfer.Transaction, q port_persistence.FindByOwnerQuery) bool {
	at := tx.CreatedAt()
	if q.From != nil && at.Before(*q.From) {
		return false
	}
	if q.To != nil && !at.Before(*q.To) {
		return false
	}
	return true
}

func paginate[T any](items []T, page, pageSize int) port_persistence.Page[T] {
	out := port_persistence.Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: int64(len(items)),
	}
	if pageSize <= 0 || page < 0 {
		return out
	}

	start := page * pageSize
	if start >= len(items) {
		return out
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	out.Items = items[start:end]
	return out
}
