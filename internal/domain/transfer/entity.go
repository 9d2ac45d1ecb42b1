package domain_transfer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Step is one entry of a transaction's history. The history is a log: several
// steps may exist for the same target system.
type Step struct {
	CreatedAt    time.Time
	TargetSystem TargetSystem
	Status       Status
}

func NewStep(target TargetSystem, status Status, at time.Time) (Step, error) {
	if !target.IsValid() {
		return Step{}, ErrInvalidTarget
	}
	if !status.IsValid() {
		return Step{}, ErrInvalidStatus
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return Step{CreatedAt: at, TargetSystem: target, Status: status}, nil
}

// Transaction is the ledger aggregate of a single transfer.
type Transaction struct {
	id            string
	ownerClientID int64
	recipientID   string
	recipientName string
	amount        decimal.Decimal
	createdAt     time.Time

	steps []Step
}

type NewTransactionParams struct {
	TransactionID string
	OwnerClientID int64
	RecipientID   string
	RecipientName string
	Amount        decimal.Decimal
	Now           time.Time
}

func New(p NewTransactionParams) (*Transaction, error) {
	if strings.TrimSpace(p.TransactionID) == "" || strings.TrimSpace(p.RecipientID) == "" {
		return nil, ErrInvalidTransaction
	}

	if p.OwnerClientID <= 0 {
		return nil, ErrInvalidClientID
	}

	if p.Amount.IsNegative() {
		return nil, ErrIllegalAmount
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	return &Transaction{
		id:            p.TransactionID,
		ownerClientID: p.OwnerClientID,
		recipientID:   p.RecipientID,
		recipientName: strings.TrimSpace(p.RecipientName),
		amount:        p.Amount,
		createdAt:     p.Now,
		steps:         []Step{},
	}, nil
}

// Rehydrate rebuilds an aggregate read back from storage. Steps must be in
// insertion order.
func Rehydrate(p NewTransactionParams, steps []Step) *Transaction {
	cp := make([]Step, len(steps))
	copy(cp, steps)

	return &Transaction{
		id:            p.TransactionID,
		ownerClientID: p.OwnerClientID,
		recipientID:   p.RecipientID,
		recipientName: p.RecipientName,
		amount:        p.Amount,
		createdAt:     p.Now,
		steps:         cp,
	}
}

func (t *Transaction) AppendStep(step Step) {
	t.steps = append(t.steps, step)
}

// LatestStatus returns the status of the most recent step recorded for target.
// Steps sharing a timestamp resolve to the one appended last.
func (t *Transaction) LatestStatus(target TargetSystem) (Status, bool) {
	return LatestStatus(t.steps, target)
}

func LatestStatus(steps []Step, target TargetSystem) (Status, bool) {
	var (
		latest Step
		found  bool
	)

	for _, s := range steps {
		if s.TargetSystem != target {
			continue
		}
		if !found || !s.CreatedAt.Before(latest.CreatedAt) {
			latest = s
			found = true
		}
	}

	return latest.Status, found
}

func (t *Transaction) IsOwnedBy(clientID int64) bool {
	return t.ownerClientID == clientID
}

func (t *Transaction) ValidateOwnership(clientID int64) error {
	if !t.IsOwnedBy(clientID) {
		return ErrUnauthorizedAccess
	}
	return nil
}

func (t *Transaction) Clone() *Transaction {
	cp := *t
	cp.steps = make([]Step, len(t.steps))
	copy(cp.steps, t.steps)
	return &cp
}

func (t *Transaction) ID() string { return t.id }

func (t *Transaction) OwnerClientID() int64 { return t.ownerClientID }

func (t *Transaction) RecipientID() string { return t.recipientID }

func (t *Transaction) RecipientName() string { return t.recipientName }

func (t *Transaction) Amount() decimal.Decimal { return t.amount }

func (t *Transaction) CreatedAt() time.Time { return t.createdAt }

func (t *Transaction) Steps() []Step {
	cp := make([]Step, len(t.steps))
	copy(cp, t.steps)
	return cp
}
