package domain_transfer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Recipient is a payee registered by a client. Records are immutable once created.
type Recipient struct {
	id                     string
	ownerClientID          int64
	name                   string
	routingNumber          string
	nationalIdentification string
	accountNumber          string
	fee                    decimal.Decimal
	createdAt              time.Time
}

type NewRecipientParams struct {
	ID                     string
	OwnerClientID          int64
	Name                   string
	RoutingNumber          string
	NationalIdentification string
	AccountNumber          string
	Fee                    decimal.Decimal
	CreatedAt              time.Time
}

func NewRecipient(p NewRecipientParams) (*Recipient, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, ErrInvalidRecipient
	}

	if p.OwnerClientID <= 0 {
		return nil, ErrInvalidClientID
	}

	if p.Fee.IsNegative() || p.Fee.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidFee
	}

	name := strings.TrimSpace(p.Name)
	routing := strings.TrimSpace(p.RoutingNumber)
	nationalID := strings.TrimSpace(p.NationalIdentification)
	account := strings.TrimSpace(p.AccountNumber)
	if name == "" || routing == "" || nationalID == "" || account == "" {
		return nil, ErrInvalidRecipient
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	return &Recipient{
		id:                     p.ID,
		ownerClientID:          p.OwnerClientID,
		name:                   name,
		routingNumber:          routing,
		nationalIdentification: nationalID,
		accountNumber:          account,
		fee:                    p.Fee,
		createdAt:              p.CreatedAt,
	}, nil
}

// ApplyFee returns the amount the recipient receives once the fee is taken.
func (r *Recipient) ApplyFee(amount decimal.NullDecimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount.Decimal.Mul(decimal.NewFromInt(1).Sub(r.fee)), nil
}

func (r *Recipient) IsOwnedBy(clientID int64) bool {
	return r.ownerClientID == clientID
}

func (r *Recipient) ValidateOwnership(clientID int64) error {
	if !r.IsOwnedBy(clientID) {
		return ErrUnauthorizedAccess
	}
	return nil
}

func (r *Recipient) ID() string { return r.id }

func (r *Recipient) OwnerClientID() int64 { return r.ownerClientID }

func (r *Recipient) Name() string { return r.name }

func (r *Recipient) RoutingNumber() string { return r.routingNumber }

func (r *Recipient) NationalIdentification() string { return r.nationalIdentification }

func (r *Recipient) AccountNumber() string { return r.accountNumber }

func (r *Recipient) Fee() decimal.Decimal { return r.fee }

func (r *Recipient) CreatedAt() time.Time { return r.createdAt }
