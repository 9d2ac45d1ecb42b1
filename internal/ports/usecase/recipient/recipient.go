package port_recipient

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CreateRecipientInput struct {
	OwnerClientID          int64
	Name                   string
	RoutingNumber          string
	NationalIdentification string
	AccountNumber          string
}

type RecipientOutput struct {
	ID                     string
	OwnerClientID          int64
	Name                   string
	RoutingNumber          string
	NationalIdentification string
	AccountNumber          string
	Fee                    decimal.Decimal
	CreatedAt              time.Time
}

type CreateRecipientUseCase interface {
	Execute(ctx context.Context, input CreateRecipientInput) (RecipientOutput, error)
}

type GetRecipientInput struct {
	RecipientID        string
	RequestingClientID int64
}

type GetRecipientUseCase interface {
	Execute(ctx context.Context, input GetRecipientInput) (RecipientOutput, error)
}

type ListRecipientsInput struct {
	OwnerClientID int64
	Page          int
	PageSize      int
}

type ListRecipientsOutput struct {
	Items      []RecipientOutput
	Page       int
	PageSize   int
	TotalPages int
}

type ListRecipientsUseCase interface {
	Execute(ctx context.Context, input ListRecipientsInput) (ListRecipientsOutput, error)
}
