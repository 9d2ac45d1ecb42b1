package impl_recipient

import (
	"context"
	"errors"
	"fmt"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform"
	port_recipient "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/recipient"
	"github.com/shopspring/decimal"
)

var ErrInvalidPagination = errors.New("page must be >= 0 and size between 1 and 100")

const maxPageSize = 100

type CreateRecipientUsecaseImpl struct {
	directory port_persistence.RecipientDirectory
	clock     port_platform.Clock
	ids       port_platform.IDGenerator
	fee       decimal.Decimal
}

// NewCreateRecipientUsecaseImpl builds the use case. fee is the service-wide
// transfer fee applied to every recipient.
func NewCreateRecipientUsecaseImpl(
	directory port_persistence.RecipientDirectory,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	fee decimal.Decimal,
) *CreateRecipientUsecaseImpl {
	return &CreateRecipientUsecaseImpl{directory: directory, clock: clock, ids: ids, fee: fee}
}

func (u *CreateRecipientUsecaseImpl) Execute(ctx context.Context, in port_recipient.CreateRecipientInput) (port_recipient.RecipientOutput, error) {
	r, err := domain_transfer.NewRecipient(domain_transfer.NewRecipientParams{
		ID:                     u.ids.NewUUID().String(),
		OwnerClientID:          in.OwnerClientID,
		Name:                   in.Name,
		RoutingNumber:          in.RoutingNumber,
		NationalIdentification: in.NationalIdentification,
		AccountNumber:          in.AccountNumber,
		Fee:                    u.fee,
		CreatedAt:              u.clock.Now().UTC(),
	})
	if err != nil {
		return port_recipient.RecipientOutput{}, err
	}

	if err := u.directory.Save(ctx, r); err != nil {
		return port_recipient.RecipientOutput{}, fmt.Errorf("save recipient: %w", err)
	}

	logger.Info("recipient created", logger.Fields{
		"recipient_id":   r.ID(),
		"client_id":      r.OwnerClientID(),
		"account_number": r.AccountNumber(),
	})

	return toOutput(r), nil
}

type GetRecipientUsecaseImpl struct {
	directory port_persistence.RecipientDirectory
}

func NewGetRecipientUsecaseImpl(directory port_persistence.RecipientDirectory) *GetRecipientUsecaseImpl {
	return &GetRecipientUsecaseImpl{directory: directory}
}

func (u *GetRecipientUsecaseImpl) Execute(ctx context.Context, in port_recipient.GetRecipientInput) (port_recipient.RecipientOutput, error) {
	r, err := u.directory.FindByID(ctx, in.RecipientID, in.RequestingClientID)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return port_recipient.RecipientOutput{}, domain_transfer.ErrRecipientNotFound
		}
		return port_recipient.RecipientOutput{}, fmt.Errorf("get recipient: %w", err)
	}

	if err := r.ValidateOwnership(in.RequestingClientID); err != nil {
		return port_recipient.RecipientOutput{}, err
	}

	return toOutput(r), nil
}

type ListRecipientsUsecaseImpl struct {
	directory port_persistence.RecipientDirectory
}

func NewListRecipientsUsecaseImpl(directory port_persistence.RecipientDirectory) *ListRecipientsUsecaseImpl {
	return &ListRecipientsUsecaseImpl{directory: directory}
}

func (u *ListRecipientsUsecaseImpl) Execute(ctx context.Context, in port_recipient.ListRecipientsInput) (port_recipient.ListRecipientsOutput, error) {
	if in.Page < 0 || in.PageSize < 1 || in.PageSize > maxPageSize {
		return port_recipient.ListRecipientsOutput{}, ErrInvalidPagination
	}

	page, err := u.directory.FindByOwner(ctx, in.OwnerClientID, in.Page, in.PageSize)
	if err != nil {
		return port_recipient.ListRecipientsOutput{}, fmt.Errorf("list recipients: %w", err)
	}

	items := make([]port_recipient.RecipientOutput, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, toOutput(r))
	}

	return port_recipient.ListRecipientsOutput{
		Items:      items,
		Page:       in.Page,
		PageSize:   in.PageSize,
		TotalPages: page.TotalPages(),
	}, nil
}

func toOutput(r *domain_transfer.Recipient) port_recipient.RecipientOutput {
	return port_recipient.RecipientOutput{
		ID:                     r.ID(),
		OwnerClientID:          r.OwnerClientID(),
		Name:                   r.Name(),
		RoutingNumber:          r.RoutingNumber(),
		NationalIdentification: r.NationalIdentification(),
		AccountNumber:          r.AccountNumber(),
		Fee:                    r.Fee(),
		CreatedAt:              r.CreatedAt(),
	}
}
