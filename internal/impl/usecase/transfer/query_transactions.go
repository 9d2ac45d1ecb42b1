package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	port_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/transfer"
)

type GetTransactionUsecaseImpl struct {
	ledger port_persistence.TransactionLedger
}

func NewGetTransactionUsecaseImpl(ledger port_persistence.TransactionLedger) *GetTransactionUsecaseImpl {
	return &GetTransactionUsecaseImpl{ledger: ledger}
}

func (u *GetTransactionUsecaseImpl) Execute(ctx context.Context, in port_transfer.GetTransactionInput) (port_transfer.TransactionOutput, error) {
	if strings.TrimSpace(in.TransactionID) == "" {
		return port_transfer.TransactionOutput{}, ErrInvalidInput
	}

	tx, err := u.ledger.GetByID(ctx, in.TransactionID)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return port_transfer.TransactionOutput{}, domain_transfer.ErrTransactionNotFound
		}
		return port_transfer.TransactionOutput{}, fmt.Errorf("get transaction: %w", err)
	}

	if err := tx.ValidateOwnership(in.RequestingClientID); err != nil {
		return port_transfer.TransactionOutput{}, err
	}

	return toOutput(tx), nil
}

type ListTransactionsUsecaseImpl struct {
	ledger port_persistence.TransactionLedger
}

func NewListTransactionsUsecaseImpl(ledger port_persistence.TransactionLedger) *ListTransactionsUsecaseImpl {
	return &ListTransactionsUsecaseImpl{ledger: ledger}
}

func (u *ListTransactionsUsecaseImpl) Execute(ctx context.Context, in port_transfer.ListTransactionsInput) (port_transfer.ListTransactionsOutput, error) {
	if in.Page < 0 || in.PageSize < 1 || in.PageSize > MaxPageSize {
		return port_transfer.ListTransactionsOutput{}, ErrInvalidPagination
	}

	q := port_persistence.FindByOwnerQuery{
		OwnerClientID: in.OwnerClientID,
		Page:          in.Page,
		PageSize:      in.PageSize,
	}
	if in.Date != nil {
		d := in.Date.UTC()
		from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)
		q.From = &from
		q.To = &to
	}

	page, err := u.ledger.FindByOwner(ctx, q)
	if err != nil {
		return port_transfer.ListTransactionsOutput{}, fmt.Errorf("list transactions: %w", err)
	}

	items := make([]port_transfer.TransactionOutput, 0, len(page.Items))
	for _, tx := range page.Items {
		items = append(items, toOutput(tx))
	}

	return port_transfer.ListTransactionsOutput{
		Items:      items,
		Page:       in.Page,
		PageSize:   in.PageSize,
		TotalPages: page.TotalPages(),
	}, nil
}

func toOutput(tx *domain_transfer.Transaction) port_transfer.TransactionOutput {
	steps := tx.Steps()
	out := make([]port_transfer.StepOutput, 0, len(steps))
	for _, s := range steps {
		out = append(out, port_transfer.StepOutput{
			CreatedAt:    s.CreatedAt,
			TargetSystem: string(s.TargetSystem),
			Status:       string(s.Status),
		})
	}

	return port_transfer.TransactionOutput{
		TransactionID: tx.ID(),
		OwnerClientID: tx.OwnerClientID(),
		RecipientID:   tx.RecipientID(),
		RecipientName: tx.RecipientName(),
		Amount:        tx.Amount(),
		CreatedAt:     tx.CreatedAt(),
		Steps:         out,
	}
}
