package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
	"github.com/shopspring/decimal"
)

const recipientColumns = `id, client_id, name, routing_number, national_identification, account_number, created_at`

// RecipientDirectory stores recipients without a fee column; the service-wide
// fee is attached when rows are read.
type RecipientDirectory struct {
	db  *sql.DB
	fee decimal.Decimal
}

func NewRecipientDirectory(db *sql.DB, fee decimal.Decimal) *RecipientDirectory {
	return &RecipientDirectory{db: db, fee: fee}
}

func (d *RecipientDirectory) Save(ctx context.Context, r *domain_transfer.Recipient) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO recipients (`+recipientColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID(), r.OwnerClientID(), r.Name(), r.RoutingNumber(), r.NationalIdentification(), r.AccountNumber(), r.CreatedAt().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port_persistence.ErrAlreadyExists
		}
		return fmt.Errorf("insert recipient: %w", err)
	}
	return nil
}

func (d *RecipientDirectory) FindByID(ctx context.Context, id string, ownerClientID int64) (*domain_transfer.Recipient, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+recipientColumns+` FROM recipients WHERE id = $1 AND client_id = $2`,
		id, ownerClientID,
	)

	r, err := d.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	return r, nil
}

func (d *RecipientDirectory) FindByOwner(ctx context.Context, ownerClientID int64, page, pageSize int) (port_persistence.Page[*domain_transfer.Recipient], error) {
	out := port_persistence.Page[*domain_transfer.Recipient]{
		Items:    []*domain_transfer.Recipient{},
		Page:     page,
		PageSize: pageSize,
	}

	if err := d.db.QueryRowContext(ctx, `SELECT count(*) FROM recipients WHERE client_id = $1`, ownerClientID).Scan(&out.TotalItems); err != nil {
		return out, fmt.Errorf("count recipients: %w", err)
	}

	rows, err := d.db.QueryContext(ctx,
		`SELECT `+recipientColumns+` FROM recipients WHERE client_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		ownerClientID, pageSize, offset(page, pageSize),
	)
	if err != nil {
		return out, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		r, err := d.scan(rows)
		if err != nil {
			return out, fmt.Errorf("scan recipient: %w", err)
		}
		out.Items = append(out.Items, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (d *RecipientDirectory) scan(s scanner) (*domain_transfer.Recipient, error) {
	var (
		p         domain_transfer.NewRecipientParams
		createdAt time.Time
	)
	if err := s.Scan(&p.ID, &p.OwnerClientID, &p.Name, &p.RoutingNumber, &p.NationalIdentification, &p.AccountNumber, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt.UTC()
	p.Fee = d.fee

	return domain_transfer.NewRecipient(p)
}
