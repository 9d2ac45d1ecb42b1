package port_external

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrWalletNotFound = errors.New("external: wallet not found")

// BalanceService is the remote wallet/ledger of client balances.
type BalanceService interface {
	GetBalance(ctx context.Context, clientID int64) (decimal.Decimal, error)
	Debit(ctx context.Context, clientID int64, amount decimal.Decimal) error
	Credit(ctx context.Context, clientID int64, amount decimal.Decimal) error
}

type BankAccount struct {
	AccountNumber string
	RoutingNumber string
	Currency      string
}

type PaymentSource struct {
	Name    string
	Account BankAccount
}

type PaymentDestination struct {
	Name                   string
	NationalIdentification string
	Account                BankAccount
}

type PaymentRail interface {
	ExecutePayment(ctx context.Context, source PaymentSource, destination PaymentDestination, amount decimal.Decimal) error
}
