package domain_transfer

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CommandKind string

const (
	KindWalletWithdraw    CommandKind = "wallet.withdraw"
	KindPaymentTransfer   CommandKind = "payment.transfer"
	KindChargebackExecute CommandKind = "chargeback.execute"
)

func (k CommandKind) IsValid() bool {
	switch k {
	case KindWalletWithdraw, KindPaymentTransfer, KindChargebackExecute:
		return true
	default:
		return false
	}
}

type WalletWithdrawCommand struct {
	TransactionID string
	OwnerClientID int64
	Amount        decimal.Decimal
}

// PaymentTransferCommand carries the recipient's bank details and the
// post-fee amount.
type PaymentTransferCommand struct {
	TransactionID          string
	OwnerClientID          int64
	RecipientID            string
	RecipientName          string
	RoutingNumber          string
	NationalIdentification string
	AccountNumber          string
	Amount                 decimal.Decimal
}

type ChargebackCommand struct {
	TransactionID string
}

// Command is the saga message published on the bus. Exactly one variant is
// set, the one named by Kind.
type Command struct {
	Kind          CommandKind
	TransactionID string
	CorrelationID string

	Withdraw   *WalletWithdrawCommand
	Payment    *PaymentTransferCommand
	Chargeback *ChargebackCommand
}

func NewWithdrawCommand(txID string, r *Recipient, amount decimal.Decimal) Command {
	return Command{
		Kind:          KindWalletWithdraw,
		TransactionID: txID,
		Withdraw: &WalletWithdrawCommand{
			TransactionID: txID,
			OwnerClientID: r.OwnerClientID(),
			Amount:        amount,
		},
	}
}

func NewPaymentCommand(txID string, r *Recipient, amount decimal.Decimal) Command {
	return Command{
		Kind:          KindPaymentTransfer,
		TransactionID: txID,
		Payment: &PaymentTransferCommand{
			TransactionID:          txID,
			OwnerClientID:          r.OwnerClientID(),
			RecipientID:            r.ID(),
			RecipientName:          r.Name(),
			RoutingNumber:          r.RoutingNumber(),
			NationalIdentification: r.NationalIdentification(),
			AccountNumber:          r.AccountNumber(),
			Amount:                 amount,
		},
	}
}

func NewChargebackCommand(txID string) Command {
	return Command{
		Kind:          KindChargebackExecute,
		TransactionID: txID,
		Chargeback:    &ChargebackCommand{TransactionID: txID},
	}
}

func (c Command) Validate() error {
	if strings.TrimSpace(c.TransactionID) == "" {
		return ErrInvalidCommand
	}

	set := 0
	if c.Withdraw != nil {
		set++
	}
	if c.Payment != nil {
		set++
	}
	if c.Chargeback != nil {
		set++
	}
	if set != 1 {
		return ErrInvalidCommand
	}

	switch c.Kind {
	case KindWalletWithdraw:
		if c.Withdraw == nil || c.Withdraw.TransactionID != c.TransactionID || c.Withdraw.Amount.IsNegative() {
			return ErrInvalidCommand
		}
	case KindPaymentTransfer:
		if c.Payment == nil || c.Payment.TransactionID != c.TransactionID || c.Payment.Amount.IsNegative() {
			return ErrInvalidCommand
		}
	case KindChargebackExecute:
		if c.Chargeback == nil || c.Chargeback.TransactionID != c.TransactionID {
			return ErrInvalidCommand
		}
	default:
		return ErrInvalidCommand
	}

	return nil
}
