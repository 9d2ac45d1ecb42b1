package domain_transfer

import "github.com/shopspring/decimal"

// Balance is the wallet balance reported by the balance service. It is never cached.
type Balance struct {
	Amount decimal.Decimal
}

func (b Balance) CheckSufficientBalance(requested decimal.NullDecimal) error {
	if err := ValidateAmount(requested); err != nil {
		return err
	}
	if b.Amount.LessThan(requested.Decimal) {
		return ErrInsufficientBalance
	}
	return nil
}
