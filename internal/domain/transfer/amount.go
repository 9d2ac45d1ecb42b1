package domain_transfer

import "github.com/shopspring/decimal"

// ValidateAmount rejects a missing or negative money amount. Zero is accepted.
func ValidateAmount(amount decimal.NullDecimal) error {
	if !amount.Valid {
		return ErrIllegalAmount
	}
	if amount.Decimal.IsNegative() {
		return ErrIllegalAmount
	}
	return nil
}

func Amount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
