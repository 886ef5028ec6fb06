package models

import (
	"github.com/shopspring/decimal"

	dErrors "corpreg/pkg/domain-errors"
)

// Amounts are stored as NUMERIC(10,2).
const MoneyScale = 2

var maxMoney = decimal.New(1, 8) // 10^8, exclusive

// ValidateAmount checks that d is a positive amount representable in storage.
func ValidateAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s must be greater than zero", field)
	}
	if !d.Equal(d.Truncate(MoneyScale)) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s must have at most %d decimal places", field, MoneyScale)
	}
	if d.GreaterThanOrEqual(maxMoney) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s must be less than %s", field, maxMoney.String())
	}
	return nil
}

// SumShares totals a list of amounts.
func SumShares(shares []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s)
	}
	return total
}
