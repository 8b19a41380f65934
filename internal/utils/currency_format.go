package utils

import (
	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

// DefaultPrecision is used when no statement precision is configured.
const DefaultPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: 12.3456 with precision 2 returns "12.35"
// Example: 12 with precision 2 returns "12.00"
func FormatWithPrecision(amount domain.Money, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return amount.Amount().StringFixed(int32(precision))
}
