package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/bank_account_kata/internal/apperrors"
)

// Money is an immutable monetary amount in the single implicit currency.
// Arithmetic is decimal so repeated deposits and withdrawals never drift.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount. The zero value of Money is equivalent.
var Zero = Money{}

// AnAmountOf builds Money from a float literal, e.g. AnAmountOf(10.0).
func AnAmountOf(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoney wraps an existing decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

const (
	// MaxScale is the largest number of fractional digits accepted from input.
	MaxScale = 18
	// MaxIntegerDigits bounds the integer part of amounts accepted from input.
	MaxIntegerDigits = 18
)

// ParseMoney parses a decimal string such as "12.50". Amounts with more than
// MaxScale fractional digits or MaxIntegerDigits integer digits are rejected.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", s, apperrors.ErrValidation)
	}
	if err := checkBounds(d); err != nil {
		return Zero, err
	}
	return Money{amount: d}, nil
}

// checkBounds works on the coefficient and exponent only, so it stays cheap
// for inputs such as "1e20000000".
func checkBounds(d decimal.Decimal) error {
	exp := int64(d.Exponent())
	if exp < -MaxScale {
		return fmt.Errorf("amount has more than %d decimal places: %w", MaxScale, apperrors.ErrValidation)
	}
	if d.IsZero() {
		return nil
	}
	if int64(d.NumDigits())+exp > MaxIntegerDigits {
		return fmt.Errorf("amount exceeds %d integer digits: %w", MaxIntegerDigits, apperrors.ErrValidation)
	}
	return nil
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Cmp returns -1, 0 or +1 as m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal compares by value, so 10.0 equals 10.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON encodes the amount as a decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.amount.MarshalJSON()
}

// UnmarshalJSON accepts both quoted decimal strings and bare numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	if err := checkBounds(d); err != nil {
		return err
	}
	m.amount = d
	return nil
}
