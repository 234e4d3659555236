package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pedidos/internal/pkg/errs"
)

// Money is a value object for monetary amounts. It wraps a decimal so that
// repeated aggregation (line subtotals, advance payments, running balances)
// never accumulates binary floating point error. Rounding to two fraction
// digits happens only at presentation boundaries via String or Round2.
//
// The zero value of Money is a valid zero amount, which keeps summing over
// empty item and payment lists well defined.
//
// Example:
//
//	price, err := kernel.MoneyFromString("10.50")
//	if err != nil {
//	    // handle invalid amount
//	}
//	total := price.Mul(3)
//	fmt.Println(total.String()) // "31.50"
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of exactly 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses a decimal string such as "15.00" into Money.
// Returns an error when the string is not a valid decimal number.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal number", s))
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat creates a Money from a float64. Intended for transport-layer
// conversion only; domain code should prefer MoneyFromString or decimals.
func MoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns the amount multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Round2 returns the amount rounded to two fraction digits. This is the
// presentation-boundary rounding step; intermediate arithmetic stays exact.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// Float64 returns the amount rounded to two fraction digits as a float64,
// for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Round(2).Float64()
	return f
}

// String renders the amount with exactly two fraction digits, e.g. "35.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
