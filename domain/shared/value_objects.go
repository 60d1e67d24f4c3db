package shared

import (
	"errors"
	"math"
)

// DefaultCurrency is the catalog's base currency. Prices, cart totals and
// pricing breakdowns are all expressed in whole units of it.
const DefaultCurrency = "INR"

var (
	// ErrCurrencyMismatch is returned when combining amounts of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrAmountOverflow is returned when an arithmetic result does not fit in int64.
	ErrAmountOverflow = errors.New("amount overflow")
)

// Money value object - an amount in the smallest unit the catalog prices in
type Money struct {
	amount   int64
	currency string
}

// NewMoney Create a Money value object
func NewMoney(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return Money{currency: currency}
}

func (m Money) Amount() int64    { return m.amount }
func (m Money) Currency() string { return m.currency }

// Add returns m + other
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	if (other.amount > 0 && m.amount > math.MaxInt64-other.amount) ||
		(other.amount < 0 && m.amount < math.MinInt64-other.amount) {
		return Money{}, ErrAmountOverflow
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns m - other
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return m.Add(Money{amount: -other.amount, currency: other.currency})
}

// Multiply returns m × factor, checking for overflow.
func (m Money) Multiply(factor int) (Money, error) {
	if factor == 0 || m.amount == 0 {
		return Money{currency: m.currency}, nil
	}
	result := m.amount * int64(factor)
	if result/int64(factor) != m.amount {
		return Money{}, ErrAmountOverflow
	}
	return Money{amount: result, currency: m.currency}, nil
}

// IsGreaterThan compares amounts regardless of currency
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Equals Compare two Money values
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
