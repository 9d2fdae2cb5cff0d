package kernel

import (
	"fmt"
	"math"

	"restaurant/internal/pkg/errs"
)

// Money is a value object representing a monetary amount with two decimal
// places. The amount is stored as an integer number of cents, so arithmetic
// on already-rounded values is exact and the order-total invariant
// (total amount == sum of line totals) never drifts through float error.
//
// The zero value is a valid amount of 0.00. Negative amounts are invalid and
// cannot be constructed.
//
// Example usage:
//
//	unitPrice, _ := kernel.NewMoneyFromFloat(25.90)
//	lineTotal := unitPrice.Mul(2)
//	fmt.Println(lineTotal) // "51.80"
type Money struct {
	cents int64
}

// NewMoneyFromFloat creates a Money value from a floating-point amount,
// rounding half away from zero to two decimal places. This is the entry point
// for amounts read from the catalog or from decimal database columns.
// Returns an error for negative or non-finite amounts.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%f is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%.2f is negative", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromCents creates a Money value from an integer number of cents.
// Returns an error for negative values.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Mul multiplies the amount by a non-negative quantity.
// Multiplication of cents by an integer is exact, so the result equals the
// mathematically rounded product of the decimal amount and the quantity.
func (m Money) Mul(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{cents: m.cents * int64(quantity)}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Amount returns the amount as a float64 with two decimal places,
// for serialization into decimal database columns and JSON payloads.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "51.80".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
