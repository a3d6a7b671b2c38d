package domain

import (
	"fmt"
	"strconv"
)

// Money represents a currency amount in smallest-unit integers (whole rupiah).
// Arithmetic stays in int64 so stored values round-trip exactly.
type Money struct {
	units int64
}

// NewMoney creates a Money value from smallest currency units.
func NewMoney(units int64) (Money, error) {
	if units < 0 {
		return Money{}, ErrInvalidPrice
	}
	return Money{units: units}, nil
}

// MustMoney creates a Money value and panics on negative input.
// Intended for constants and test fixtures.
func MustMoney(units int64) Money {
	m, err := NewMoney(units)
	if err != nil {
		panic(err)
	}
	return m
}

// Units returns the amount in smallest currency units.
func (m Money) Units() int64 {
	return m.units
}

// Add adds two Money values.
func (m Money) Add(other Money) Money {
	return Money{units: m.units + other.units}
}

// MulQuantity multiplies the amount by an item quantity.
func (m Money) MulQuantity(quantity int64) Money {
	return Money{units: m.units * quantity}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.units == 0
}

// Format renders the amount as an Indonesian price string, e.g. "Rp 1.290.000".
func (m Money) Format() string {
	digits := strconv.FormatInt(m.units, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return fmt.Sprintf("Rp %s", out)
}

// String returns the raw unit count.
func (m Money) String() string {
	return strconv.FormatInt(m.units, 10)
}
