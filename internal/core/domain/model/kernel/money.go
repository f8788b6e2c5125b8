package kernel

import (
	"database/sql/driver"
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount with two decimal places of display precision.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt builds an amount from whole currency units. Negative input is
// clamped to zero.
func MoneyFromInt(units int64) Money {
	if units < 0 {
		return ZeroMoney()
	}
	return Money{amount: decimal.NewFromInt(units)}
}

// ParseMoney parses a decimal string such as "12.50".
//
// Example:
//
//	price, err := kernel.ParseMoney(form.Price)
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// Decimal exposes the underlying value for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsZero reports whether the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 4000 equals 4000.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats with two decimals, e.g. "4000.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON renders the amount as a JSON string to keep precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// Scan lets query handlers read NUMERIC columns straight into Money.
func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value stores Money as a decimal string.
func (m Money) Value() (driver.Value, error) {
	return m.amount.Value()
}
