// internal/pkg/money/money.go
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units
type Cents int64

var hundred = decimal.NewFromInt(100)

// Parse converts a decimal string such as "19.99" into cents.
// Amounts with sub-cent precision or a negative sign are rejected.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal amount into cents
func FromDecimal(d decimal.Decimal) (Cents, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %s must not be negative", d.String())
	}
	minor := d.Mul(hundred)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more precision than cents", d.String())
	}
	return Cents(minor.IntPart()), nil
}

// Times multiplies the amount by a quantity
func (c Cents) Times(quantity int) Cents {
	return c * Cents(quantity)
}

// CheckedTimes multiplies a non-negative amount by a non-negative quantity.
// ok is false when the product does not fit in Cents.
func (c Cents) CheckedTimes(quantity int) (Cents, bool) {
	if c < 0 || quantity < 0 {
		return 0, false
	}
	if quantity != 0 && c > Cents(math.MaxInt64/int64(quantity)) {
		return 0, false
	}
	return c * Cents(quantity), true
}

// CheckedAdd adds two non-negative amounts. ok is false on overflow.
func (c Cents) CheckedAdd(other Cents) (Cents, bool) {
	if c < 0 || other < 0 || c > math.MaxInt64-other {
		return 0, false
	}
	return c + other, true
}

// Decimal returns the amount in major units
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount for display, e.g. "$19.99"
func (c Cents) String() string {
	return "$" + c.Decimal().StringFixed(2)
}
