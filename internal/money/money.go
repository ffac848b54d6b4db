package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be a decimal with at most two decimal places")
	ErrNoRecipients  = errors.New("at least one recipient is required")
	ErrInvalidWeight = errors.New("weights must be positive")

	// ErrRoundingOverflow means a distribution could not be corrected to
	// sum exactly to the total. With integer arithmetic this is
	// unreachable; hitting it indicates a bug, not bad user input.
	ErrRoundingOverflow = errors.New("remainder distribution failed to reach exact total")
)

// Amount is a currency amount in minor units (e.g. cents).
// All money in the system is integer minor units; floats never appear.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return a - b }

// Neg returns -a.
func (a Amount) Neg() Amount { return -a }

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Cmp compares a and b, returning -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a is exactly zero.
func (a Amount) IsZero() bool { return a == 0 }

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool { return a > 0 }

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool { return a < 0 }

// MulRatio returns floor(a * num / den). Proportional splits use it for
// the first pass; callers correct the rounding loss with Distribute or
// Split so the parts still sum exactly.
func (a Amount) MulRatio(num, den int64) (Amount, error) {
	if den == 0 {
		return 0, fmt.Errorf("money: division by zero ratio")
	}
	product := decimal.NewFromInt(int64(a)).Mul(decimal.NewFromInt(num)).Div(decimal.NewFromInt(den))
	return Amount(product.IntPart()), nil
}

// Split divides a evenly among n recipients so the parts sum exactly to
// a. The indivisible remainder (a mod n) is assigned one minor unit at a
// time to the first recipients, in order.
func (a Amount) Split(n int) ([]Amount, error) {
	if n <= 0 {
		return nil, ErrNoRecipients
	}
	base := int64(a) / int64(n)
	remainder := int64(a) % int64(n)
	// Keep the remainder non-negative so the +1 units are deterministic
	// for negative totals too.
	if remainder < 0 {
		base--
		remainder += int64(n)
	}

	parts := make([]Amount, n)
	for i := range parts {
		parts[i] = Amount(base)
		if int64(i) < remainder {
			parts[i]++
		}
	}
	return parts, checkExactSum(a, parts)
}

// Distribute divides a proportionally to the given positive weights so
// the parts sum exactly to a. Each part starts at its floored
// proportional share; the remaining minor units go to the first
// recipients, in order.
func (a Amount) Distribute(weights []int64) ([]Amount, error) {
	if len(weights) == 0 {
		return nil, ErrNoRecipients
	}
	var totalWeight int64
	for _, w := range weights {
		if w <= 0 {
			return nil, ErrInvalidWeight
		}
		totalWeight += w
	}

	parts := make([]Amount, len(weights))
	var distributed Amount
	for i, w := range weights {
		part, err := a.MulRatio(w, totalWeight)
		if err != nil {
			return nil, err
		}
		parts[i] = part
		distributed += part
	}

	remainder := a - distributed
	if remainder < 0 || int(remainder) > len(parts) {
		return nil, fmt.Errorf("%w: remainder %d over %d parts", ErrRoundingOverflow, remainder, len(parts))
	}
	for i := Amount(0); i < remainder; i++ {
		parts[i]++
	}
	return parts, checkExactSum(a, parts)
}

func checkExactSum(total Amount, parts []Amount) error {
	var sum Amount
	for _, p := range parts {
		sum += p
	}
	if sum != total {
		return fmt.Errorf("%w: parts sum to %d, want %d", ErrRoundingOverflow, sum, total)
	}
	return nil
}

// ParseDecimal converts a decimal string such as "100.00" into minor
// units. More than two decimal places is an error, never a silent
// rounding.
func ParseDecimal(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal value into minor units, rejecting
// anything finer than two decimal places.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Mul(decimal.NewFromInt(100))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, d.String())
	}
	return Amount(minor.IntPart()), nil
}

// Decimal returns the amount as a two-decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// String formats the amount with two decimal places, e.g. "33.34".
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}
