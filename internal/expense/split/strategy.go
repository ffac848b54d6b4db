package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tripwhizz/expenses/internal/money"
)

// Method identifies how an expense total is divided among participants.
type Method string

const (
	MethodEqual      Method = "equal"
	MethodPercentage Method = "percentage"
	MethodExact      Method = "exact"
	MethodShares     Method = "shares"
)

// BasisPointsTotal is 100% expressed in basis points (hundredths of a
// percent). Percentages are held as basis points so the sum-to-100
// check is exact integer equality: 33.33 + 33.33 + 33.34 passes,
// 33.33 x 3 does not.
const BasisPointsTotal int64 = 10_000

// Input is one participant's allocation input. Which optional field is
// required depends on the method; equal needs none.
type Input struct {
	ParticipantID int64
	BasisPoints   *int64        // percentage method
	Exact         *money.Amount // exact method
	Shares        *int64        // shares method
}

// Allocation is the computed owed amount for a single participant.
type Allocation struct {
	ParticipantID int64
	Owed          money.Amount
}

// Strategy computes per-participant owed amounts for one split method.
// Allocate covers every listed participant, payer included, and for
// every method except exact guarantees the amounts sum exactly to the
// total. Exact is pass-through: a sum mismatch there is the expense
// validator's error to report, not the allocator's to correct.
type Strategy interface {
	Method() Method
	Validate(total money.Amount, inputs []Input) error
	Allocate(total money.Amount, inputs []Input) ([]Allocation, error)
}

// Factory creates split strategies based on the requested method.
type Factory struct{}

// NewFactory creates a new factory instance.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given method.
func (f *Factory) Create(method Method) (Strategy, error) {
	switch method {
	case MethodEqual:
		return &EqualStrategy{}, nil
	case MethodPercentage:
		return &PercentageStrategy{}, nil
	case MethodExact:
		return &ExactStrategy{}, nil
	case MethodShares:
		return &SharesStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// CreateFromString creates a strategy from a wire-format method name.
func (f *Factory) CreateFromString(method string) (Strategy, error) {
	return f.Create(Method(method))
}

// Invalid split input kinds: malformed per-participant allocation data.
var (
	ErrUnknownMethod        = errors.New("unknown split method")
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrMissingPercentage    = errors.New("percentage required for all participants")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrPercentageSum        = errors.New("percentages must sum to exactly 100")
	ErrMissingExactAmount   = errors.New("exact amount required for all participants")
	ErrNegativeExactAmount  = errors.New("exact amounts cannot be negative")
	ErrMissingShareCount    = errors.New("share count required for all participants")
	ErrNonPositiveShares    = errors.New("share counts must be positive")
)

// ParseBasisPoints converts a percentage string such as "33.33" into
// basis points. More than two decimal places is rejected.
func ParseBasisPoints(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrPercentageOutOfRange, s)
	}
	bp := d.Mul(decimal.NewFromInt(100))
	if !bp.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrPercentageOutOfRange, s)
	}
	return bp.IntPart(), nil
}
