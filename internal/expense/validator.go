package expense

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tripwhizz/expenses/internal/expense/split"
	"github.com/tripwhizz/expenses/internal/money"
	"github.com/tripwhizz/expenses/internal/trip"
)

// Expense-level violations
var (
	ErrEmptyDescription    = errors.New("description cannot be empty")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrInvalidAmount       = errors.New("amount is not a valid decimal")
	ErrPayerNotParticipant = errors.New("payer is not a trip participant")
	ErrNoShares            = errors.New("at least one share is required")
	ErrUnknownParticipant  = errors.New("share references an unknown participant")
	ErrExactSumMismatch    = errors.New("exact amounts must sum to the total amount")
	ErrCurrencyMismatch    = errors.New("currency does not match the trip currency")
)

// ValidationErrors is the list-valued error returned when a candidate
// expense violates one or more invariants. Every check runs to
// completion so the caller sees the complete list, not just the first
// failure.
type ValidationErrors []error

func (ve ValidationErrors) Error() string {
	msgs := ve.Messages()
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error { return ve }

// Messages returns one human-readable message per violation.
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return msgs
}

// Candidate is a fully parsed expense awaiting validation and
// allocation. Nothing partially invalid ever reaches the repository.
type Candidate struct {
	Description string
	Total       money.Amount
	Currency    string
	PaidByID    int64
	Method      split.Method
	Inputs      []split.Input
}

// Validator checks a candidate expense against the trip roster and the
// split method's invariants before it is accepted into history.
type Validator struct {
	factory *split.Factory
}

// NewValidator creates a new expense validator
func NewValidator(factory *split.Factory) *Validator {
	return &Validator{factory: factory}
}

// Validate parses the request and runs every check, collecting all
// violations. On success the returned candidate is safe to allocate
// and persist.
func (v *Validator) Validate(req *CreateExpenseRequest, tripCurrency string, roster trip.Roster) (*Candidate, ValidationErrors) {
	var violations ValidationErrors

	candidate := &Candidate{
		Description: strings.TrimSpace(req.Description),
		Currency:    strings.ToUpper(strings.TrimSpace(req.Currency)),
		PaidByID:    req.PaidByID,
		Method:      split.Method(req.SplitMethod),
	}
	if candidate.Currency == "" {
		candidate.Currency = tripCurrency
	}

	if candidate.Description == "" {
		violations = append(violations, ErrEmptyDescription)
	}

	total, err := money.ParseDecimal(req.Amount)
	switch {
	case err != nil:
		violations = append(violations, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Amount))
	case !total.IsPositive():
		violations = append(violations, ErrNonPositiveAmount)
	default:
		candidate.Total = total
	}

	if candidate.Currency != tripCurrency {
		violations = append(violations, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, candidate.Currency, tripCurrency))
	}

	if !roster.Contains(req.PaidByID) {
		violations = append(violations, fmt.Errorf("%w: %d", ErrPayerNotParticipant, req.PaidByID))
	}

	if len(req.Shares) == 0 {
		violations = append(violations, ErrNoShares)
		return candidate, violations
	}

	inputs, inputViolations := v.parseInputs(req.Shares)
	violations = append(violations, inputViolations...)
	candidate.Inputs = inputs

	strategy, err := v.factory.Create(candidate.Method)
	if err != nil {
		violations = append(violations, err)
	} else if len(inputViolations) == 0 {
		if err := strategy.Validate(candidate.Total, inputs); err != nil {
			violations = append(violations, err)
		}
		if candidate.Method == split.MethodExact {
			if err := checkExactSum(candidate.Total, inputs); err != nil {
				violations = append(violations, err)
			}
		}
	}

	for _, in := range inputs {
		if !roster.Contains(in.ParticipantID) {
			violations = append(violations, fmt.Errorf("%w: %d", ErrUnknownParticipant, in.ParticipantID))
		}
	}

	if len(violations) > 0 {
		return candidate, violations
	}
	return candidate, nil
}

// parseInputs converts wire-format share inputs into split inputs,
// collecting every malformed field instead of stopping at the first.
func (v *Validator) parseInputs(shares []*ShareInput) ([]split.Input, ValidationErrors) {
	var violations ValidationErrors
	inputs := make([]split.Input, len(shares))
	for i, s := range shares {
		inputs[i].ParticipantID = s.ParticipantID

		if s.Percentage != nil {
			bp, err := split.ParseBasisPoints(*s.Percentage)
			if err != nil {
				violations = append(violations, err)
			} else {
				inputs[i].BasisPoints = &bp
			}
		}
		if s.Amount != nil {
			amount, err := money.ParseDecimal(*s.Amount)
			if err != nil {
				violations = append(violations, fmt.Errorf("%w: %q", ErrInvalidAmount, *s.Amount))
			} else {
				inputs[i].Exact = &amount
			}
		}
		inputs[i].Shares = s.SharesCount
	}
	return inputs, violations
}

func checkExactSum(total money.Amount, inputs []split.Input) error {
	var sum money.Amount
	for _, in := range inputs {
		if in.Exact == nil {
			return nil // missing amounts are the strategy's violation
		}
		sum = sum.Add(*in.Exact)
	}
	if sum != total {
		return fmt.Errorf("%w: shares sum to %s, total is %s", ErrExactSumMismatch, sum, total)
	}
	return nil
}

func formatBasisPoints(bp int64) string {
	return decimal.New(bp, -2).StringFixed(2)
}
