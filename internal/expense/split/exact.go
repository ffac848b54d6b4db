package split

import "github.com/tripwhizz/expenses/internal/money"

// ExactStrategy uses the amounts each participant was assigned, as-is.
// It never rebalances: whether the amounts sum to the expense total is
// the expense validator's invariant, reported there rather than
// silently corrected here.
type ExactStrategy struct{}

// Method returns the split method identifier.
func (s *ExactStrategy) Method() Method {
	return MethodExact
}

// Validate checks that every participant carries a non-negative amount.
func (s *ExactStrategy) Validate(total money.Amount, inputs []Input) error {
	if len(inputs) == 0 {
		return ErrNoParticipants
	}
	for _, in := range inputs {
		if in.Exact == nil {
			return ErrMissingExactAmount
		}
		if in.Exact.IsNegative() {
			return ErrNegativeExactAmount
		}
	}
	return nil
}

// Allocate passes the assigned amounts through unchanged.
func (s *ExactStrategy) Allocate(total money.Amount, inputs []Input) ([]Allocation, error) {
	if err := s.Validate(total, inputs); err != nil {
		return nil, err
	}

	allocations := make([]Allocation, len(inputs))
	for i, in := range inputs {
		allocations[i] = Allocation{ParticipantID: in.ParticipantID, Owed: *in.Exact}
	}
	return allocations, nil
}
