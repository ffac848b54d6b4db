package split

import "github.com/tripwhizz/expenses/internal/money"

// SharesStrategy divides the expense proportionally to positive integer
// share counts (e.g. a couple takes 2 shares, a solo traveller 1).
// Money's weighted distribution keeps the sum exact.
type SharesStrategy struct{}

// Method returns the split method identifier.
func (s *SharesStrategy) Method() Method {
	return MethodShares
}

// Validate checks that every participant carries a positive share count.
func (s *SharesStrategy) Validate(total money.Amount, inputs []Input) error {
	if len(inputs) == 0 {
		return ErrNoParticipants
	}
	for _, in := range inputs {
		if in.Shares == nil {
			return ErrMissingShareCount
		}
		if *in.Shares <= 0 {
			return ErrNonPositiveShares
		}
	}
	return nil
}

// Allocate divides the total by share count weights.
func (s *SharesStrategy) Allocate(total money.Amount, inputs []Input) ([]Allocation, error) {
	if err := s.Validate(total, inputs); err != nil {
		return nil, err
	}

	weights := make([]int64, len(inputs))
	for i, in := range inputs {
		weights[i] = *in.Shares
	}
	parts, err := total.Distribute(weights)
	if err != nil {
		return nil, err
	}

	allocations := make([]Allocation, len(inputs))
	for i, in := range inputs {
		allocations[i] = Allocation{ParticipantID: in.ParticipantID, Owed: parts[i]}
	}
	return allocations, nil
}
