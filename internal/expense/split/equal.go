package split

import "github.com/tripwhizz/expenses/internal/money"

// EqualStrategy divides the expense evenly among all participants.
// Any indivisible remainder goes one minor unit at a time to the first
// participants, in list order, so the shares always sum exactly to the
// total.
type EqualStrategy struct{}

// Method returns the split method identifier.
func (s *EqualStrategy) Method() Method {
	return MethodEqual
}

// Validate checks the inputs for an equal split.
func (s *EqualStrategy) Validate(total money.Amount, inputs []Input) error {
	if len(inputs) == 0 {
		return ErrNoParticipants
	}
	return nil
}

// Allocate divides the total evenly, remainder first.
func (s *EqualStrategy) Allocate(total money.Amount, inputs []Input) ([]Allocation, error) {
	if err := s.Validate(total, inputs); err != nil {
		return nil, err
	}

	parts, err := total.Split(len(inputs))
	if err != nil {
		return nil, err
	}

	allocations := make([]Allocation, len(inputs))
	for i, in := range inputs {
		allocations[i] = Allocation{
			ParticipantID: in.ParticipantID,
			Owed:          parts[i],
		}
	}
	return allocations, nil
}
