package split

import "github.com/tripwhizz/expenses/internal/money"

// PercentageStrategy divides the expense by per-participant
// percentages held as basis points. Each share is the floored
// proportional amount; the minor units lost to flooring are handed back
// to the first participants, in list order, so the shares sum exactly
// to the total even when the percentages do not divide evenly.
type PercentageStrategy struct{}

// Method returns the split method identifier.
func (s *PercentageStrategy) Method() Method {
	return MethodPercentage
}

// Validate checks that every participant carries a percentage in range
// and that the percentages sum to exactly 100.00.
func (s *PercentageStrategy) Validate(total money.Amount, inputs []Input) error {
	if len(inputs) == 0 {
		return ErrNoParticipants
	}

	var sum int64
	for _, in := range inputs {
		if in.BasisPoints == nil {
			return ErrMissingPercentage
		}
		if *in.BasisPoints < 0 || *in.BasisPoints > BasisPointsTotal {
			return ErrPercentageOutOfRange
		}
		sum += *in.BasisPoints
	}
	if sum != BasisPointsTotal {
		return ErrPercentageSum
	}
	return nil
}

// Allocate computes each participant's share from their percentage.
func (s *PercentageStrategy) Allocate(total money.Amount, inputs []Input) ([]Allocation, error) {
	if err := s.Validate(total, inputs); err != nil {
		return nil, err
	}

	allocations := make([]Allocation, len(inputs))
	var distributed money.Amount
	for i, in := range inputs {
		owed, err := total.MulRatio(*in.BasisPoints, BasisPointsTotal)
		if err != nil {
			return nil, err
		}
		allocations[i] = Allocation{ParticipantID: in.ParticipantID, Owed: owed}
		distributed += owed
	}

	// Same remainder correction as the equal split: flooring can leave
	// at most len(inputs)-1 minor units unassigned.
	remainder := total.Sub(distributed)
	if remainder.IsNegative() || int64(remainder) > int64(len(inputs)) {
		return nil, money.ErrRoundingOverflow
	}
	for i := money.Amount(0); i < remainder; i++ {
		allocations[i].Owed++
	}
	return allocations, nil
}
