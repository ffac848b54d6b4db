package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwhizz/expenses/internal/expense/split"
	"github.com/tripwhizz/expenses/internal/trip"
)

func testRoster(ids ...int64) trip.Roster {
	roster := make(trip.Roster)
	for _, id := range ids {
		roster[id] = &trip.Participant{ID: id, Status: trip.ParticipantStatusAccepted}
	}
	return roster
}

func strp(s string) *string { return &s }

func TestValidateAccepts(t *testing.T) {
	v := NewValidator(split.NewFactory())

	candidate, violations := v.Validate(&CreateExpenseRequest{
		Description: "Dinner",
		Amount:      "100.00",
		PaidByID:    1,
		SplitMethod: "equal",
		Shares: []*ShareInput{
			{ParticipantID: 1}, {ParticipantID: 2}, {ParticipantID: 3},
		},
	}, "PLN", testRoster(1, 2, 3))

	require.Nil(t, violations)
	assert.Equal(t, "Dinner", candidate.Description)
	assert.Equal(t, int64(10000), int64(candidate.Total))
	assert.Equal(t, "PLN", candidate.Currency)
	assert.Equal(t, split.MethodEqual, candidate.Method)
	assert.Len(t, candidate.Inputs, 3)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := NewValidator(split.NewFactory())

	// Two independent defects: empty description and percentages that
	// do not sum to 100. Both must be reported.
	_, violations := v.Validate(&CreateExpenseRequest{
		Description: "   ",
		Amount:      "100.00",
		PaidByID:    1,
		SplitMethod: "percentage",
		Shares: []*ShareInput{
			{ParticipantID: 1, Percentage: strp("33.33")},
			{ParticipantID: 2, Percentage: strp("33.33")},
			{ParticipantID: 3, Percentage: strp("33.33")},
		},
	}, "PLN", testRoster(1, 2, 3))

	require.NotNil(t, violations)
	assert.ErrorIs(t, violations, ErrEmptyDescription)
	assert.ErrorIs(t, violations, split.ErrPercentageSum)
	assert.Len(t, violations, 2)
}

func TestValidateExactSumMismatch(t *testing.T) {
	v := NewValidator(split.NewFactory())

	// Shares sum to 99.99 against a 100.00 total.
	_, violations := v.Validate(&CreateExpenseRequest{
		Description: "Hotel",
		Amount:      "100.00",
		PaidByID:    1,
		SplitMethod: "exact",
		Shares: []*ShareInput{
			{ParticipantID: 1, Amount: strp("49.99")},
			{ParticipantID: 2, Amount: strp("50.00")},
		},
	}, "PLN", testRoster(1, 2))

	require.NotNil(t, violations)
	assert.ErrorIs(t, violations, ErrExactSumMismatch)
}

func TestValidateRosterChecks(t *testing.T) {
	v := NewValidator(split.NewFactory())

	_, violations := v.Validate(&CreateExpenseRequest{
		Description: "Taxi",
		Amount:      "30.00",
		PaidByID:    99,
		SplitMethod: "equal",
		Shares: []*ShareInput{
			{ParticipantID: 1}, {ParticipantID: 42},
		},
	}, "PLN", testRoster(1, 2))

	require.NotNil(t, violations)
	assert.ErrorIs(t, violations, ErrPayerNotParticipant)
	assert.ErrorIs(t, violations, ErrUnknownParticipant)
}

func TestValidateBadAmounts(t *testing.T) {
	v := NewValidator(split.NewFactory())

	tests := []struct {
		name   string
		amount string
		want   error
	}{
		{name: "zero", amount: "0", want: ErrNonPositiveAmount},
		{name: "negative", amount: "-5.00", want: ErrNonPositiveAmount},
		{name: "not a number", amount: "lots", want: ErrInvalidAmount},
		{name: "sub-cent precision", amount: "9.999", want: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, violations := v.Validate(&CreateExpenseRequest{
				Description: "Snacks",
				Amount:      tt.amount,
				PaidByID:    1,
				SplitMethod: "equal",
				Shares:      []*ShareInput{{ParticipantID: 1}},
			}, "PLN", testRoster(1))

			require.NotNil(t, violations)
			assert.ErrorIs(t, violations, tt.want)
		})
	}
}

func TestValidateNoShares(t *testing.T) {
	v := NewValidator(split.NewFactory())

	_, violations := v.Validate(&CreateExpenseRequest{
		Description: "Museum",
		Amount:      "25.00",
		PaidByID:    1,
		SplitMethod: "equal",
	}, "PLN", testRoster(1))

	require.NotNil(t, violations)
	assert.ErrorIs(t, violations, ErrNoShares)
}

func TestValidateCurrencyMismatch(t *testing.T) {
	v := NewValidator(split.NewFactory())

	_, violations := v.Validate(&CreateExpenseRequest{
		Description: "Ferry",
		Amount:      "80.00",
		Currency:    "EUR",
		PaidByID:    1,
		SplitMethod: "equal",
		Shares:      []*ShareInput{{ParticipantID: 1}},
	}, "PLN", testRoster(1))

	require.NotNil(t, violations)
	assert.ErrorIs(t, violations, ErrCurrencyMismatch)
}
