package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwhizz/expenses/internal/money"
	"github.com/tripwhizz/expenses/internal/trip"
)

func testRoster(ids ...int64) trip.Roster {
	r := make(trip.Roster, len(ids))
	for _, id := range ids {
		r[id] = &trip.Participant{
			ID:          id,
			TripID:      1,
			DisplayName: "Someone",
			Status:      trip.ParticipantStatusAccepted,
			JoinedAt:    time.Now(),
		}
	}
	return r
}

func TestValidateAccepts(t *testing.T) {
	roster := testRoster(1, 2)

	amount, err := validate(&CreateSettlementRequest{PayerID: 1, PayeeID: 2, Amount: "25.50"}, roster)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(2550), amount)
}

func TestValidateAcceptsOverpayment(t *testing.T) {
	roster := testRoster(1, 2)

	// No balance cap: a payment larger than any conceivable debt is
	// still a valid fact.
	amount, err := validate(&CreateSettlementRequest{PayerID: 1, PayeeID: 2, Amount: "99999.99"}, roster)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(9999999), amount)
}

func TestValidateRejectsSelfPayment(t *testing.T) {
	roster := testRoster(1, 2)

	_, err := validate(&CreateSettlementRequest{PayerID: 1, PayeeID: 1, Amount: "10.00"}, roster)
	assert.ErrorIs(t, err, ErrSelfSettlement)
}

func TestValidateRejectsBadAmounts(t *testing.T) {
	roster := testRoster(1, 2)

	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"zero", "0.00", ErrNonPositiveAmount},
		{"negative", "-5.00", ErrNonPositiveAmount},
		{"not a number", "ten", ErrInvalidAmount},
		{"too many decimals", "10.005", ErrInvalidAmount},
		{"empty", "", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validate(&CreateSettlementRequest{PayerID: 1, PayeeID: 2, Amount: tt.amount}, roster)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRejectsNonParticipants(t *testing.T) {
	roster := testRoster(1, 2)

	_, err := validate(&CreateSettlementRequest{PayerID: 99, PayeeID: 2, Amount: "10.00"}, roster)
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = validate(&CreateSettlementRequest{PayerID: 1, PayeeID: 99, Amount: "10.00"}, roster)
	assert.ErrorIs(t, err, ErrNotParticipant)
}
