package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tripwhizz/expenses/internal/expense"
	"github.com/tripwhizz/expenses/internal/money"
	"github.com/tripwhizz/expenses/internal/settlement"
	"github.com/tripwhizz/expenses/internal/trip"
)

func testRoster(ids ...int64) trip.Roster {
	r := make(trip.Roster, len(ids))
	for _, id := range ids {
		r[id] = &trip.Participant{
			ID:          id,
			TripID:      1,
			DisplayName: fmt.Sprintf("P%d", id),
			Status:      trip.ParticipantStatusAccepted,
		}
	}
	return r
}

func exp(payerID int64, shares map[int64]money.Amount) *expense.Expense {
	e := &expense.Expense{TripID: 1, PaidByID: payerID}
	for id, owed := range shares {
		e.Shares = append(e.Shares, &expense.Share{ParticipantID: id, OwedAmount: owed})
		e.Amount = e.Amount.Add(owed)
	}
	return e
}

func pay(payerID, payeeID int64, amount money.Amount) *settlement.Settlement {
	return &settlement.Settlement{TripID: 1, PayerID: payerID, PayeeID: payeeID, Amount: amount}
}

func netOf(t *testing.T, balances []Balance, id int64) money.Amount {
	t.Helper()
	for _, b := range balances {
		if b.ParticipantID == id {
			return b.Net
		}
	}
	t.Fatalf("participant %d missing from balances", id)
	return 0
}

func TestBalancesEqualSplit(t *testing.T) {
	roster := testRoster(1, 2, 3)
	// 60.00 paid by P1, split three ways. P1's own share nets out.
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 2000, 2: 2000, 3: 2000}),
	}

	balances, err := Balances(roster, expenses, nil)
	require.NoError(t, err)

	require.Len(t, balances, 3)
	assert.Equal(t, money.Amount(4000), netOf(t, balances, 1))
	assert.Equal(t, money.Amount(-2000), netOf(t, balances, 2))
	assert.Equal(t, money.Amount(-2000), netOf(t, balances, 3))
}

func TestBalancesAfterSettlement(t *testing.T) {
	roster := testRoster(1, 2, 3)
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 2000, 2: 2000, 3: 2000}),
	}
	settlements := []*settlement.Settlement{
		pay(2, 1, 2000),
	}

	balances, err := Balances(roster, expenses, settlements)
	require.NoError(t, err)

	assert.Equal(t, money.Amount(2000), netOf(t, balances, 1))
	assert.Equal(t, money.Zero, netOf(t, balances, 2))
	assert.Equal(t, money.Amount(-2000), netOf(t, balances, 3))
}

func TestBalancesEmptyHistory(t *testing.T) {
	roster := testRoster(1, 2)

	balances, err := Balances(roster, nil, nil)
	require.NoError(t, err)

	// Every roster member appears, settled or not.
	require.Len(t, balances, 2)
	assert.Equal(t, money.Zero, balances[0].Net)
	assert.Equal(t, money.Zero, balances[1].Net)
	assert.Equal(t, int64(1), balances[0].ParticipantID)
	assert.Equal(t, int64(2), balances[1].ParticipantID)
}

func TestBalancesOverpaymentGoesNegative(t *testing.T) {
	roster := testRoster(1, 2)
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 1000, 2: 1000}),
	}
	// P2 owed 10.00 but pays 30.00; the excess flips the pair.
	settlements := []*settlement.Settlement{
		pay(2, 1, 3000),
	}

	balances, err := Balances(roster, expenses, settlements)
	require.NoError(t, err)

	assert.Equal(t, money.Amount(-2000), netOf(t, balances, 1))
	assert.Equal(t, money.Amount(2000), netOf(t, balances, 2))
}

func TestBalancesUnknownParticipant(t *testing.T) {
	roster := testRoster(1, 2)

	_, err := Balances(roster, []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 500, 99: 500}),
	}, nil)
	assert.ErrorIs(t, err, ErrUnknownParticipant)

	_, err = Balances(roster, nil, []*settlement.Settlement{pay(99, 1, 100)})
	assert.ErrorIs(t, err, ErrUnknownParticipant)
}

func TestPairwiseDirections(t *testing.T) {
	roster := testRoster(1, 2, 3)
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 2000, 2: 2000, 3: 2000}),
	}

	fromPayer, err := Pairwise(roster, expenses, nil, 1)
	require.NoError(t, err)
	require.Len(t, fromPayer, 2)
	assert.Equal(t, Obligation{OtherID: 2, OtherName: "P2", Amount: 2000, Direction: DirectionOwed}, fromPayer[0])
	assert.Equal(t, Obligation{OtherID: 3, OtherName: "P3", Amount: 2000, Direction: DirectionOwed}, fromPayer[1])

	fromDebtor, err := Pairwise(roster, expenses, nil, 2)
	require.NoError(t, err)
	require.Len(t, fromDebtor, 1)
	assert.Equal(t, Obligation{OtherID: 1, OtherName: "P1", Amount: 2000, Direction: DirectionOwes}, fromDebtor[0])
}

func TestPairwiseOmitsSettledPairs(t *testing.T) {
	roster := testRoster(1, 2, 3)
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 2000, 2: 2000, 3: 2000}),
	}
	settlements := []*settlement.Settlement{
		pay(2, 1, 2000),
	}

	obligations, err := Pairwise(roster, expenses, settlements, 1)
	require.NoError(t, err)

	// P2 settled exactly; only the P3 edge remains.
	require.Len(t, obligations, 1)
	assert.Equal(t, int64(3), obligations[0].OtherID)
}

func TestPairwiseNetsOpposingDebts(t *testing.T) {
	roster := testRoster(1, 2)
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{2: 3000}), // P2 owes P1 30.00
		exp(2, map[int64]money.Amount{1: 1000}), // P1 owes P2 10.00
	}

	obligations, err := Pairwise(roster, expenses, nil, 2)
	require.NoError(t, err)

	require.Len(t, obligations, 1)
	assert.Equal(t, Obligation{OtherID: 1, OtherName: "P1", Amount: 2000, Direction: DirectionOwes}, obligations[0])
}

func TestPairwiseUnknownSubject(t *testing.T) {
	roster := testRoster(1, 2)

	_, err := Pairwise(roster, nil, nil, 99)
	assert.ErrorIs(t, err, ErrUnknownParticipant)
}

func TestPairwiseAll(t *testing.T) {
	roster := testRoster(1, 2, 3)
	expenses := []*expense.Expense{
		exp(1, map[int64]money.Amount{1: 2000, 2: 2000, 3: 2000}),
	}
	settlements := []*settlement.Settlement{
		pay(2, 1, 500),
	}

	edges, err := PairwiseAll(roster, expenses, settlements)
	require.NoError(t, err)

	require.Len(t, edges, 2)
	assert.Equal(t, Edge{DebtorID: 2, CreditorID: 1, Amount: 1500}, edges[0])
	assert.Equal(t, Edge{DebtorID: 3, CreditorID: 1, Amount: 2000}, edges[1])
}

// randomHistory draws a roster plus an arbitrary expense and
// settlement history over it.
func randomHistory(t *rapid.T) (trip.Roster, []*expense.Expense, []*settlement.Settlement) {
	n := rapid.Int64Range(2, 6).Draw(t, "participants")
	ids := make([]int64, 0, n)
	for id := int64(1); id <= n; id++ {
		ids = append(ids, id)
	}
	roster := testRoster(ids...)

	numExpenses := rapid.IntRange(0, 8).Draw(t, "numExpenses")
	expenses := make([]*expense.Expense, 0, numExpenses)
	for i := 0; i < numExpenses; i++ {
		payer := rapid.SampledFrom(ids).Draw(t, fmt.Sprintf("payer%d", i))
		shares := make(map[int64]money.Amount)
		for _, id := range ids {
			if rapid.Bool().Draw(t, fmt.Sprintf("include%d_%d", i, id)) {
				shares[id] = money.Amount(rapid.Int64Range(0, 100_00).Draw(t, fmt.Sprintf("owed%d_%d", i, id)))
			}
		}
		expenses = append(expenses, exp(payer, shares))
	}

	numSettlements := rapid.IntRange(0, 8).Draw(t, "numSettlements")
	settlements := make([]*settlement.Settlement, 0, numSettlements)
	for i := 0; i < numSettlements; i++ {
		payer := rapid.SampledFrom(ids).Draw(t, fmt.Sprintf("spayer%d", i))
		payee := rapid.SampledFrom(ids).Filter(func(id int64) bool { return id != payer }).Draw(t, fmt.Sprintf("spayee%d", i))
		amount := money.Amount(rapid.Int64Range(1, 100_00).Draw(t, fmt.Sprintf("samount%d", i)))
		settlements = append(settlements, pay(payer, payee, amount))
	}

	return roster, expenses, settlements
}

func TestBalancesConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roster, expenses, settlements := randomHistory(t)

		balances, err := Balances(roster, expenses, settlements)
		if err != nil {
			t.Fatalf("balances: %v", err)
		}

		var sum money.Amount
		for _, b := range balances {
			sum = sum.Add(b.Net)
		}
		if !sum.IsZero() {
			t.Fatalf("balances sum to %s, want exactly zero", sum)
		}
	})
}

func TestPairwiseAgreesWithBalances(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roster, expenses, settlements := randomHistory(t)

		balances, err := Balances(roster, expenses, settlements)
		if err != nil {
			t.Fatalf("balances: %v", err)
		}

		for _, b := range balances {
			obligations, err := Pairwise(roster, expenses, settlements, b.ParticipantID)
			if err != nil {
				t.Fatalf("pairwise %d: %v", b.ParticipantID, err)
			}
			var net money.Amount
			for _, o := range obligations {
				if o.Direction == DirectionOwed {
					net = net.Add(o.Amount)
				} else {
					net = net.Sub(o.Amount)
				}
			}
			if net != b.Net {
				t.Fatalf("participant %d: pairwise net %s, balance %s", b.ParticipantID, net, b.Net)
			}
		}
	})
}

func TestDerivationIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roster, expenses, settlements := randomHistory(t)

		first, err := Balances(roster, expenses, settlements)
		if err != nil {
			t.Fatalf("balances: %v", err)
		}
		second, err := Balances(roster, expenses, settlements)
		if err != nil {
			t.Fatalf("balances: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("recomputation changed length: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("recomputation changed balance %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}
