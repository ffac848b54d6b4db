package ledger

import (
	"fmt"
	"sort"

	"github.com/tripwhizz/expenses/internal/expense"
	"github.com/tripwhizz/expenses/internal/money"
	"github.com/tripwhizz/expenses/internal/settlement"
	"github.com/tripwhizz/expenses/internal/trip"
)

// Direction states which way a pairwise obligation points, from the
// subject participant's point of view.
type Direction string

const (
	DirectionOwes Direction = "owes" // subject owes the other participant
	DirectionOwed Direction = "owed" // other participant owes the subject
)

// Obligation is the single net amount owed between the subject and one
// other participant, after collapsing all expense shares and
// settlements between them in both directions. Amount is always
// positive; Direction carries the sign.
type Obligation struct {
	OtherID   int64
	OtherName string
	Amount    money.Amount
	Direction Direction
}

// Edge is one debt in the full pairwise graph: Debtor owes Creditor.
type Edge struct {
	DebtorID   int64
	CreditorID int64
	Amount     money.Amount
}

// pairNet accumulates directed totals: owes[a][b] is how much a owes b
// before netting the opposite direction.
type pairNet map[int64]map[int64]money.Amount

func (p pairNet) add(debtor, creditor int64, amount money.Amount) {
	inner, ok := p[debtor]
	if !ok {
		inner = make(map[int64]money.Amount)
		p[debtor] = inner
	}
	inner[creditor] = inner[creditor].Add(amount)
}

func (p pairNet) between(a, b int64) money.Amount {
	return p[a][b].Sub(p[b][a])
}

// buildPairNet folds the history into the directed owes-ledger: each
// non-payer share is an "owner owes payer" edge, each settlement a
// negative "payer owes payee" edge (it reduces the reverse debt).
func buildPairNet(roster trip.Roster, expenses []*expense.Expense, settlements []*settlement.Settlement) (pairNet, error) {
	net := make(pairNet)

	for _, e := range expenses {
		if !roster.Contains(e.PaidByID) {
			return nil, fmt.Errorf("%w: expense %d payer %d", ErrUnknownParticipant, e.ID, e.PaidByID)
		}
		for _, s := range e.Shares {
			if !roster.Contains(s.ParticipantID) {
				return nil, fmt.Errorf("%w: expense %d share owner %d", ErrUnknownParticipant, e.ID, s.ParticipantID)
			}
			if s.ParticipantID == e.PaidByID {
				continue
			}
			net.add(s.ParticipantID, e.PaidByID, s.OwedAmount)
		}
	}

	for _, s := range settlements {
		if !roster.Contains(s.PayerID) || !roster.Contains(s.PayeeID) {
			return nil, fmt.Errorf("%w: settlement %d", ErrUnknownParticipant, s.ID)
		}
		net.add(s.PayerID, s.PayeeID, s.Amount.Neg())
	}

	return net, nil
}

// Pairwise nets the history per counterparty for one participant. This
// differs from Balances, which nets a participant against everyone at
// once; per-counterparty nets are what a "settle up with X" view
// needs. Settled pairs are omitted; with integer money "settled" means
// exactly zero, no epsilon. Summing the signed obligations of a participant equals
// their overall balance.
func Pairwise(roster trip.Roster, expenses []*expense.Expense, settlements []*settlement.Settlement, participantID int64) ([]Obligation, error) {
	if !roster.Contains(participantID) {
		return nil, fmt.Errorf("%w: participant %d", ErrUnknownParticipant, participantID)
	}
	net, err := buildPairNet(roster, expenses, settlements)
	if err != nil {
		return nil, err
	}

	obligations := make([]Obligation, 0)
	for otherID, other := range roster {
		if otherID == participantID {
			continue
		}
		owes := net.between(participantID, otherID)
		switch {
		case owes.IsPositive():
			obligations = append(obligations, Obligation{
				OtherID:   otherID,
				OtherName: other.DisplayName,
				Amount:    owes,
				Direction: DirectionOwes,
			})
		case owes.IsNegative():
			obligations = append(obligations, Obligation{
				OtherID:   otherID,
				OtherName: other.DisplayName,
				Amount:    owes.Neg(),
				Direction: DirectionOwed,
			})
		}
	}
	sort.Slice(obligations, func(i, j int) bool {
		return obligations[i].OtherID < obligations[j].OtherID
	})
	return obligations, nil
}

// PairwiseAll nets every unordered pair in the trip into at most one
// edge, the full "who owes whom" graph.
func PairwiseAll(roster trip.Roster, expenses []*expense.Expense, settlements []*settlement.Settlement) ([]Edge, error) {
	net, err := buildPairNet(roster, expenses, settlements)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(roster))
	for id := range roster {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	edges := make([]Edge, 0)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			owes := net.between(a, b)
			switch {
			case owes.IsPositive():
				edges = append(edges, Edge{DebtorID: a, CreditorID: b, Amount: owes})
			case owes.IsNegative():
				edges = append(edges, Edge{DebtorID: b, CreditorID: a, Amount: owes.Neg()})
			}
		}
	}
	return edges, nil
}
