// Package ledger derives balances and pairwise obligations from a
// trip's expense and settlement history. Everything here is a pure
// function over an immutable history snapshot: no caching, no hidden
// state, identical output for identical input. Recomputing on every
// read is what keeps the derived views from ever going stale.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tripwhizz/expenses/internal/expense"
	"github.com/tripwhizz/expenses/internal/money"
	"github.com/tripwhizz/expenses/internal/settlement"
	"github.com/tripwhizz/expenses/internal/trip"
)

// ErrUnknownParticipant means the history references a participant the
// roster no longer contains. Validation prevents this at write time,
// so seeing it at read time signals an upstream invariant violation
// (e.g. a participant removed after expenses were recorded). It is
// reported, never silently dropped.
var ErrUnknownParticipant = errors.New("history references a participant missing from the roster")

// Balance is one participant's net position across the whole trip:
// positive means they are owed money, negative means they owe.
type Balance struct {
	ParticipantID int64
	Name          string
	Net           money.Amount
}

// Balances folds the full history into one balance per roster
// participant. For every share whose owner is not the payer, the owner
// is debited and the payer credited by the share amount; the payer's
// own share nets to zero and is skipped. Every settlement credits the
// payer and debits the payee. The balances always sum to exactly zero.
func Balances(roster trip.Roster, expenses []*expense.Expense, settlements []*settlement.Settlement) ([]Balance, error) {
	net := make(map[int64]money.Amount, len(roster))
	for id := range roster {
		net[id] = money.Zero
	}

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
			net[s.ParticipantID] = net[s.ParticipantID].Sub(s.OwedAmount)
			net[e.PaidByID] = net[e.PaidByID].Add(s.OwedAmount)
		}
	}

	for _, s := range settlements {
		if !roster.Contains(s.PayerID) {
			return nil, fmt.Errorf("%w: settlement %d payer %d", ErrUnknownParticipant, s.ID, s.PayerID)
		}
		if !roster.Contains(s.PayeeID) {
			return nil, fmt.Errorf("%w: settlement %d payee %d", ErrUnknownParticipant, s.ID, s.PayeeID)
		}
		net[s.PayerID] = net[s.PayerID].Add(s.Amount)
		net[s.PayeeID] = net[s.PayeeID].Sub(s.Amount)
	}

	balances := make([]Balance, 0, len(net))
	for id, amount := range net {
		balances = append(balances, Balance{
			ParticipantID: id,
			Name:          roster[id].DisplayName,
			Net:           amount,
		})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].ParticipantID < balances[j].ParticipantID
	})
	return balances, nil
}
