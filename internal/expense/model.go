package expense

import (
	"time"

	"github.com/tripwhizz/expenses/internal/expense/split"
	"github.com/tripwhizz/expenses/internal/money"
)

// Expense represents one group expense. Expenses are append-only
// facts: created once, never edited. Cancelling a mistake means
// deleting the fact, not mutating it.
type Expense struct {
	ID          int64        `json:"id"`
	TripID      int64        `json:"trip_id"`
	PaidByID    int64        `json:"paid_by_id"`
	Description string       `json:"description"`
	Amount      money.Amount `json:"amount"`
	Currency    string       `json:"currency"`
	SplitMethod split.Method `json:"split_method"`
	CreatedAt   time.Time    `json:"created_at"`

	Shares []*Share `json:"shares"`

	// Populated via JOIN
	PaidByName string `json:"paid_by_name,omitempty"`
}

// Share is one participant's portion of a single expense. The owed
// amount is always materialized at creation time; basis points and
// share counts record the original split input for the methods that
// use them. Shares belong exclusively to their expense.
type Share struct {
	ID            int64        `json:"id"`
	ExpenseID     int64        `json:"expense_id"`
	ParticipantID int64        `json:"participant_id"`
	BasisPoints   *int64       `json:"basis_points,omitempty"`
	SharesCount   *int64       `json:"shares_count,omitempty"`
	OwedAmount    money.Amount `json:"owed_amount"`

	// Populated via JOIN
	ParticipantName string `json:"participant_name,omitempty"`
}
