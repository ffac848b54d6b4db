package settlement

import (
	"time"

	"github.com/tripwhizz/expenses/internal/money"
)

// Settlement represents a real-world payment between two participants
// that reduces what the payer owes the payee. Settlements are
// append-only facts: immutable once created. Cancelling one is a new
// offsetting settlement in the other direction, never a mutation.
type Settlement struct {
	ID        int64        `json:"id"`
	TripID    int64        `json:"trip_id"`
	PayerID   int64        `json:"payer_id"`
	PayeeID   int64        `json:"payee_id"`
	Amount    money.Amount `json:"amount"`
	Currency  string       `json:"currency"`
	Note      *string      `json:"note,omitempty"`
	CreatedAt time.Time    `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
	PayeeName string `json:"payee_name,omitempty"`
}
