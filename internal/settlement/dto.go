package settlement

// CreateSettlementRequest represents the request to record a payment
// between two participants. The amount is a decimal string in the
// trip currency.
type CreateSettlementRequest struct {
	PayerID int64   `json:"payer_id" validate:"required"`
	PayeeID int64   `json:"payee_id" validate:"required"`
	Amount  string  `json:"amount" validate:"required"`
	Note    *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID        int64   `json:"id"`
	TripID    int64   `json:"trip_id"`
	PayerID   int64   `json:"payer_id"`
	PayerName string  `json:"payer_name,omitempty"`
	PayeeID   int64   `json:"payee_id"`
	PayeeName string  `json:"payee_name,omitempty"`
	Amount    string  `json:"amount"`
	Currency  string  `json:"currency"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:        s.ID,
		TripID:    s.TripID,
		PayerID:   s.PayerID,
		PayerName: s.PayerName,
		PayeeID:   s.PayeeID,
		PayeeName: s.PayeeName,
		Amount:    s.Amount.String(),
		Currency:  s.Currency,
		Note:      s.Note,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
