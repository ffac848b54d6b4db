package expense

// Amounts and percentages cross the wire as decimal strings
// ("100.00", "33.33"), never as binary floating point, so the
// exact-sum invariants survive the boundary.

// ShareInput is one participant's allocation input when creating an
// expense. Which field is required depends on the split method; equal
// needs only the participant id.
type ShareInput struct {
	ParticipantID int64   `json:"participant_id" validate:"required"`
	Percentage    *string `json:"percentage,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	SharesCount   *int64  `json:"shares_count,omitempty"`
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	Description string        `json:"description" validate:"required,min=1,max=255"`
	Amount      string        `json:"amount" validate:"required"`
	Currency    string        `json:"currency,omitempty"` // defaults to the trip currency
	PaidByID    int64         `json:"paid_by_id" validate:"required"`
	SplitMethod string        `json:"split_method" validate:"required,oneof=equal percentage exact shares"`
	Shares      []*ShareInput `json:"shares" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	TripID      int64            `json:"trip_id"`
	PaidByID    int64            `json:"paid_by_id"`
	PaidByName  string           `json:"paid_by_name,omitempty"`
	Description string           `json:"description"`
	Amount      string           `json:"amount"`
	Currency    string           `json:"currency"`
	SplitMethod string           `json:"split_method"`
	CreatedAt   string           `json:"created_at"`
	Shares      []*ShareResponse `json:"shares,omitempty"`
}

// ShareResponse represents the response for a share
type ShareResponse struct {
	ID              int64   `json:"id"`
	ParticipantID   int64   `json:"participant_id"`
	ParticipantName string  `json:"participant_name,omitempty"`
	OwedAmount      string  `json:"owed_amount"`
	Percentage      *string `json:"percentage,omitempty"`
	SharesCount     *int64  `json:"shares_count,omitempty"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:          e.ID,
		TripID:      e.TripID,
		PaidByID:    e.PaidByID,
		PaidByName:  e.PaidByName,
		Description: e.Description,
		Amount:      e.Amount.String(),
		Currency:    e.Currency,
		SplitMethod: string(e.SplitMethod),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if len(e.Shares) > 0 {
		resp.Shares = make([]*ShareResponse, len(e.Shares))
		for i, s := range e.Shares {
			resp.Shares[i] = s.ToResponse()
		}
	}
	return resp
}

// ToResponse converts a Share model to a ShareResponse DTO
func (s *Share) ToResponse() *ShareResponse {
	resp := &ShareResponse{
		ID:              s.ID,
		ParticipantID:   s.ParticipantID,
		ParticipantName: s.ParticipantName,
		OwedAmount:      s.OwedAmount.String(),
		SharesCount:     s.SharesCount,
	}
	if s.BasisPoints != nil {
		percent := formatBasisPoints(*s.BasisPoints)
		resp.Percentage = &percent
	}
	return resp
}
