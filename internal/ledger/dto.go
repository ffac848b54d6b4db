package ledger

// BalanceResponse is one participant's net position on the wire.
type BalanceResponse struct {
	ParticipantID int64  `json:"participant_id"`
	Name          string `json:"name"`
	Net           string `json:"net"`
}

// ObligationResponse is one pairwise obligation, from the subject
// participant's point of view.
type ObligationResponse struct {
	ParticipantID int64  `json:"participant_id"`
	Name          string `json:"name"`
	Amount        string `json:"amount"`
	Direction     string `json:"direction"`
}

// EdgeResponse is one debt in the full pairwise graph.
type EdgeResponse struct {
	DebtorID   int64  `json:"debtor_id"`
	CreditorID int64  `json:"creditor_id"`
	Amount     string `json:"amount"`
}

// ToResponse converts a balance to a BalanceResponse
func (b Balance) ToResponse() *BalanceResponse {
	return &BalanceResponse{
		ParticipantID: b.ParticipantID,
		Name:          b.Name,
		Net:           b.Net.String(),
	}
}

// ToResponse converts an obligation to an ObligationResponse
func (o Obligation) ToResponse() *ObligationResponse {
	return &ObligationResponse{
		ParticipantID: o.OtherID,
		Name:          o.OtherName,
		Amount:        o.Amount.String(),
		Direction:     string(o.Direction),
	}
}

// ToResponse converts an edge to an EdgeResponse
func (e Edge) ToResponse() *EdgeResponse {
	return &EdgeResponse{
		DebtorID:   e.DebtorID,
		CreditorID: e.CreditorID,
		Amount:     e.Amount.String(),
	}
}
