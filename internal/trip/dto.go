package trip

// CreateTripRequest represents the request to create a new trip
type CreateTripRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Currency string `json:"currency,omitempty"` // defaults to PLN
}

// AddParticipantRequest represents the request to add a participant to a trip
type AddParticipantRequest struct {
	DisplayName string            `json:"display_name" validate:"required,min=1,max=100"`
	Status      ParticipantStatus `json:"status,omitempty"` // defaults to accepted
}

// TripResponse represents the response for a trip
type TripResponse struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Currency     string                 `json:"currency"`
	CreatedAt    string                 `json:"created_at"`
	Participants []*ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse represents a participant in a trip response
type ParticipantResponse struct {
	ID          int64             `json:"id"`
	DisplayName string            `json:"display_name"`
	Status      ParticipantStatus `json:"status"`
	JoinedAt    string            `json:"joined_at"`
}

// ToResponse converts a Trip model to a TripResponse DTO
func (t *Trip) ToResponse() *TripResponse {
	return &TripResponse{
		ID:        t.ID,
		Name:      t.Name,
		Currency:  t.Currency,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Status:      p.Status,
		JoinedAt:    p.JoinedAt.Format("2006-01-02T15:04:05Z"),
	}
}
