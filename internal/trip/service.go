package trip

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidCurrency = errors.New("currency must be a three-letter code")
	ErrInvalidStatus   = errors.New("status must be invited or accepted")
)

// DefaultCurrency is used when a trip is created without one.
const DefaultCurrency = "PLN"

// Service handles trip business logic
type Service struct {
	repo *Repository
}

// NewService creates a new trip service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new trip
func (s *Service) Create(ctx context.Context, req *CreateTripRequest) (*Trip, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return s.repo.Create(ctx, name, currency)
}

// GetByID retrieves a trip by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// GetByIDWithParticipants retrieves a trip with all its participants
func (s *Service) GetByIDWithParticipants(ctx context.Context, id int64) (*Trip, []*Participant, error) {
	trip, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	participants, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return trip, participants, nil
}

// AddParticipant adds a participant to a trip
func (s *Service) AddParticipant(ctx context.Context, tripID int64, req *AddParticipantRequest) (*Participant, error) {
	if _, err := s.GetByID(ctx, tripID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return nil, ErrEmptyName
	}

	status := req.Status
	if status == "" {
		status = ParticipantStatusAccepted
	}
	if status != ParticipantStatusInvited && status != ParticipantStatusAccepted {
		return nil, ErrInvalidStatus
	}

	return s.repo.AddParticipant(ctx, tripID, name, status)
}

// ListParticipants retrieves all participants of a trip
func (s *Service) ListParticipants(ctx context.Context, tripID int64) ([]*Participant, error) {
	if _, err := s.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.repo.ListParticipants(ctx, tripID)
}

// Roster retrieves the accepted participants of a trip
func (s *Service) Roster(ctx context.Context, tripID int64) (Roster, error) {
	if _, err := s.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.repo.Roster(ctx, tripID)
}
