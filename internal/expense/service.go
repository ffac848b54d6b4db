package expense

import (
	"context"
	"errors"

	"github.com/tripwhizz/expenses/internal/expense/split"
	"github.com/tripwhizz/expenses/internal/trip"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// Service handles expense business logic
type Service struct {
	repo      *Repository
	tripRepo  *trip.Repository
	validator *Validator
	factory   *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, tripRepo *trip.Repository, factory *split.Factory) *Service {
	return &Service{
		repo:      repo,
		tripRepo:  tripRepo,
		validator: NewValidator(factory),
		factory:   factory,
	}
}

// Create validates a candidate expense, allocates its shares and
// persists the expense and shares in one transaction. A request that
// fails validation returns ValidationErrors carrying every violation;
// nothing partially invalid ever enters the history.
func (s *Service) Create(ctx context.Context, tripID int64, req *CreateExpenseRequest) (*Expense, error) {
	t, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, trip.ErrTripNotFound
	}

	roster, err := s.tripRepo.Roster(ctx, tripID)
	if err != nil {
		return nil, err
	}

	candidate, violations := s.validator.Validate(req, t.Currency, roster)
	if violations != nil {
		return nil, violations
	}

	strategy, err := s.factory.Create(candidate.Method)
	if err != nil {
		return nil, err
	}
	allocations, err := strategy.Allocate(candidate.Total, candidate.Inputs)
	if err != nil {
		return nil, err
	}

	expense := &Expense{
		TripID:      tripID,
		PaidByID:    candidate.PaidByID,
		Description: candidate.Description,
		Amount:      candidate.Total,
		Currency:    candidate.Currency,
		SplitMethod: candidate.Method,
	}
	expense.Shares = make([]*Share, len(allocations))
	for i, alloc := range allocations {
		expense.Shares[i] = &Share{
			ParticipantID: alloc.ParticipantID,
			BasisPoints:   candidate.Inputs[i].BasisPoints,
			SharesCount:   candidate.Inputs[i].Shares,
			OwedAmount:    alloc.Owed,
		}
	}

	return s.repo.Create(ctx, expense)
}

// GetByID retrieves an expense with its shares
func (s *Service) GetByID(ctx context.Context, tripID, id int64) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil || expense.TripID != tripID {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// ListByTrip retrieves a trip's expenses with shares, newest first
func (s *Service) ListByTrip(ctx context.Context, tripID int64) ([]*Expense, error) {
	t, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, trip.ErrTripNotFound
	}
	return s.repo.ListByTrip(ctx, tripID)
}

// Delete removes an expense and its shares from the history
func (s *Service) Delete(ctx context.Context, tripID, id int64) error {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil || expense.TripID != tripID {
		return ErrExpenseNotFound
	}
	return s.repo.Delete(ctx, id)
}
