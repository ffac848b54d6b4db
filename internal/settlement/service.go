package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripwhizz/expenses/internal/money"
	"github.com/tripwhizz/expenses/internal/trip"
)

// Invalid settlement kinds
var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrSelfSettlement     = errors.New("payer and payee must be different participants")
	ErrNonPositiveAmount  = errors.New("settlement amount must be greater than zero")
	ErrInvalidAmount      = errors.New("settlement amount is not a valid decimal")
	ErrNotParticipant     = errors.New("payer and payee must be trip participants")
)

// Service records settlements against a trip's history. It validates
// the fact itself (distinct participants, positive amount) but
// deliberately does not cap the amount against the current balance:
// real-world payments can be inexact or anticipatory, and balances are
// always re-derived from the full history, so an overpayment simply
// shows up as a reversed balance on the next read.
type Service struct {
	repo     *Repository
	tripRepo *trip.Repository
}

// NewService creates a new settlement service
func NewService(repo *Repository, tripRepo *trip.Repository) *Service {
	return &Service{repo: repo, tripRepo: tripRepo}
}

// validate checks the settlement fact against the trip roster and
// returns the parsed amount. The amount is checked for validity and
// sign only, never against outstanding balances.
func validate(req *CreateSettlementRequest, roster trip.Roster) (money.Amount, error) {
	if req.PayerID == req.PayeeID {
		return 0, ErrSelfSettlement
	}

	amount, err := money.ParseDecimal(req.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Amount)
	}
	if !amount.IsPositive() {
		return 0, ErrNonPositiveAmount
	}

	if !roster.Contains(req.PayerID) || !roster.Contains(req.PayeeID) {
		return 0, ErrNotParticipant
	}

	return amount, nil
}

// Create validates and records a new settlement fact
func (s *Service) Create(ctx context.Context, tripID int64, req *CreateSettlementRequest) (*Settlement, error) {
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

	amount, err := validate(req, roster)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Settlement{
		TripID:   tripID,
		PayerID:  req.PayerID,
		PayeeID:  req.PayeeID,
		Amount:   amount,
		Currency: t.Currency,
		Note:     req.Note,
	})
}

// ListByTrip retrieves a trip's settlements, newest first
func (s *Service) ListByTrip(ctx context.Context, tripID int64) ([]*Settlement, error) {
	t, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, trip.ErrTripNotFound
	}
	return s.repo.ListByTrip(ctx, tripID)
}
