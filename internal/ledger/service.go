package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tripwhizz/expenses/internal/expense"
	"github.com/tripwhizz/expenses/internal/settlement"
	"github.com/tripwhizz/expenses/internal/trip"
)

// Service derives balances and obligations on demand. Each computation
// reads the roster, expenses and settlements from one repeatable-read
// transaction so the fold never sees a torn history.
type Service struct {
	db             *sql.DB
	tripRepo       *trip.Repository
	expenseRepo    *expense.Repository
	settlementRepo *settlement.Repository
}

// NewService creates a new ledger service
func NewService(db *sql.DB, tripRepo *trip.Repository, expenseRepo *expense.Repository, settlementRepo *settlement.Repository) *Service {
	return &Service{
		db:             db,
		tripRepo:       tripRepo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
	}
}

// snapshot holds one consistent view of a trip's history.
type snapshot struct {
	roster      trip.Roster
	expenses    []*expense.Expense
	settlements []*settlement.Settlement
}

func (s *Service) load(ctx context.Context, tripID int64) (*snapshot, error) {
	t, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, trip.ErrTripNotFound
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	roster, err := s.tripRepo.RosterTx(ctx, tx, tripID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByTripTx(ctx, tx, tripID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.settlementRepo.ListByTripTx(ctx, tx, tripID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to close snapshot: %w", err)
	}
	return &snapshot{roster: roster, expenses: expenses, settlements: settlements}, nil
}

// Balances recomputes every participant's net balance from the full
// history
func (s *Service) Balances(ctx context.Context, tripID int64) ([]Balance, error) {
	snap, err := s.load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return Balances(snap.roster, snap.expenses, snap.settlements)
}

// Obligations recomputes one participant's pairwise obligations from
// the full history
func (s *Service) Obligations(ctx context.Context, tripID, participantID int64) ([]Obligation, error) {
	snap, err := s.load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return Pairwise(snap.roster, snap.expenses, snap.settlements, participantID)
}

// Edges recomputes the full pairwise debt graph from the full history
func (s *Service) Edges(ctx context.Context, tripID int64) ([]Edge, error) {
	snap, err := s.load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return PairwiseAll(snap.roster, snap.expenses, snap.settlements)
}
