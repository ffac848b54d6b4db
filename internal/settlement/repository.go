package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tripwhizz/expenses/internal/money"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so reads can run on a
// single snapshot when a caller needs one.
type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new settlement into the database
func (r *Repository) Create(ctx context.Context, settlement *Settlement) (*Settlement, error) {
	query := `
		INSERT INTO settlements (trip_id, payer_id, payee_id, amount_minor, currency, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		settlement.TripID,
		settlement.PayerID,
		settlement.PayeeID,
		int64(settlement.Amount),
		settlement.Currency,
		settlement.Note,
	).Scan(&settlement.ID, &settlement.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return settlement, nil
}

// ListByTrip retrieves all settlements of a trip, newest first
func (r *Repository) ListByTrip(ctx context.Context, tripID int64) ([]*Settlement, error) {
	return listByTrip(ctx, r.db, tripID)
}

// ListByTripTx is ListByTrip on an existing transaction, for callers
// that need settlements and expenses from one consistent snapshot.
func (r *Repository) ListByTripTx(ctx context.Context, tx *sql.Tx, tripID int64) ([]*Settlement, error) {
	return listByTrip(ctx, tx, tripID)
}

func listByTrip(ctx context.Context, q dbtx, tripID int64) ([]*Settlement, error) {
	query := `
		SELECT s.id, s.trip_id, s.payer_id, s.payee_id, s.amount_minor, s.currency, s.note, s.created_at,
		       payer.display_name AS payer_name, payee.display_name AS payee_name
		FROM settlements s
		JOIN trip_participants payer ON s.payer_id = payer.id
		JOIN trip_participants payee ON s.payee_id = payee.id
		WHERE s.trip_id = $1
		ORDER BY s.created_at DESC, s.id DESC
	`

	rows, err := q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		settlement := &Settlement{}
		var amountMinor int64
		if err := rows.Scan(
			&settlement.ID,
			&settlement.TripID,
			&settlement.PayerID,
			&settlement.PayeeID,
			&amountMinor,
			&settlement.Currency,
			&settlement.Note,
			&settlement.CreatedAt,
			&settlement.PayerName,
			&settlement.PayeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlement.Amount = money.Amount(amountMinor)
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
