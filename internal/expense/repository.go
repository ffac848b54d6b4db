package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/tripwhizz/expenses/internal/money"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so reads can run on a
// single snapshot when a caller needs one.
type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense and all its shares in one transaction so
// the append-only history never contains an expense without its shares.
func (r *Repository) Create(ctx context.Context, expense *Expense) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (trip_id, paid_by, description, amount_minor, currency, split_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query,
		expense.TripID,
		expense.PaidByID,
		expense.Description,
		int64(expense.Amount),
		expense.Currency,
		expense.SplitMethod,
	).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	shareQuery := `
		INSERT INTO expense_shares (expense_id, participant_id, basis_points, shares_count, owed_minor)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for _, share := range expense.Shares {
		share.ExpenseID = expense.ID
		err = tx.QueryRowContext(ctx, shareQuery,
			expense.ID,
			share.ParticipantID,
			share.BasisPoints,
			share.SharesCount,
			int64(share.OwedAmount),
		).Scan(&share.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}
	return expense, nil
}

// GetByID retrieves an expense with its shares
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.paid_by, e.description, e.amount_minor, e.currency, e.split_method, e.created_at,
		       p.display_name AS paid_by_name
		FROM expenses e
		JOIN trip_participants p ON e.paid_by = p.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	var amountMinor int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.PaidByID,
		&expense.Description,
		&amountMinor,
		&expense.Currency,
		&expense.SplitMethod,
		&expense.CreatedAt,
		&expense.PaidByName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Amount = money.Amount(amountMinor)

	shares, err := sharesByExpenseIDs(ctx, r.db, []int64{expense.ID})
	if err != nil {
		return nil, err
	}
	expense.Shares = shares[expense.ID]

	return expense, nil
}

// ListByTrip retrieves all expenses of a trip with shares, newest first
func (r *Repository) ListByTrip(ctx context.Context, tripID int64) ([]*Expense, error) {
	return listByTrip(ctx, r.db, tripID)
}

// ListByTripTx is ListByTrip on an existing transaction, for callers
// that need expenses and settlements from one consistent snapshot.
func (r *Repository) ListByTripTx(ctx context.Context, tx *sql.Tx, tripID int64) ([]*Expense, error) {
	return listByTrip(ctx, tx, tripID)
}

func listByTrip(ctx context.Context, q dbtx, tripID int64) ([]*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.paid_by, e.description, e.amount_minor, e.currency, e.split_method, e.created_at,
		       p.display_name AS paid_by_name
		FROM expenses e
		JOIN trip_participants p ON e.paid_by = p.id
		WHERE e.trip_id = $1
		ORDER BY e.created_at DESC, e.id DESC
	`

	rows, err := q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	var ids []int64
	for rows.Next() {
		expense := &Expense{}
		var amountMinor int64
		if err := rows.Scan(
			&expense.ID,
			&expense.TripID,
			&expense.PaidByID,
			&expense.Description,
			&amountMinor,
			&expense.Currency,
			&expense.SplitMethod,
			&expense.CreatedAt,
			&expense.PaidByName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.Amount(amountMinor)
		expenses = append(expenses, expense)
		ids = append(ids, expense.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if len(ids) == 0 {
		return expenses, nil
	}
	shares, err := sharesByExpenseIDs(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		expense.Shares = shares[expense.ID]
	}

	return expenses, nil
}

// Delete removes an expense; shares cascade
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// sharesByExpenseIDs loads the shares of several expenses at once,
// keyed by expense id, preserving insertion order per expense.
func sharesByExpenseIDs(ctx context.Context, q dbtx, ids []int64) (map[int64][]*Share, error) {
	query := `
		SELECT s.id, s.expense_id, s.participant_id, s.basis_points, s.shares_count, s.owed_minor,
		       p.display_name AS participant_name
		FROM expense_shares s
		JOIN trip_participants p ON s.participant_id = p.id
		WHERE s.expense_id = ANY($1)
		ORDER BY s.expense_id ASC, s.id ASC
	`

	rows, err := q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	shares := make(map[int64][]*Share)
	for rows.Next() {
		share := &Share{}
		var owedMinor int64
		if err := rows.Scan(
			&share.ID,
			&share.ExpenseID,
			&share.ParticipantID,
			&share.BasisPoints,
			&share.SharesCount,
			&owedMinor,
			&share.ParticipantName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		share.OwedAmount = money.Amount(owedMinor)
		shares[share.ExpenseID] = append(shares[share.ExpenseID], share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}

	return shares, nil
}
