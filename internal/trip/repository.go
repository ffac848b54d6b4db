package trip

import (
	"context"
	"database/sql"
	"fmt"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so reads can run on a
// single snapshot when a caller needs one.
type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository handles trip and participant persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trip into the database
func (r *Repository) Create(ctx context.Context, name, currency string) (*Trip, error) {
	query := `
		INSERT INTO trips (name, currency)
		VALUES ($1, $2)
		RETURNING id, name, currency, created_at
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, name, currency).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Currency,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return trip, nil
}

// GetByID retrieves a trip by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Trip, error) {
	query := `
		SELECT id, name, currency, created_at
		FROM trips
		WHERE id = $1
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Currency,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// AddParticipant inserts a new participant into a trip
func (r *Repository) AddParticipant(ctx context.Context, tripID int64, displayName string, status ParticipantStatus) (*Participant, error) {
	query := `
		INSERT INTO trip_participants (trip_id, display_name, status)
		VALUES ($1, $2, $3)
		RETURNING id, trip_id, display_name, status, joined_at
	`

	participant := &Participant{}
	err := r.db.QueryRowContext(ctx, query, tripID, displayName, status).Scan(
		&participant.ID,
		&participant.TripID,
		&participant.DisplayName,
		&participant.Status,
		&participant.JoinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	return participant, nil
}

// ListParticipants retrieves all participants of a trip, any status
func (r *Repository) ListParticipants(ctx context.Context, tripID int64) ([]*Participant, error) {
	return listParticipants(ctx, r.db, tripID)
}

func listParticipants(ctx context.Context, q dbtx, tripID int64) ([]*Participant, error) {
	query := `
		SELECT id, trip_id, display_name, status, joined_at
		FROM trip_participants
		WHERE trip_id = $1
		ORDER BY joined_at ASC, id ASC
	`

	rows, err := q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		participant := &Participant{}
		if err := rows.Scan(
			&participant.ID,
			&participant.TripID,
			&participant.DisplayName,
			&participant.Status,
			&participant.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// Roster retrieves the accepted participants of a trip keyed by id
func (r *Repository) Roster(ctx context.Context, tripID int64) (Roster, error) {
	return roster(ctx, r.db, tripID)
}

// RosterTx is Roster on an existing transaction, for callers that need
// the roster and the trip history from one consistent snapshot.
func (r *Repository) RosterTx(ctx context.Context, tx *sql.Tx, tripID int64) (Roster, error) {
	return roster(ctx, tx, tripID)
}

func roster(ctx context.Context, q dbtx, tripID int64) (Roster, error) {
	participants, err := listParticipants(ctx, q, tripID)
	if err != nil {
		return nil, err
	}

	accepted := make(Roster)
	for _, p := range participants {
		if p.Status == ParticipantStatusAccepted {
			accepted[p.ID] = p
		}
	}
	return accepted, nil
}
