package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the database schema. Every statement is
// idempotent so the server can run them unconditionally at startup.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			currency CHAR(3) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS trip_participants (
			id BIGSERIAL PRIMARY KEY,
			trip_id BIGINT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			display_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'invited',
			joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_trip_participants_trip_id ON trip_participants(trip_id)`,

		// Amounts are stored in minor units (cents); the application
		// never does arithmetic on floating point money.
		`CREATE TABLE IF NOT EXISTS expenses (
			id BIGSERIAL PRIMARY KEY,
			trip_id BIGINT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			paid_by BIGINT NOT NULL REFERENCES trip_participants(id),
			description TEXT NOT NULL,
			amount_minor BIGINT NOT NULL,
			currency CHAR(3) NOT NULL,
			split_method TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_expenses_trip_id ON expenses(trip_id)`,

		`CREATE TABLE IF NOT EXISTS expense_shares (
			id BIGSERIAL PRIMARY KEY,
			expense_id BIGINT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
			participant_id BIGINT NOT NULL REFERENCES trip_participants(id),
			basis_points BIGINT,
			shares_count BIGINT,
			owed_minor BIGINT NOT NULL,
			UNIQUE (expense_id, participant_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_expense_shares_expense_id ON expense_shares(expense_id)`,

		`CREATE TABLE IF NOT EXISTS settlements (
			id BIGSERIAL PRIMARY KEY,
			trip_id BIGINT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			payer_id BIGINT NOT NULL REFERENCES trip_participants(id),
			payee_id BIGINT NOT NULL REFERENCES trip_participants(id),
			amount_minor BIGINT NOT NULL CHECK (amount_minor > 0),
			currency CHAR(3) NOT NULL,
			note TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_settlements_trip_id ON settlements(trip_id)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
