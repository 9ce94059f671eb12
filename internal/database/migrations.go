package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createTransactionsTable,
		createTransactionsUserIndex,
		createTransactionsDateIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(30) NOT NULL,
    password_hash VARCHAR(64) NOT NULL,
    profile_image TEXT,
    registered_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

// booking_date is kept as an ISO yyyy-mm-dd string on purpose: the
// dashboard's "today" count is defined as string equality on the stored
// date, not a timezone-aware comparison.
const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
    id VARCHAR(32) PRIMARY KEY,
    user_id INTEGER NOT NULL,
    booking_date VARCHAR(10) NOT NULL,
    booking_time VARCHAR(5) NOT NULL,
    field VARCHAR(50) NOT NULL,
    price BIGINT NOT NULL,
    payment_method VARCHAR(50) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    venue JSONB NOT NULL,
    payment_instructions JSONB,
    proof_file_name VARCHAR(255),
    proof_file_size BIGINT,
    proof_file_type VARCHAR(100),
    proof_uploaded_at TIMESTAMP,
    proof_file_data TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('pending', 'success', 'failed', 'cancelled'))
);`

const createTransactionsUserIndex = `
CREATE INDEX IF NOT EXISTS transactions_user_id_created_at_idx
ON transactions (user_id, created_at DESC);`

const createTransactionsDateIndex = `
CREATE INDEX IF NOT EXISTS transactions_booking_date_idx
ON transactions (booking_date);`
