package postgres

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	input_a TEXT NOT NULL,
	input_b TEXT NOT NULL,
	solved_kind TEXT NOT NULL,
	frequency_hz DOUBLE PRECISION NOT NULL,
	resistance_ohms DOUBLE PRECISION NOT NULL,
	capacitance_farads DOUBLE PRECISION NOT NULL,
	result TEXT NOT NULL,
	export_key TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_session_id ON calculations (session_id);
`

// Migrate creates the calculations schema if it does not already exist.
// It is idempotent and runs at server start and in integration tests.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
