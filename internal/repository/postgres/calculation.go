package postgres

import (
	"context"
	"database/sql"

	"github.com/RMahshie/cutoff/internal/repository"
	"github.com/RMahshie/cutoff/pkg/models"
	"github.com/google/uuid"
)

// PostgresCalculationRepository implements CalculationRepository for PostgreSQL
type PostgresCalculationRepository struct {
	db *sql.DB
}

// NewPostgresCalculationRepository creates a new PostgreSQL calculation repository
func NewPostgresCalculationRepository(db *sql.DB) repository.CalculationRepository {
	return &PostgresCalculationRepository{db: db}
}

// Create inserts a new calculation record
func (r *PostgresCalculationRepository) Create(ctx context.Context, calc *models.Calculation) error {
	query := `
		INSERT INTO calculations (id, session_id, input_a, input_b, solved_kind, frequency_hz, resistance_ohms, capacitance_farads, result, export_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		calc.ID,
		calc.SessionID,
		calc.InputA,
		calc.InputB,
		calc.SolvedKind,
		calc.Frequency,
		calc.Resistance,
		calc.Capacitance,
		calc.Result,
		calc.ExportKey,
		calc.CreatedAt,
		calc.UpdatedAt)

	return err
}

// GetByID retrieves a calculation by ID
func (r *PostgresCalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error) {
	query := `
		SELECT id, session_id, input_a, input_b, solved_kind, frequency_hz, resistance_ohms, capacitance_farads, result, export_key, created_at, updated_at
		FROM calculations
		WHERE id = $1`

	var calc models.Calculation
	var exportKey sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&calc.ID,
		&calc.SessionID,
		&calc.InputA,
		&calc.InputB,
		&calc.SolvedKind,
		&calc.Frequency,
		&calc.Resistance,
		&calc.Capacitance,
		&calc.Result,
		&exportKey,
		&calc.CreatedAt,
		&calc.UpdatedAt)

	if err != nil {
		return nil, err
	}

	if exportKey.Valid {
		calc.ExportKey = &exportKey.String
	}

	return &calc, nil
}

// ListBySession retrieves all calculations for a session, newest first
func (r *PostgresCalculationRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.Calculation, error) {
	query := `
		SELECT id, session_id, input_a, input_b, solved_kind, frequency_hz, resistance_ohms, capacitance_farads, result, export_key, created_at, updated_at
		FROM calculations
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []*models.Calculation
	for rows.Next() {
		var calc models.Calculation
		var exportKey sql.NullString

		err := rows.Scan(
			&calc.ID,
			&calc.SessionID,
			&calc.InputA,
			&calc.InputB,
			&calc.SolvedKind,
			&calc.Frequency,
			&calc.Resistance,
			&calc.Capacitance,
			&calc.Result,
			&exportKey,
			&calc.CreatedAt,
			&calc.UpdatedAt)

		if err != nil {
			return nil, err
		}

		if exportKey.Valid {
			calc.ExportKey = &exportKey.String
		}

		calcs = append(calcs, &calc)
	}

	return calcs, rows.Err()
}

// UpdateExportKey records the object key of an exported response curve
func (r *PostgresCalculationRepository) UpdateExportKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `
		UPDATE calculations
		SET export_key = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, key, id)
	return err
}
