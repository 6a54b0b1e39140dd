package repository

import (
	"context"

	"github.com/RMahshie/cutoff/pkg/models"
	"github.com/google/uuid"
)

// CalculationRepository defines the interface for calculation history operations
type CalculationRepository interface {
	Create(ctx context.Context, calc *models.Calculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error)
	ListBySession(ctx context.Context, sessionID string) ([]*models.Calculation, error)
	UpdateExportKey(ctx context.Context, id uuid.UUID, key string) error
}
