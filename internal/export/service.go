package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/RMahshie/cutoff/internal/repository"
	"github.com/RMahshie/cutoff/internal/storage"
	"github.com/RMahshie/cutoff/pkg/models"
	"github.com/RMahshie/cutoff/pkg/rcfilter"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Sweep parameters: two decades either side of the corner frequency at
// ten points per decade.
const (
	decadesAround   = 2
	pointsPerDecade = 10
)

// ExportService generates response-curve exports for stored calculations
type ExportService interface {
	ExportCurve(ctx context.Context, calc *models.Calculation) (*models.CurveExport, error)
}

type exportService struct {
	store      storage.ExportStore
	repository repository.CalculationRepository
}

// NewExportService creates a new export service
func NewExportService(store storage.ExportStore, repo repository.CalculationRepository) ExportService {
	return &exportService{
		store:      store,
		repository: repo,
	}
}

// ExportCurve samples the calculation's frequency response, renders it as
// CSV, uploads it, and records the object key on the calculation. The
// returned CurveExport carries a pre-signed download URL.
func (s *exportService) ExportCurve(ctx context.Context, calc *models.Calculation) (*models.CurveExport, error) {
	// Step 1: Sample the response around the corner frequency
	span := math.Pow10(decadesAround)
	points := rcfilter.ResponseCurve(calc.Resistance, calc.Capacitance,
		calc.Frequency/span, calc.Frequency*span,
		2*decadesAround*pointsPerDecade+1)
	if len(points) == 0 {
		return nil, fmt.Errorf("calculation %s has no usable component values", calc.ID)
	}

	// Step 2: Render CSV
	data, err := curveCSV(points)
	if err != nil {
		return nil, fmt.Errorf("failed to render curve CSV: %w", err)
	}

	// Step 3: Upload
	key := fmt.Sprintf("exports/%s.csv", calc.ID)
	if err := s.store.Upload(ctx, key, "text/csv", data); err != nil {
		return nil, fmt.Errorf("failed to upload curve: %w", err)
	}

	// Step 4: Record the object key
	id, err := uuid.Parse(calc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid calculation ID %q: %w", calc.ID, err)
	}
	if err := s.repository.UpdateExportKey(ctx, id, key); err != nil {
		return nil, fmt.Errorf("failed to record export key: %w", err)
	}

	// Step 5: Hand back a download URL
	url, err := s.store.GenerateDownloadURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to generate download URL: %w", err)
	}

	log.Info().
		Str("calculation_id", calc.ID).
		Str("key", key).
		Int("points", len(points)).
		Msg("Exported response curve")

	return &models.CurveExport{
		Key:       key,
		URL:       url,
		ExpiresIn: int(storage.DownloadURLExpiry.Seconds()),
		Points:    len(points),
	}, nil
}

// curveCSV renders curve samples as frequency_hz,magnitude_db,phase_deg
// rows with a header line.
func curveCSV(points []models.CurvePoint) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"frequency_hz", "magnitude_db", "phase_deg"}); err != nil {
		return nil, err
	}
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.Frequency, 'g', -1, 64),
			strconv.FormatFloat(p.Magnitude, 'g', -1, 64),
			strconv.FormatFloat(p.Phase, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
