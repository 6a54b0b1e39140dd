package handlers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/RMahshie/cutoff/internal/export"
	"github.com/RMahshie/cutoff/internal/repository"
	"github.com/RMahshie/cutoff/pkg/models"
	"github.com/RMahshie/cutoff/pkg/quantity"
	"github.com/RMahshie/cutoff/pkg/rcfilter"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CalculationHandler handles calculation-related HTTP requests
type CalculationHandler struct {
	repo      repository.CalculationRepository
	exportSvc export.ExportService
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(repo repository.CalculationRepository, exportSvc export.ExportService) *CalculationHandler {
	return &CalculationHandler{
		repo:      repo,
		exportSvc: exportSvc,
	}
}

// CreateCalculation parses the two supplied quantities, solves for the
// missing third one and stores the result in the session history.
func (h *CalculationHandler) CreateCalculation(ctx context.Context, req *models.CreateCalculationRequest) (*models.CreateCalculationResponse, error) {
	log.Info().
		Str("sessionID", req.Body.SessionID).
		Strs("inputs", req.Body.Inputs).
		Msg("Creating new calculation")

	if len(req.Body.Inputs) != 2 {
		return nil, huma.Error400BadRequest("Exactly two values are required")
	}

	first, err := quantity.Parse(req.Body.Inputs[0])
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}
	second, err := quantity.Parse(req.Body.Inputs[1])
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}

	// Inputs are carried at three significant figures, same as results.
	first.Magnitude = quantity.RoundSig(first.Magnitude, 3)
	second.Magnitude = quantity.RoundSig(second.Magnitude, 3)

	sol, err := rcfilter.Solve(first, second)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}

	now := time.Now()
	calc := &models.Calculation{
		ID:          uuid.New().String(),
		SessionID:   req.Body.SessionID,
		InputA:      req.Body.Inputs[0],
		InputB:      req.Body.Inputs[1],
		SolvedKind:  sol.Kind.String(),
		Frequency:   sol.Frequency,
		Resistance:  sol.Resistance,
		Capacitance: sol.Capacitance,
		Result:      sol.Formatted(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(ctx, calc); err != nil {
		log.Error().Err(err).Str("sessionID", calc.SessionID).Msg("Failed to store calculation")
		return nil, huma.Error500InternalServerError("Failed to store calculation", err)
	}

	calculationsTotal.WithLabelValues(calc.SolvedKind).Inc()
	log.Info().
		Str("calculationID", calc.ID).
		Str("solved", calc.SolvedKind).
		Str("result", calc.Result).
		Msg("Calculation stored")

	return &models.CreateCalculationResponse{
		Body: calculationBody(calc, sol.Sentence()),
	}, nil
}

// GetCalculation returns a single stored calculation by ID.
func (h *CalculationHandler) GetCalculation(ctx context.Context, req *models.GetCalculationRequest) (*models.GetCalculationResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid calculation ID", err)
	}

	calc, err := h.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.Error404NotFound("Calculation not found", err)
		}
		log.Error().Err(err).Str("calculationID", req.ID).Msg("Failed to load calculation")
		return nil, huma.Error500InternalServerError("Failed to load calculation", err)
	}

	var sentence string
	if sol, ok := solutionFor(calc); ok {
		sentence = sol.Sentence()
	}

	return &models.GetCalculationResponse{
		Body: calculationBody(calc, sentence),
	}, nil
}

// ListCalculations returns the calculation history for a session,
// newest first.
func (h *CalculationHandler) ListCalculations(ctx context.Context, req *models.ListCalculationsRequest) (*models.ListCalculationsResponse, error) {
	calcs, err := h.repo.ListBySession(ctx, req.SessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("Failed to list calculations")
		return nil, huma.Error500InternalServerError("Failed to list calculations", err)
	}

	resp := &models.ListCalculationsResponse{}
	resp.Body.Calculations = make([]models.CalculationSummary, 0, len(calcs))
	for _, calc := range calcs {
		resp.Body.Calculations = append(resp.Body.Calculations, models.CalculationSummary{
			ID:        calc.ID,
			Inputs:    []string{calc.InputA, calc.InputB},
			Solved:    calc.SolvedKind,
			Result:    calc.Result,
			CreatedAt: calc.CreatedAt,
		})
	}

	return resp, nil
}

// ExportCalculation renders the calculation's frequency response as a
// CSV object and returns a presigned download URL for it.
func (h *CalculationHandler) ExportCalculation(ctx context.Context, req *models.ExportCalculationRequest) (*models.ExportCalculationResponse, error) {
	log.Info().Str("calculationID", req.ID).Msg("Export requested")

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid calculation ID", err)
	}

	calc, err := h.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.Error404NotFound("Calculation not found", err)
		}
		log.Error().Err(err).Str("calculationID", req.ID).Msg("Failed to load calculation")
		return nil, huma.Error500InternalServerError("Failed to load calculation", err)
	}

	result, err := h.exportSvc.ExportCurve(ctx, calc)
	if err != nil {
		log.Error().Err(err).Str("calculationID", req.ID).Msg("Failed to export response curve")
		return nil, huma.Error500InternalServerError("Failed to export response curve", err)
	}

	curveExportsTotal.Inc()
	return &models.ExportCalculationResponse{Body: *result}, nil
}

// calculationBody maps a stored calculation onto the shared response body.
func calculationBody(calc *models.Calculation, sentence string) models.CalculationBody {
	return models.CalculationBody{
		ID:          calc.ID,
		Inputs:      []string{calc.InputA, calc.InputB},
		Solved:      calc.SolvedKind,
		Result:      calc.Result,
		Sentence:    sentence,
		Frequency:   calc.Frequency,
		Resistance:  calc.Resistance,
		Capacitance: calc.Capacitance,
		ExportKey:   calc.ExportKey,
		CreatedAt:   calc.CreatedAt,
	}
}

// solutionFor rebuilds a solution from a stored row so the answer
// sentence can be rendered without re-solving.
func solutionFor(calc *models.Calculation) (rcfilter.Solution, bool) {
	kind, ok := quantity.ParseKind(calc.SolvedKind)
	if !ok {
		return rcfilter.Solution{}, false
	}

	sol := rcfilter.Solution{
		Kind:        kind,
		Frequency:   calc.Frequency,
		Resistance:  calc.Resistance,
		Capacitance: calc.Capacitance,
	}
	switch kind {
	case quantity.Frequency:
		sol.Value = calc.Frequency
	case quantity.Resistance:
		sol.Value = calc.Resistance
	case quantity.Capacitance:
		sol.Value = calc.Capacitance
	}
	return sol, true
}
