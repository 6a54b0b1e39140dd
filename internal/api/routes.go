package api

import (
	"net/http"

	"github.com/RMahshie/cutoff/internal/api/handlers"
	"github.com/RMahshie/cutoff/internal/export"
	"github.com/RMahshie/cutoff/internal/repository"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, calcRepo repository.CalculationRepository, exportSvc export.ExportService) {
	calcHandler := handlers.NewCalculationHandler(calcRepo, exportSvc)

	huma.Register(api, huma.Operation{
		OperationID: "createCalculation",
		Method:      http.MethodPost,
		Path:        "/api/calculations",
		Summary:     "Solve an RC low-pass filter",
		Description: "Parses the two supplied quantities, solves for the missing third one and stores the result in the session history",
		Tags:        []string{"Calculations"},
	}, calcHandler.CreateCalculation)

	huma.Register(api, huma.Operation{
		OperationID: "getCalculation",
		Method:      http.MethodGet,
		Path:        "/api/calculations/{id}",
		Summary:     "Get a calculation",
		Description: "Returns a stored calculation by ID",
		Tags:        []string{"Calculations"},
	}, calcHandler.GetCalculation)

	huma.Register(api, huma.Operation{
		OperationID: "listCalculations",
		Method:      http.MethodGet,
		Path:        "/api/calculations",
		Summary:     "List a session's calculations",
		Description: "Returns the calculation history for a session, newest first",
		Tags:        []string{"Calculations"},
	}, calcHandler.ListCalculations)

	huma.Register(api, huma.Operation{
		OperationID: "exportCalculation",
		Method:      http.MethodPost,
		Path:        "/api/calculations/{id}/export",
		Summary:     "Export a response curve",
		Description: "Renders the calculation's frequency response as a CSV object and returns a time-limited download URL",
		Tags:        []string{"Calculations"},
	}, calcHandler.ExportCalculation)
}
