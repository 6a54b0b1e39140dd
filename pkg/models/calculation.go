package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CreateCalculationRequest represents a request to solve an RC filter
type CreateCalculationRequest struct {
	Body struct {
		SessionID string   `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
		Inputs    []string `json:"inputs" minItems:"2" maxItems:"2" required:"true" doc:"Two known quantities in engineering notation, e.g. [\"200ko\", \"20kHz\"]"`
	}
}

// CalculationBody is the body shared by create and get responses
type CalculationBody struct {
	ID          string    `json:"id" doc:"Calculation unique identifier"`
	Inputs      []string  `json:"inputs" doc:"The two raw input values as supplied"`
	Solved      string    `json:"solved" enum:"frequency,resistance,capacitance" doc:"Which quantity was solved for"`
	Result      string    `json:"result" doc:"Solved value in engineering notation with unit, e.g. 39.8pF"`
	Sentence    string    `json:"sentence" doc:"Human-readable result sentence"`
	Frequency   float64   `json:"frequency_hz" doc:"Cutoff frequency in hertz"`
	Resistance  float64   `json:"resistance_ohms" doc:"Resistance in ohms"`
	Capacitance float64   `json:"capacitance_farads" doc:"Capacitance in farads"`
	ExportKey   *string   `json:"export_key,omitempty" doc:"Object key of the exported response curve, if any"`
	CreatedAt   time.Time `json:"created_at" doc:"Calculation creation timestamp"`
}

// CreateCalculationResponse represents the response from solving a filter
type CreateCalculationResponse struct {
	Body CalculationBody
}

// GetCalculationRequest represents a request to fetch a calculation
type GetCalculationRequest struct {
	ID string `path:"id" doc:"Calculation ID"`
}

// GetCalculationResponse represents a stored calculation
type GetCalculationResponse struct {
	Body CalculationBody
}

// ListCalculationsRequest represents a request for a session's history
type ListCalculationsRequest struct {
	SessionID string `query:"session_id" required:"true" doc:"Client session identifier"`
}

// CalculationSummary is one history entry in a list response
type CalculationSummary struct {
	ID        string    `json:"id" doc:"Calculation unique identifier"`
	Inputs    []string  `json:"inputs" doc:"The two raw input values as supplied"`
	Solved    string    `json:"solved" enum:"frequency,resistance,capacitance" doc:"Which quantity was solved for"`
	Result    string    `json:"result" doc:"Solved value in engineering notation with unit"`
	CreatedAt time.Time `json:"created_at" doc:"Calculation creation timestamp"`
}

// ListCalculationsResponse represents a session's calculation history
type ListCalculationsResponse struct {
	Body struct {
		Calculations []CalculationSummary `json:"calculations" doc:"History entries, newest first"`
	}
}

// ExportCalculationRequest represents a request to export a response curve
type ExportCalculationRequest struct {
	ID string `path:"id" doc:"Calculation ID"`
}

// ExportCalculationResponse represents the exported curve location
type ExportCalculationResponse struct {
	Body CurveExport
}

// Calculation represents the core calculation entity (for internal use)
type Calculation struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	InputA      string    `json:"input_a"`
	InputB      string    `json:"input_b"`
	SolvedKind  string    `json:"solved_kind"`
	Frequency   float64   `json:"frequency_hz"`
	Resistance  float64   `json:"resistance_ohms"`
	Capacitance float64   `json:"capacitance_farads"`
	Result      string    `json:"result"`
	ExportKey   *string   `json:"export_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
