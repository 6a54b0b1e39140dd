package models

// CurvePoint represents a single sample of the filter's frequency response
type CurvePoint struct {
	Frequency float64 `json:"frequency_hz" doc:"Frequency in Hz"`
	Magnitude float64 `json:"magnitude_db" doc:"Gain relative to passband in dB"`
	Phase     float64 `json:"phase_deg" doc:"Phase shift in degrees"`
}

// CurveExport represents an exported response curve in object storage
type CurveExport struct {
	Key       string `json:"key" doc:"Object key of the exported CSV"`
	URL       string `json:"url" doc:"Pre-signed download URL"`
	ExpiresIn int    `json:"expires_in" doc:"URL expiration time in seconds"`
	Points    int    `json:"points" doc:"Number of curve points exported"`
}
