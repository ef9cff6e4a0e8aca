package suggestion

import "estimateai/internal/domain"

type SuggestedMaterial struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitCost  float64 `json:"unit_cost"`
	TotalCost float64 `json:"total_cost"`
	Category  string  `json:"category,omitempty"`
}

type SuggestedLabor struct {
	Name        string  `json:"name"`
	Hours       float64 `json:"hours"`
	RatePerHour float64 `json:"rate_per_hour"`
	TotalCost   float64 `json:"total_cost"`
	Category    string  `json:"category,omitempty"`
}

// Suggestion is the structured guess produced by the external generative
// service. The nil-ness of Materials/Labor is meaningful: a key absent from
// the payload decodes to a nil slice, an explicit [] to an empty one.
type Suggestion struct {
	Materials             []SuggestedMaterial `json:"materials"`
	Labor                 []SuggestedLabor    `json:"labor"`
	EstimatedTotal        float64             `json:"estimated_total"`
	EstimatedDurationDays int                 `json:"estimated_duration_days"`
	ConfidenceScore       float64             `json:"confidence_score"`
	Analysis              string              `json:"analysis,omitempty"`
}

type ProcessTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ProcessVoiceRequest carries a browser-side speech transcript; the audio
// itself never reaches this service.
type ProcessVoiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type ProcessResult struct {
	Suggestion *Suggestion           `json:"suggestion"`
	Materials  []domain.MaterialItem `json:"materials"`
	Labor      []domain.LaborItem    `json:"labor"`
}
