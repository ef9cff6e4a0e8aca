package estimate

type CreateEstimateRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	ProfitMargin    *float64 `json:"profit_margin"`
	LocationZipcode string   `json:"location_zipcode"`
	ClientID        *int64   `json:"client_id"`
}

type UpdateEstimateRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	ProfitMargin    *float64 `json:"profit_margin"`
	LocationZipcode *string  `json:"location_zipcode"`
	ClientID        *int64   `json:"client_id"`
}

type MaterialItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity" binding:"required"`
	Unit        string   `json:"unit"`
	UnitCost    *float64 `json:"unit_cost" binding:"required"`
	Category    string   `json:"category"`
}

type LaborItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Hours       *float64 `json:"hours" binding:"required"`
	RatePerHour *float64 `json:"rate_per_hour" binding:"required"`
	Category    string   `json:"category"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// DraftMergeRequest carries one partial-edit step of the create/edit flow.
// Target is the estimate id being edited, or "new" for a creation flow.
type DraftMergeRequest struct {
	Target string         `json:"target" binding:"required"`
	Fields map[string]any `json:"fields" binding:"required"`
}

type SendEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
