package domain

import (
	"errors"
	"time"
)

type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "draft"
	EstimatePending  EstimateStatus = "pending"
	EstimateAccepted EstimateStatus = "accepted"
	EstimateRejected EstimateStatus = "rejected"
	EstimateArchived EstimateStatus = "archived"
)

var ErrInvalidStatusTransition = errors.New("invalid_status_transition")

// statusTransitions is the single source of truth for the estimate lifecycle:
// draft -> pending -> accepted|rejected, archived reachable from everything
// except archived itself.
var statusTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateDraft:    {EstimatePending, EstimateArchived},
	EstimatePending:  {EstimateAccepted, EstimateRejected, EstimateArchived},
	EstimateAccepted: {EstimateArchived},
	EstimateRejected: {EstimateArchived},
	EstimateArchived: {},
}

func (s EstimateStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates a status change against the lifecycle table and
// returns the new status, or ErrInvalidStatusTransition.
func (s EstimateStatus) Transition(next EstimateStatus) (EstimateStatus, error) {
	if !next.Valid() || !s.CanTransitionTo(next) {
		return s, ErrInvalidStatusTransition
	}
	return next, nil
}

type Estimate struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"user_id"`
	Title           string         `json:"title" validate:"required"`
	Description     string         `json:"description,omitempty" gorm:"type:text"`
	Status          EstimateStatus `json:"status"`
	TotalCost       float64        `json:"total_cost"`
	ProfitMargin    float64        `json:"profit_margin" validate:"gte=0,lte=100"`
	LocationZipcode string         `json:"location_zipcode,omitempty" gorm:"size:10"`
	ClientID        *int64         `json:"client_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Client    *Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Materials []MaterialItem `json:"materials,omitempty" gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
	Labor     []LaborItem    `json:"labor,omitempty" gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
}

// MaterialItem is a priced material line owned by exactly one estimate.
// TotalCost is kept equal to Quantity*UnitCost by the estimate service on
// every write; imported AI items are the one exception (their totals are
// taken verbatim from the suggestion).
type MaterialItem struct {
	ID          int64   `json:"id"`
	EstimateID  int64   `json:"estimate_id"`
	TempID      string  `json:"temp_id,omitempty" gorm:"-"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
	TotalCost   float64 `json:"total_cost"`
	Category    string  `json:"category,omitempty"`
}

// LaborItem mirrors MaterialItem but is keyed by hours and an hourly rate.
type LaborItem struct {
	ID          int64   `json:"id"`
	EstimateID  int64   `json:"estimate_id"`
	TempID      string  `json:"temp_id,omitempty" gorm:"-"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	RatePerHour float64 `json:"rate_per_hour" validate:"gte=0"`
	TotalCost   float64 `json:"total_cost"`
	Category    string  `json:"category,omitempty"`
}
