// Package costing holds the pure estimate math: line totals, material/labor
// aggregation and profit-margin application. Both the live editing summary
// and the save-time total snapshot go through ComputeTotals so the two can
// never diverge.
package costing

import (
	"errors"
	"math"

	"estimateai/internal/domain"
)

var (
	ErrNegativeLineInput = errors.New("line item inputs must be finite and non-negative")
	ErrMarginOutOfRange  = errors.New("profit margin must be between 0 and 100")
)

type Breakdown struct {
	MaterialTotal float64 `json:"material_total"`
	LaborTotal    float64 `json:"labor_total"`
	Subtotal      float64 `json:"subtotal"`
}

type Margin struct {
	ProfitAmount float64 `json:"profit_amount"`
	Total        float64 `json:"total"`
}

type Totals struct {
	MaterialTotal float64 `json:"material_total"`
	LaborTotal    float64 `json:"labor_total"`
	Subtotal      float64 `json:"subtotal"`
	ProfitAmount  float64 `json:"profit_amount"`
	Total         float64 `json:"total"`
}

// LineTotal multiplies quantity by unit rate (or hours by hourly rate).
// Inputs are validated by the caller, see ValidateLineInputs.
func LineTotal(a, b float64) float64 {
	return a * b
}

// ValidateLineInputs rejects negative or non-finite quantity/rate pairs
// before they reach LineTotal. Clamping is deliberately not done here.
func ValidateLineInputs(a, b float64) error {
	for _, v := range [2]float64{a, b} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNegativeLineInput
		}
	}
	return nil
}

// ValidateMargin enforces the 0..100 precondition of ApplyMargin at the
// input boundary.
func ValidateMargin(marginPercent float64) error {
	if marginPercent < 0 || marginPercent > 100 || math.IsNaN(marginPercent) {
		return ErrMarginOutOfRange
	}
	return nil
}

// Aggregate sums material and labor line totals in a single pass. No
// rounding happens here; currency rounding belongs to presentation.
func Aggregate(materials []domain.MaterialItem, labor []domain.LaborItem) Breakdown {
	var b Breakdown
	for _, m := range materials {
		b.MaterialTotal += m.TotalCost
	}
	for _, l := range labor {
		b.LaborTotal += l.TotalCost
	}
	b.Subtotal = b.MaterialTotal + b.LaborTotal
	return b
}

// ApplyMargin adds marginPercent of the subtotal on top of it. The 0..100
// precondition is the caller's to check (ValidateMargin); the function
// itself never clamps.
func ApplyMargin(subtotal, marginPercent float64) Margin {
	profit := subtotal * marginPercent / 100
	return Margin{
		ProfitAmount: profit,
		Total:        subtotal + profit,
	}
}

// ComputeTotals is the one composition of Aggregate and ApplyMargin used
// everywhere an estimate's numbers are shown or persisted.
func ComputeTotals(profitMargin float64, materials []domain.MaterialItem, labor []domain.LaborItem) Totals {
	b := Aggregate(materials, labor)
	m := ApplyMargin(b.Subtotal, profitMargin)
	return Totals{
		MaterialTotal: b.MaterialTotal,
		LaborTotal:    b.LaborTotal,
		Subtotal:      b.Subtotal,
		ProfitAmount:  m.ProfitAmount,
		Total:         m.Total,
	}
}
