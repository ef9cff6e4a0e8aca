package suggestion

import (
	"encoding/json"

	"github.com/google/uuid"

	"estimateai/internal/domain"
)

// tempIDPrefix marks line items that exist only client-side until the
// owning estimate is committed.
const tempIDPrefix = "tmp_"

// ParseSuggestion validates the raw AI payload at the boundary so the rest
// of the code never has to deal with ad hoc shapes.
func ParseSuggestion(raw []byte) (*Suggestion, error) {
	var s Suggestion
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrMalformedSuggestion
	}
	if s.ConfidenceScore < 0 || s.ConfidenceScore > 1 {
		return nil, ErrMalformedSuggestion
	}
	return &s, nil
}

// Import maps a parsed suggestion 1:1 into material and labor items with
// fresh temporary ids. Suggested totals are taken verbatim, never re-derived
// from quantity times rate: the generative service may bake waste factors or
// its own rounding into them.
//
// A suggestion that omits the materials or labor array entirely violates the
// collaborator contract and is rejected; an explicit empty array is fine and
// imports as an empty list.
func Import(s *Suggestion) ([]domain.MaterialItem, []domain.LaborItem, error) {
	if s == nil || s.Materials == nil || s.Labor == nil {
		return nil, nil, ErrEmptySuggestion
	}

	materials := make([]domain.MaterialItem, 0, len(s.Materials))
	for _, m := range s.Materials {
		category := m.Category
		if category == "" {
			category = domain.DefaultMaterialCategory
		}
		materials = append(materials, domain.MaterialItem{
			TempID:    tempID(),
			Name:      m.Name,
			Quantity:  m.Quantity,
			Unit:      m.Unit,
			UnitCost:  m.UnitCost,
			TotalCost: m.TotalCost,
			Category:  category,
		})
	}

	labor := make([]domain.LaborItem, 0, len(s.Labor))
	for _, l := range s.Labor {
		category := l.Category
		if category == "" {
			category = domain.DefaultLaborCategory
		}
		labor = append(labor, domain.LaborItem{
			TempID:      tempID(),
			Name:        l.Name,
			Hours:       l.Hours,
			RatePerHour: l.RatePerHour,
			TotalCost:   l.TotalCost,
			Category:    category,
		})
	}

	return materials, labor, nil
}

func tempID() string {
	return tempIDPrefix + uuid.NewString()
}
