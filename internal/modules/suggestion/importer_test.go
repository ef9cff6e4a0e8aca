package suggestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"estimateai/internal/domain"
)

func TestParseSuggestion_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseSuggestion([]byte(`{"materials": [`))
	assert.ErrorIs(t, err, ErrMalformedSuggestion)
}

func TestParseSuggestion_RejectsConfidenceOutOfRange(t *testing.T) {
	_, err := ParseSuggestion([]byte(`{"materials":[],"labor":[],"confidence_score":1.5}`))
	assert.ErrorIs(t, err, ErrMalformedSuggestion)
}

func TestParseSuggestion_AbsentKeyDecodesToNilSlice(t *testing.T) {
	s, err := ParseSuggestion([]byte(`{"materials":[{"name":"Drywall"}],"confidence_score":0.9}`))

	assert.NoError(t, err)
	assert.NotNil(t, s.Materials)
	assert.Nil(t, s.Labor)
}

func TestImport_MissingLaborArrayIsRejected(t *testing.T) {
	// a payload carrying materials but no labor key violates the contract
	s, err := ParseSuggestion([]byte(`{
		"materials": [{"name": "Paint", "quantity": 3, "unit": "gallon", "unit_cost": 35.50, "total_cost": 106.50}],
		"confidence_score": 0.9
	}`))
	assert.NoError(t, err)

	_, _, err = Import(s)
	assert.ErrorIs(t, err, ErrEmptySuggestion)
}

func TestImport_ExplicitEmptyLaborArrayImports(t *testing.T) {
	s, err := ParseSuggestion([]byte(`{
		"materials": [{"name": "Paint", "quantity": 3, "unit": "gallon", "unit_cost": 35.50, "total_cost": 106.50}],
		"labor": [],
		"confidence_score": 0.9
	}`))
	assert.NoError(t, err)

	materials, labor, err := Import(s)

	assert.NoError(t, err)
	assert.Len(t, materials, 1)
	assert.InDelta(t, 106.50, materials[0].TotalCost, 1e-9)
	assert.NotNil(t, labor)
	assert.Len(t, labor, 0)
}

func TestImport_NilSuggestionIsRejected(t *testing.T) {
	_, _, err := Import(nil)
	assert.ErrorIs(t, err, ErrEmptySuggestion)
}

func TestImport_TotalsTakenVerbatim(t *testing.T) {
	// the suggested total includes a waste factor, 3*35.50 would be 106.50
	// anyway here but the point is we never recompute it
	s := &Suggestion{
		Materials: []SuggestedMaterial{
			{Name: "Paint", Quantity: 3, Unit: "gallon", UnitCost: 35.50, TotalCost: 120.00},
		},
		Labor: []SuggestedLabor{
			{Name: "Painting", Hours: 8, RatePerHour: 45, TotalCost: 400.00},
		},
		ConfidenceScore: 0.85,
	}

	materials, labor, err := Import(s)

	assert.NoError(t, err)
	assert.InDelta(t, 120.00, materials[0].TotalCost, 1e-9)
	assert.InDelta(t, 400.00, labor[0].TotalCost, 1e-9)
}

func TestImport_AssignsUniqueTempIDs(t *testing.T) {
	s := &Suggestion{
		Materials: []SuggestedMaterial{
			{Name: "Drywall"}, {Name: "Paint"},
		},
		Labor: []SuggestedLabor{
			{Name: "Installation"},
		},
		ConfidenceScore: 0.85,
	}

	materials, labor, err := Import(s)
	assert.NoError(t, err)

	seen := map[string]bool{}
	for _, m := range materials {
		assert.True(t, strings.HasPrefix(m.TempID, "tmp_"))
		assert.False(t, seen[m.TempID], "temp ids must be unique")
		seen[m.TempID] = true
	}
	for _, l := range labor {
		assert.True(t, strings.HasPrefix(l.TempID, "tmp_"))
		assert.False(t, seen[l.TempID], "temp ids must be unique")
		seen[l.TempID] = true
	}
}

func TestImport_DefaultsCategories(t *testing.T) {
	s := &Suggestion{
		Materials: []SuggestedMaterial{
			{Name: "Drywall"},
			{Name: "Wire", Category: "Electrical"},
		},
		Labor: []SuggestedLabor{
			{Name: "Installation"},
		},
		ConfidenceScore: 0.85,
	}

	materials, labor, err := Import(s)

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultMaterialCategory, materials[0].Category)
	assert.Equal(t, "Electrical", materials[1].Category)
	assert.Equal(t, domain.DefaultLaborCategory, labor[0].Category)
}
