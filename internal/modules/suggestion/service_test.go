package suggestion

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTextProcessor struct {
	mock.Mock
}

func (m *MockTextProcessor) ProcessText(ctx context.Context, text string) (json.RawMessage, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func TestProcessText_FullPipeline(t *testing.T) {
	ai := new(MockTextProcessor)
	svc := NewService(ai)

	payload := json.RawMessage(`{
		"materials": [{"name": "Drywall", "quantity": 12, "unit": "sheet", "unit_cost": 15.75, "total_cost": 189}],
		"labor": [{"name": "Installation", "hours": 16, "rate_per_hour": 35, "total_cost": 560}],
		"estimated_total": 898.80,
		"confidence_score": 0.85
	}`)
	ai.On("ProcessText", mock.Anything, "renovate a small kitchen").Return(payload, nil)

	result, err := svc.ProcessText(context.Background(), "renovate a small kitchen")

	assert.NoError(t, err)
	assert.Len(t, result.Materials, 1)
	assert.Len(t, result.Labor, 1)
	assert.Equal(t, "Drywall", result.Materials[0].Name)
	assert.InDelta(t, 0.85, result.Suggestion.ConfidenceScore, 1e-9)
}

func TestProcessText_EmptyInputIsRejected(t *testing.T) {
	ai := new(MockTextProcessor)
	svc := NewService(ai)

	_, err := svc.ProcessText(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrValidation)
	ai.AssertNotCalled(t, "ProcessText", mock.Anything, mock.Anything)
}

func TestProcessText_MalformedPayloadSurfaces(t *testing.T) {
	ai := new(MockTextProcessor)
	svc := NewService(ai)

	ai.On("ProcessText", mock.Anything, "build a fence").Return(json.RawMessage(`not json`), nil)

	_, err := svc.ProcessText(context.Background(), "build a fence")

	assert.ErrorIs(t, err, ErrMalformedSuggestion)
}

func TestProcessText_StaticProcessorRoundTrip(t *testing.T) {
	svc := NewService(StaticProcessor{})

	result, err := svc.ProcessText(context.Background(), "paint two bedrooms")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Materials)
	assert.NotEmpty(t, result.Labor)
	for _, m := range result.Materials {
		assert.NotEmpty(t, m.TempID)
	}
}
