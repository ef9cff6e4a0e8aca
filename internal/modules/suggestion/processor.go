package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextProcessor is the external generative service that turns a project
// description into a raw suggestion payload.
type TextProcessor interface {
	ProcessText(ctx context.Context, text string) (json.RawMessage, error)
}

// HTTPProcessor calls a configured suggestion endpoint with {"text": ...}
// and returns the response body as the raw payload.
type HTTPProcessor struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPProcessor(endpoint, apiKey string) *HTTPProcessor {
	return &HTTPProcessor{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPProcessor) ProcessText(ctx context.Context, text string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion endpoint returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// StaticProcessor returns a canned suggestion regardless of input. Used for
// local development when no AI endpoint is configured, mirroring the demo
// data the web client ships with.
type StaticProcessor struct{}

func (StaticProcessor) ProcessText(ctx context.Context, text string) (json.RawMessage, error) {
	canned := Suggestion{
		Materials: []SuggestedMaterial{
			{Name: "Drywall", Quantity: 12, Unit: "sheet", UnitCost: 15.75, TotalCost: 189.00, Category: "Building Materials"},
			{Name: "Paint", Quantity: 3, Unit: "gallon", UnitCost: 35.50, TotalCost: 106.50, Category: "Finishes"},
			{Name: "Lumber (2x4)", Quantity: 24, Unit: "each", UnitCost: 4.25, TotalCost: 102.00, Category: "Building Materials"},
		},
		Labor: []SuggestedLabor{
			{Name: "Drywall Installation", Hours: 16, RatePerHour: 35.00, TotalCost: 560.00, Category: "Labor"},
			{Name: "Painting", Hours: 12, RatePerHour: 45.00, TotalCost: 540.00, Category: "Labor"},
		},
		EstimatedTotal:        1497.50,
		EstimatedDurationDays: 5,
		ConfidenceScore:       0.85,
	}
	return json.Marshal(canned)
}
