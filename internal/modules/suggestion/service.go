package suggestion

import (
	"context"
	"strings"
)

type Service struct {
	ai TextProcessor
}

func NewService(ai TextProcessor) *Service {
	return &Service{ai: ai}
}

// ProcessText runs the full intake pipeline: external suggestion call,
// boundary parse, then import into concrete line items ready to attach to
// an estimate.
func (s *Service) ProcessText(ctx context.Context, text string) (*ProcessResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation
	}

	raw, err := s.ai.ProcessText(ctx, text)
	if err != nil {
		return nil, err
	}

	sug, err := ParseSuggestion(raw)
	if err != nil {
		return nil, err
	}

	materials, labor, err := Import(sug)
	if err != nil {
		return nil, err
	}

	return &ProcessResult{
		Suggestion: sug,
		Materials:  materials,
		Labor:      labor,
	}, nil
}
