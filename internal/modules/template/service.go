package template

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"estimateai/internal/domain"
)

type Service struct {
	templates TemplateRepository
}

func NewService(templates TemplateRepository) *Service {
	return &Service{templates: templates}
}

func (s *Service) List(ctx context.Context, userID int64, q ListTemplatesQuery) ([]domain.Template, error) {
	return s.templates.ListVisible(ctx, userID, strings.TrimSpace(q.Category), strings.TrimSpace(q.Search))
}

// Get returns a template the caller may see: their own, or a public one.
func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Template, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !t.IsPublic && t.UserID != userID {
		return nil, ErrForbidden
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateTemplateRequest) (*domain.Template, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	t := &domain.Template{
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		IsPublic:    req.IsPublic,
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
