package template

import (
	"context"

	"estimateai/internal/domain"
)

type TemplateRepository interface {
	ListVisible(ctx context.Context, userID int64, category, search string) ([]domain.Template, error)
	GetByID(ctx context.Context, id int64) (*domain.Template, error)
	Create(ctx context.Context, t *domain.Template) error
}
