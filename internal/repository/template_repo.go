package repository

import (
	"context"

	"gorm.io/gorm"

	"estimateai/internal/domain"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// ListVisible returns public templates plus the user's own, optionally
// narrowed by category and a name/description search.
func (r *TemplateRepository) ListVisible(ctx context.Context, userID int64, category, search string) ([]domain.Template, error) {
	q := r.db.WithContext(ctx).
		Where("is_public = ? OR user_id = ?", true, userID).
		Order("name ASC")

	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var out []domain.Template
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	var t domain.Template
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}
