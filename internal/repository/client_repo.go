package repository

import (
	"context"

	"gorm.io/gorm"

	"estimateai/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) ListByUser(ctx context.Context, userID int64, search string) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var out []domain.Client
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Client{}, id).Error
}

// CountEstimateReferences reports how many estimates point at the client,
// so deletion can be refused while references exist.
func (r *ClientRepository) CountEstimateReferences(ctx context.Context, clientID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Where("client_id = ?", clientID).
		Count(&n).Error
	return n, err
}
