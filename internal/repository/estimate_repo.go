package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"estimateai/internal/domain"
)

type EstimateRepository struct {
	db *gorm.DB
}

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func (r *EstimateRepository) ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.Estimate, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Preload("Client")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var out []domain.Estimate
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EstimateRepository) GetByID(ctx context.Context, id int64) (*domain.Estimate, error) {
	var e domain.Estimate
	if err := r.db.WithContext(ctx).Preload("Client").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EstimateRepository) Create(ctx context.Context, e *domain.Estimate) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EstimateRepository) Update(ctx context.Context, e *domain.Estimate) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EstimateRepository) UpdateStatus(ctx context.Context, id int64, status domain.EstimateStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *EstimateRepository) UpdateTotalCost(ctx context.Context, id int64, total float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Where("id = ?", id).
		Updates(map[string]any{"total_cost": total, "updated_at": time.Now()}).Error
}

// Delete removes the estimate together with its owned line items. Clients
// are referenced, not owned, so they survive.
func (r *EstimateRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("estimate_id = ?", id).Delete(&domain.MaterialItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("estimate_id = ?", id).Delete(&domain.LaborItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Estimate{}, id).Error
	})
}

func (r *EstimateRepository) ListMaterials(ctx context.Context, estimateID int64) ([]domain.MaterialItem, error) {
	var out []domain.MaterialItem
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *EstimateRepository) GetMaterial(ctx context.Context, estimateID, itemID int64) (*domain.MaterialItem, error) {
	var m domain.MaterialItem
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		First(&m, itemID).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *EstimateRepository) AddMaterial(ctx context.Context, m *domain.MaterialItem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *EstimateRepository) UpdateMaterial(ctx context.Context, m *domain.MaterialItem) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *EstimateRepository) DeleteMaterial(ctx context.Context, estimateID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Delete(&domain.MaterialItem{}, itemID).Error
}

func (r *EstimateRepository) ListLabor(ctx context.Context, estimateID int64) ([]domain.LaborItem, error) {
	var out []domain.LaborItem
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *EstimateRepository) GetLabor(ctx context.Context, estimateID, itemID int64) (*domain.LaborItem, error) {
	var l domain.LaborItem
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		First(&l, itemID).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *EstimateRepository) AddLabor(ctx context.Context, l *domain.LaborItem) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *EstimateRepository) UpdateLabor(ctx context.Context, l *domain.LaborItem) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *EstimateRepository) DeleteLabor(ctx context.Context, estimateID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Delete(&domain.LaborItem{}, itemID).Error
}

func (r *EstimateRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *EstimateRepository) CountByUserAndStatus(ctx context.Context, userID int64, status domain.EstimateStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&n).Error
	return n, err
}

func (r *EstimateRepository) SumTotalByUserAndStatus(ctx context.Context, userID int64, status domain.EstimateStatus) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("user_id = ? AND status = ?", userID, status).
		Scan(&sum).Error
	return sum, err
}

func (r *EstimateRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Estimate, error) {
	var out []domain.Estimate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Preload("Client").
		Find(&out).Error
	return out, err
}

// ListStale returns estimates in any of the given statuses that have not
// been touched since the cutoff. Used by the auto-archiver.
func (r *EstimateRepository) ListStale(ctx context.Context, statuses []domain.EstimateStatus, before time.Time) ([]domain.Estimate, error) {
	var out []domain.Estimate
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Where("updated_at < ?", before).
		Find(&out).Error
	return out, err
}
