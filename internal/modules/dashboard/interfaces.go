package dashboard

import (
	"context"

	"estimateai/internal/domain"
)

type EstimateStatsRepository interface {
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountByUserAndStatus(ctx context.Context, userID int64, status domain.EstimateStatus) (int64, error)
	SumTotalByUserAndStatus(ctx context.Context, userID int64, status domain.EstimateStatus) (float64, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Estimate, error)
}
