package dashboard

import (
	"context"

	"estimateai/internal/domain"
)

const recentLimit = 5

type Service struct {
	estimates EstimateStatsRepository
}

func NewService(estimates EstimateStatsRepository) *Service {
	return &Service{estimates: estimates}
}

func (s *Service) Stats(ctx context.Context, userID int64) (*Stats, error) {
	total, err := s.estimates.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.estimates.CountByUserAndStatus(ctx, userID, domain.EstimatePending)
	if err != nil {
		return nil, err
	}

	accepted, err := s.estimates.CountByUserAndStatus(ctx, userID, domain.EstimateAccepted)
	if err != nil {
		return nil, err
	}

	rejected, err := s.estimates.CountByUserAndStatus(ctx, userID, domain.EstimateRejected)
	if err != nil {
		return nil, err
	}

	revenue, err := s.estimates.SumTotalByUserAndStatus(ctx, userID, domain.EstimateAccepted)
	if err != nil {
		return nil, err
	}

	recent, err := s.estimates.RecentByUser(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}

	// win rate over decided estimates only
	winRate := 0.0
	if decided := accepted + rejected; decided > 0 {
		winRate = float64(accepted) / float64(decided) * 100
	}

	return &Stats{
		TotalEstimates:    total,
		PendingEstimates:  pending,
		AcceptedEstimates: accepted,
		TotalRevenue:      revenue,
		WinRate:           winRate,
		RecentEstimates:   recent,
	}, nil
}
