package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estimateai/internal/domain"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountByUserAndStatus(ctx context.Context, userID int64, status domain.EstimateStatus) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) SumTotalByUserAndStatus(ctx context.Context, userID int64, status domain.EstimateStatus) (float64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Estimate, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.Estimate), args.Error(1)
}

func TestStats_AggregatesCountsAndRevenue(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := NewService(repo)

	repo.On("CountByUser", mock.Anything, int64(1)).Return(int64(10), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimatePending).Return(int64(3), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimateAccepted).Return(int64(4), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimateRejected).Return(int64(1), nil)
	repo.On("SumTotalByUserAndStatus", mock.Anything, int64(1), domain.EstimateAccepted).Return(12500.0, nil)
	repo.On("RecentByUser", mock.Anything, int64(1), recentLimit).Return([]domain.Estimate{{ID: 9}}, nil)

	stats, err := svc.Stats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalEstimates)
	assert.Equal(t, int64(3), stats.PendingEstimates)
	assert.Equal(t, int64(4), stats.AcceptedEstimates)
	assert.InDelta(t, 12500.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 80.0, stats.WinRate, 1e-9) // 4 of 5 decided
	assert.Len(t, stats.RecentEstimates, 1)
}

func TestStats_WinRateZeroWithNoDecisions(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := NewService(repo)

	repo.On("CountByUser", mock.Anything, int64(1)).Return(int64(2), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimatePending).Return(int64(2), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimateAccepted).Return(int64(0), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimateRejected).Return(int64(0), nil)
	repo.On("SumTotalByUserAndStatus", mock.Anything, int64(1), domain.EstimateAccepted).Return(0.0, nil)
	repo.On("RecentByUser", mock.Anything, int64(1), recentLimit).Return([]domain.Estimate{}, nil)

	stats, err := svc.Stats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, stats.WinRate)
}
