package dashboard

import "estimateai/internal/domain"

type Stats struct {
	TotalEstimates    int64             `json:"total_estimates"`
	PendingEstimates  int64             `json:"pending_estimates"`
	AcceptedEstimates int64             `json:"accepted_estimates"`
	TotalRevenue      float64           `json:"total_revenue"`
	WinRate           float64           `json:"win_rate"`
	RecentEstimates   []domain.Estimate `json:"recent_estimates"`
}
