package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estimateai/internal/domain"
)

// GET /dashboard is the path the web client calls; the stats live at the
// group root, not under a /stats suffix.
func TestRegisterRoutes_StatsServedAtDashboardRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockStatsRepository)
	repo.On("CountByUser", mock.Anything, int64(1)).Return(int64(0), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimatePending).Return(int64(0), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimateAccepted).Return(int64(0), nil)
	repo.On("CountByUserAndStatus", mock.Anything, int64(1), domain.EstimateRejected).Return(int64(0), nil)
	repo.On("SumTotalByUserAndStatus", mock.Anything, int64(1), domain.EstimateAccepted).Return(0.0, nil)
	repo.On("RecentByUser", mock.Anything, int64(1), recentLimit).Return([]domain.Estimate{}, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", int64(1)) })
	NewHandler(NewService(repo)).RegisterRoutes(r.Group("/"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
