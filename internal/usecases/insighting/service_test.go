package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/ad-trends-api/infrastructure/cache/mocks"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	mockProductRepo := mocks.NewMockTrendingProductRepository(ctrl)
	mockCache := cachemocks.NewMockStatsCache(ctrl)

	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	service := &Service{
		adRepo:      mockAdRepo,
		productRepo: mockProductRepo,
		statsCache:  mockCache,
		now:         func() time.Time { return now },
	}

	lastScraped := now.Add(-time.Hour)
	analysisDate := "2025-04-01"

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, stats *domain.DashboardStats, err error)
	}{
		{
			name: "Cache vazio - consolida do banco e grava no cache",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), "owner-1").Return(nil, false)
				mockAdRepo.EXPECT().GetTotals(gomock.Any(), "owner-1").
					Return(&domain.AdTotals{Count: 4, Engagement: 1002, LastScrapedAt: &lastScraped}, nil)
				mockAdRepo.EXPECT().CountByCategory(gomock.Any(), "owner-1").
					Return([]domain.CategoryCount{{Name: "Electronics", Count: 3}, {Name: "Education", Count: 1}}, nil)
				mockAdRepo.EXPECT().CountByPlatform(gomock.Any(), "owner-1").
					Return([]domain.CategoryCount{{Name: "Facebook", Count: 4}}, nil)
				mockProductRepo.EXPECT().GetSummary(gomock.Any(), "owner-1").
					Return(10, &analysisDate, nil)
				mockCache.EXPECT().Set(gomock.Any(), "owner-1", gomock.Any())
			},
			validate: func(t *testing.T, stats *domain.DashboardStats, err error) {
				require.NoError(t, err)
				assert.Equal(t, 4, stats.TotalAds)
				assert.Equal(t, int64(1002), stats.TotalEngagement)
				assert.Equal(t, int64(250), stats.AvgEngagement)
				assert.Equal(t, "Electronics", stats.TopCategory)
				assert.Equal(t, map[string]int{"Electronics": 3, "Education": 1}, stats.Categories)
				assert.Equal(t, map[string]int{"Facebook": 4}, stats.Platforms)
				assert.Equal(t, 10, stats.TrendingProducts)
				assert.Equal(t, &analysisDate, stats.LastAnalysisDate)
				assert.Equal(t, &lastScraped, stats.LastScrapedAt)
				assert.Equal(t, now, stats.GeneratedAt)
			},
		},
		{
			name: "Dono sem anúncios - média zero sem divisão por zero",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), "owner-1").Return(nil, false)
				mockAdRepo.EXPECT().GetTotals(gomock.Any(), "owner-1").Return(&domain.AdTotals{}, nil)
				mockAdRepo.EXPECT().CountByCategory(gomock.Any(), "owner-1").Return(nil, nil)
				mockAdRepo.EXPECT().CountByPlatform(gomock.Any(), "owner-1").Return(nil, nil)
				mockProductRepo.EXPECT().GetSummary(gomock.Any(), "owner-1").Return(0, nil, nil)
				mockCache.EXPECT().Set(gomock.Any(), "owner-1", gomock.Any())
			},
			validate: func(t *testing.T, stats *domain.DashboardStats, err error) {
				require.NoError(t, err)
				assert.Zero(t, stats.TotalAds)
				assert.Zero(t, stats.AvgEngagement)
				assert.Empty(t, stats.TopCategory)
				assert.NotNil(t, stats.Categories)
				assert.Nil(t, stats.LastAnalysisDate)
			},
		},
		{
			name: "Cache preenchido - não consulta o banco",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), "owner-1").Return(&domain.DashboardStats{TotalAds: 7}, true)
			},
			validate: func(t *testing.T, stats *domain.DashboardStats, err error) {
				require.NoError(t, err)
				assert.Equal(t, 7, stats.TotalAds)
			},
		},
		{
			name: "Falha no banco - erro sem gravar no cache",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), "owner-1").Return(nil, false)
				mockAdRepo.EXPECT().GetTotals(gomock.Any(), "owner-1").Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, stats *domain.DashboardStats, err error) {
				assert.Nil(t, stats)
				assert.ErrorIs(t, err, ErrStatsUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			stats, err := service.GetDashboardStats(context.Background(), "owner-1")

			tt.validate(t, stats, err)
		})
	}
}
