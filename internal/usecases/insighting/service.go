package insighting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/infrastructure/cache"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository"
	"github.com/vfg2006/ad-trends-api/internal/domain"
)

var ErrStatsUnavailable = errors.New("erro ao consolidar estatísticas do painel")

// Service implementa Insighter lendo agregados do banco com cache opcional por dono
type Service struct {
	adRepo      repository.AdRepository
	productRepo repository.TrendingProductRepository
	statsCache  cache.StatsCache
	now         func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	adRepo repository.AdRepository,
	productRepo repository.TrendingProductRepository,
	statsCache cache.StatsCache,
) Insighter {
	return &Service{
		adRepo:      adRepo,
		productRepo: productRepo,
		statsCache:  statsCache,
		now:         time.Now,
	}
}

func (s *Service) GetDashboardStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	if stats, ok := s.statsCache.Get(ctx, ownerID); ok {
		logrus.WithField("user_id", ownerID).Debug("Estatísticas do painel servidas do cache")
		return stats, nil
	}

	totals, err := s.adRepo.GetTotals(ctx, ownerID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar totais de anúncios")
		return nil, errors.Join(ErrStatsUnavailable, err)
	}

	categories, err := s.adRepo.CountByCategory(ctx, ownerID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao agrupar anúncios por categoria")
		return nil, errors.Join(ErrStatsUnavailable, err)
	}

	platforms, err := s.adRepo.CountByPlatform(ctx, ownerID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao agrupar anúncios por plataforma")
		return nil, errors.Join(ErrStatsUnavailable, err)
	}

	trendingCount, lastAnalysisDate, err := s.productRepo.GetSummary(ctx, ownerID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar resumo dos produtos em tendência")
		return nil, errors.Join(ErrStatsUnavailable, err)
	}

	stats := &domain.DashboardStats{
		TotalAds:         totals.Count,
		TotalEngagement:  totals.Engagement,
		Categories:       toMap(categories),
		Platforms:        toMap(platforms),
		TrendingProducts: trendingCount,
		LastScrapedAt:    totals.LastScrapedAt,
		LastAnalysisDate: lastAnalysisDate,
		GeneratedAt:      s.now().UTC(),
	}

	if totals.Count > 0 {
		stats.AvgEngagement = totals.Engagement / int64(totals.Count)
	}

	// As contagens já vêm ordenadas da maior para a menor
	if len(categories) > 0 {
		stats.TopCategory = categories[0].Name
	}

	s.statsCache.Set(ctx, ownerID, stats)

	return stats, nil
}

func toMap(counts []domain.CategoryCount) map[string]int {
	result := make(map[string]int, len(counts))
	for _, c := range counts {
		result[c.Name] = c.Count
	}
	return result
}
