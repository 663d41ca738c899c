package trending

import (
	"context"
	"time"

	"github.com/vfg2006/ad-trends-api/infrastructure/cache"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
	"github.com/vfg2006/ad-trends-api/pkg/log"
	"github.com/vfg2006/ad-trends-api/pkg/metrics"
)

// Quantidade máxima de anúncios resumidos no prompt
const maxAdsForAnalysis = 50

type Service struct {
	cfg         *config.Config
	generator   TextGenerator
	adRepo      repository.AdRepository
	productRepo repository.TrendingProductRepository
	statsCache  cache.StatsCache
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	generator TextGenerator,
	adRepo repository.AdRepository,
	productRepo repository.TrendingProductRepository,
	statsCache cache.StatsCache,
) Analyzer {
	return &Service{
		cfg:         cfg,
		generator:   generator,
		adRepo:      adRepo,
		productRepo: productRepo,
		statsCache:  statsCache,
		now:         time.Now,
	}
}

// AnalyzeTrends pede ao modelo os produtos em tendência a partir dos anúncios do dono
// e substitui o conjunto anterior. Nada é apagado se a resposta não puder ser interpretada.
func (s *Service) AnalyzeTrends(ctx context.Context, ownerID string) (*domain.AnalyzeResponse, error) {
	startedAt := time.Now()

	resp, err := s.analyze(ctx, ownerID)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusFailure
	}
	metrics.ObserveTrendAnalysis(status, time.Since(startedAt).Seconds())

	return resp, err
}

func (s *Service) analyze(ctx context.Context, ownerID string) (*domain.AnalyzeResponse, error) {
	logger := log.ForContext(ctx)

	if ownerID == "" {
		return nil, NewTrendError(ErrMissingOwner, apiErrors.ErrMissingCredentials, "")
	}

	if s.cfg.OpenAI.APIKey == "" {
		return nil, NewTrendError(ErrOpenAIKeyNotConfigured, apiErrors.ErrConfiguration, "")
	}

	ads, err := s.adRepo.ListByOwner(ctx, ownerID, domain.AdFilters{Limit: maxAdsForAnalysis})
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar anúncios para análise")
		return nil, NewTrendError(ErrFetchAds, apiErrors.ErrDatabaseOperation, "")
	}

	userPrompt, err := BuildUserPrompt(Summarize(ads))
	if err != nil {
		return nil, NewTrendError(ErrGenerateTrends, apiErrors.ErrInternalServer, "")
	}

	reply, err := s.generator.Complete(ctx, SystemPrompt, userPrompt)
	if err != nil {
		logger.WithError(err).Error("Erro na chamada ao modelo de linguagem")
		return nil, NewTrendError(ErrGenerateTrends, apiErrors.ErrTrendAnalysis, "")
	}

	raw, err := ExtractJSONArray(reply)
	if err != nil {
		logger.WithFields(log.Fields{
			"error":        err.Error(),
			"raw_response": reply,
		}).Error("Resposta do modelo sem array JSON válido")
		return nil, NewTrendError(ErrInvalidAIResponse, apiErrors.ErrInvalidAIResponse, "")
	}

	products, err := ParseTrendingProducts(raw)
	if err != nil {
		logger.WithFields(log.Fields{
			"error":        err.Error(),
			"raw_response": reply,
		}).Error("Produtos da resposta do modelo inválidos")
		return nil, NewTrendError(ErrInvalidAIResponse, apiErrors.ErrInvalidAIResponse, "")
	}

	analysisDate := s.now().UTC().Format(time.DateOnly)
	for _, product := range products {
		product.AnalysisDate = analysisDate
	}

	inserted, err := s.productRepo.ReplaceForOwner(ctx, ownerID, products)
	if err != nil {
		logger.WithError(err).Error("Erro ao substituir produtos em tendência")
		return nil, NewTrendError(ErrReplaceProducts, apiErrors.ErrDatabaseOperation, "")
	}

	s.statsCache.Invalidate(ctx, ownerID)

	logger.WithFields(log.Fields{
		"user_id":  ownerID,
		"ads":      len(ads),
		"products": inserted,
	}).Info("Análise de tendências concluída")

	return &domain.AnalyzeResponse{
		Success:  true,
		Products: int(inserted),
		Message:  "Trending products analysis completed successfully",
	}, nil
}

// ListTrendingProducts retorna os produtos do dono ordenados pelo ranking
func (s *Service) ListTrendingProducts(ctx context.Context, ownerID string) ([]*domain.TrendingProduct, error) {
	products, err := s.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar produtos em tendência")
		return nil, NewTrendError(ErrListProducts, apiErrors.ErrDatabaseOperation, "")
	}

	if products == nil {
		products = []*domain.TrendingProduct{}
	}

	return products, nil
}
