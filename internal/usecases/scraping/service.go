package scraping

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vfg2006/ad-trends-api/infrastructure/cache"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
	"github.com/vfg2006/ad-trends-api/pkg/log"
	"github.com/vfg2006/ad-trends-api/pkg/metrics"
)

const defaultLookbackDays = 30

type Service struct {
	cfg        *config.Config
	library    AdsLibrary
	adRepo     repository.AdRepository
	statsCache cache.StatsCache
	now        func() time.Time
	randIntN   func(n int) int
}

func NewService(
	cfg *config.Config,
	library AdsLibrary,
	adRepo repository.AdRepository,
	statsCache cache.StatsCache,
) Scraper {
	return &Service{
		cfg:        cfg,
		library:    library,
		adRepo:     adRepo,
		statsCache: statsCache,
		now:        time.Now,
		randIntN:   rand.IntN,
	}
}

// ScrapeAds consulta a Ads Library na janela pedida e grava o resultado em um único insert.
// Qualquer falha na consulta, ou nenhum anúncio encontrado, troca o resultado pelo conjunto de amostra.
func (s *Service) ScrapeAds(ctx context.Context, ownerID string, lookbackDays int) (*domain.ScrapeResponse, error) {
	logger := log.ForContext(ctx)

	if ownerID == "" {
		return nil, NewScrapeError(ErrMissingOwner, apiErrors.ErrMissingCredentials, "")
	}

	lookback := s.lookback(lookbackDays)
	now := s.now().UTC()
	window := DateWindow(now, lookback)

	if s.cfg.Meta.AccessToken == "" {
		metrics.ObserveScrape(metrics.SourceError, 0)
		return nil, NewScrapeError(ErrMetaTokenNotConfigured, apiErrors.ErrConfiguration, "")
	}

	logger.Infof("Coletando anúncios de %s entre %s e %s", s.cfg.Meta.CountryName, window.Start, window.End)

	source := metrics.SourceMeta
	ads, err := s.library.SearchAds(ctx, ownerID, window)
	if err != nil || len(ads) == 0 {
		fields := log.Fields{"user_id": ownerID}
		if err != nil {
			fields["error"] = err.Error()
		}
		logger.WithFields(fields).Warn("Ads Library indisponível, usando anúncios de amostra")

		source = metrics.SourceFallback
		ads = FallbackAds(ownerID, lookback, now, s.randIntN)
	}

	inserted, err := s.adRepo.BulkInsert(ctx, ads)
	if err != nil {
		metrics.ObserveScrape(metrics.SourceError, 0)

		baseErr := ErrSaveAds
		if source == metrics.SourceFallback {
			baseErr = ErrSaveFallbackAds
		}

		logger.WithError(err).Error("Erro ao gravar anúncios coletados")
		return nil, NewScrapeError(baseErr, apiErrors.ErrDatabaseOperation, "")
	}

	s.statsCache.Invalidate(ctx, ownerID)
	metrics.ObserveScrape(source, inserted)

	response := &domain.ScrapeResponse{
		Success:   true,
		Ads:       int(inserted),
		DateRange: window,
	}

	if source == metrics.SourceFallback {
		response.Fallback = true
		response.Message = fmt.Sprintf("Using sample Indian ads data (%d ads)", inserted)
	} else {
		response.Message = fmt.Sprintf("Successfully scraped %d ads from %s", inserted, s.cfg.Meta.CountryName)
	}

	logger.WithFields(log.Fields{
		"user_id":  ownerID,
		"inserted": inserted,
		"fallback": response.Fallback,
	}).Info("Coleta de anúncios concluída")

	return response, nil
}

func (s *Service) lookback(days int) int {
	if days <= 0 {
		days = s.cfg.Scrape.DefaultLookbackDays
	}
	if days <= 0 {
		days = defaultLookbackDays
	}

	if maxDays := s.cfg.Scrape.MaxLookbackDays; maxDays > 0 && days > maxDays {
		return maxDays
	}

	return days
}

// DateWindow retorna a janela [now - days, now] em UTC no formato YYYY-MM-DD
func DateWindow(now time.Time, days int) domain.DateRange {
	end := now.UTC()
	start := end.AddDate(0, 0, -days)

	return domain.DateRange{
		Start: start.Format(time.DateOnly),
		End:   end.Format(time.DateOnly),
	}
}
