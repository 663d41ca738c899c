package scraping

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ad-trends-api/internal/domain"
)

// AdsLibrary busca anúncios veiculados na janela e os devolve já no formato do dono
type AdsLibrary interface {
	SearchAds(ctx context.Context, ownerID string, window domain.DateRange) ([]*domain.Ad, error)
}

// Scraper executa o pipeline de coleta de anúncios
type Scraper interface {
	ScrapeAds(ctx context.Context, ownerID string, lookbackDays int) (*domain.ScrapeResponse, error)
}
