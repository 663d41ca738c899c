package meta

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
)

const (
	unknownPage   = "Unknown Page"
	unknownBrand  = "Unknown Brand"
	noDescription = "No description available"
)

// A Ads Library não expõe engajamento; os contadores são placeholders aleatórios nestes intervalos
var (
	likesRange    = [2]int{100, 1099}
	commentsRange = [2]int{20, 219}
	sharesRange   = [2]int{10, 109}
)

var deliveryTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

type MetaIntegrator struct {
	cfg      *config.Config
	Client   metaclient.Client
	randIntN func(n int) int
	now      func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:      cfg,
		Client:   client,
		randIntN: rand.IntN,
		now:      time.Now,
	}
}

// SearchAds busca os anúncios veiculados na janela e os converte em linhas do dono
func (s *MetaIntegrator) SearchAds(ctx context.Context, ownerID string, window domain.DateRange) ([]*domain.Ad, error) {
	query := metadomain.ArchiveQuery{
		StartDate:   window.Start,
		EndDate:     window.End,
		CountryCode: s.cfg.Meta.CountryCode,
		AdType:      s.cfg.Meta.AdType,
		Limit:       s.cfg.Meta.PageLimit,
		MaxPages:    s.cfg.Meta.MaxPages,
	}

	archived, err := s.Client.SearchArchivedAds(ctx, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start_date": window.Start,
			"end_date":   window.End,
			"country":    query.CountryCode,
			"error":      err.Error(),
		}).Warn("ads: falha ao consultar a Ads Library")
		return nil, err
	}

	now := s.now().UTC()
	ads := make([]*domain.Ad, 0, len(archived))
	for _, item := range archived {
		ad := s.FactoryAd(item, ownerID, now)

		if s.cfg.Meta.SnapshotEnrichmentEnabled {
			s.enrichWithSnapshot(ctx, ad)
		}

		ads = append(ads, ad)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": ownerID,
		"count":   len(ads),
	}).Debug("ads: anúncios convertidos a partir da Ads Library")

	return ads, nil
}

// FactoryAd converte um registro da Ads Library em um anúncio do dono
func (s *MetaIntegrator) FactoryAd(item metadomain.ArchivedAd, ownerID string, now time.Time) *domain.Ad {
	pageName := strings.TrimSpace(item.PageName)

	title := unknownPage
	brand := unknownBrand
	if pageName != "" {
		title = pageName
		brand = pageName
	}

	description := strings.TrimSpace(item.CreativeBody())
	if description == "" {
		description = noDescription
	}

	var adURL *string
	if item.AdSnapshotURL != "" {
		snapshot := item.AdSnapshotURL
		adURL = &snapshot
	}

	return &domain.Ad{
		UserID:      ownerID,
		Title:       fmt.Sprintf("%s - Ad", title),
		Description: description,
		Platform:    domain.PlatformFacebook,
		Likes:       s.between(likesRange),
		Comments:    s.between(commentsRange),
		Shares:      s.between(sharesRange),
		Country:     s.cfg.Meta.CountryName,
		DaysActive:  DaysActive(item.AdDeliveryStartTime, now),
		Brand:       brand,
		Category:    s.cfg.Meta.Category,
		AdURL:       adURL,
		ScrapedAt:   now,
	}
}

func (s *MetaIntegrator) enrichWithSnapshot(ctx context.Context, ad *domain.Ad) {
	if ad.AdURL == nil {
		return
	}

	image, err := s.Client.FetchSnapshotImage(ctx, *ad.AdURL)
	if err != nil {
		logrus.WithError(err).Debug("ads: não foi possível obter imagem do snapshot")
		return
	}

	if image != "" {
		ad.ImageURL = &image
	}
}

func (s *MetaIntegrator) between(bounds [2]int) int {
	return bounds[0] + s.randIntN(bounds[1]-bounds[0]+1)
}

// DaysActive calcula os dias inteiros desde o início da veiculação; datas ausentes ou inválidas contam como hoje
func DaysActive(deliveryStart string, now time.Time) int {
	if deliveryStart == "" {
		return 0
	}

	for _, layout := range deliveryTimeLayouts {
		start, err := time.Parse(layout, deliveryStart)
		if err != nil {
			continue
		}

		days := int(now.Sub(start).Hours() / 24)
		if days < 0 {
			return 0
		}
		return days
	}

	return 0
}
