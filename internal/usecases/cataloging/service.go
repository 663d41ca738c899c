package cataloging

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/ad-trends-api/infrastructure/cache"
	"github.com/vfg2006/ad-trends-api/infrastructure/export"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/pkg/log"
	"github.com/vfg2006/ad-trends-api/pkg/validation"
)

var (
	ErrInvalidAd  = errors.New("anúncio inválido")
	ErrListAds    = errors.New("erro ao listar anúncios")
	ErrCreateAd   = errors.New("erro ao criar anúncio")
	ErrExportAds  = errors.New("erro ao exportar anúncios")
	ErrEmptyOwner = errors.New("dono não informado")
)

// Limite de linhas exportadas por planilha
const maxExportRows = 500

type Cataloger interface {
	ListAds(ctx context.Context, ownerID string, filters domain.AdFilters) ([]*domain.Ad, error)
	CreateAd(ctx context.Context, ownerID string, req *domain.CreateAdRequest) (*domain.Ad, error)
	ExportAds(ctx context.Context, ownerID string, filters domain.AdFilters) ([]byte, error)
}

type Service struct {
	adRepo     repository.AdRepository
	statsCache cache.StatsCache
}

func NewService(adRepo repository.AdRepository, statsCache cache.StatsCache) Cataloger {
	return &Service{
		adRepo:     adRepo,
		statsCache: statsCache,
	}
}

// ListAds retorna os anúncios do dono do mais recente para o mais antigo
func (s *Service) ListAds(ctx context.Context, ownerID string, filters domain.AdFilters) ([]*domain.Ad, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	ads, err := s.adRepo.ListByOwner(ctx, ownerID, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar anúncios")
		return nil, errors.Join(ErrListAds, err)
	}

	if ads == nil {
		ads = []*domain.Ad{}
	}

	return ads, nil
}

// CreateAd grava um anúncio cadastrado manualmente pelo dono
func (s *Service) CreateAd(ctx context.Context, ownerID string, req *domain.CreateAdRequest) (*domain.Ad, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	if err := validation.Struct(req); err != nil {
		return nil, &ValidationError{Messages: validation.Messages(err)}
	}

	ad := &domain.Ad{
		UserID:      ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Platform:    strings.TrimSpace(req.Platform),
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Likes:       req.Likes,
		Comments:    req.Comments,
		Shares:      req.Shares,
		Country:     req.Country,
		DaysActive:  req.DaysActive,
		Brand:       req.Brand,
		Category:    req.Category,
		AdURL:       req.AdURL,
	}

	created, err := s.adRepo.Create(ctx, ad)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar anúncio")
		return nil, errors.Join(ErrCreateAd, err)
	}

	s.statsCache.Invalidate(ctx, ownerID)

	return created, nil
}

// ExportAds gera a planilha XLSX com os anúncios filtrados do dono
func (s *Service) ExportAds(ctx context.Context, ownerID string, filters domain.AdFilters) ([]byte, error) {
	if filters.Limit <= 0 || filters.Limit > maxExportRows {
		filters.Limit = maxExportRows
	}

	ads, err := s.ListAds(ctx, ownerID, filters)
	if err != nil {
		return nil, err
	}

	workbook, err := export.AdsWorkbook(ads)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar planilha de anúncios")
		return nil, errors.Join(ErrExportAds, err)
	}

	return workbook, nil
}

// ValidationError lista os campos inválidos da requisição
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidAd.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidAd
}
