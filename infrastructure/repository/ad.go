// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=ad.go -destination=mocks/ad_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-trends-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/pkg/utils"
)

const (
	adsTable = "ads a"

	defaultAdsLimit = 100
	maxAdsLimit     = 500
)

var adColumns = []string{
	"a.id",
	"a.user_id",
	"a.title",
	"a.description",
	"a.platform",
	"a.image_url",
	"a.video_url",
	"a.likes",
	"a.comments",
	"a.shares",
	"a.country",
	"a.days_active",
	"a.brand",
	"a.category",
	"a.ad_url",
	"a.scraped_at",
	"a.created_at",
	"a.updated_at",
}

type AdRepository interface {
	BulkInsert(ctx context.Context, ads []*domain.Ad) (int64, error)
	Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	ListByOwner(ctx context.Context, ownerID string, filters domain.AdFilters) ([]*domain.Ad, error)
	GetTotals(ctx context.Context, ownerID string) (*domain.AdTotals, error)
	CountByCategory(ctx context.Context, ownerID string) ([]domain.CategoryCount, error)
	CountByPlatform(ctx context.Context, ownerID string) ([]domain.CategoryCount, error)
	ListOwnerIDs(ctx context.Context) ([]string, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

// BulkInsert grava todos os anúncios em um único INSERT; ou entram todos ou nenhum
func (r *adRepository) BulkInsert(ctx context.Context, ads []*domain.Ad) (int64, error) {
	if len(ads) == 0 {
		return 0, nil
	}

	queryBuilder := squirrel.
		Insert("ads").
		Columns(
			"id", "user_id", "title", "description", "platform", "image_url", "video_url",
			"likes", "comments", "shares", "country", "days_active", "brand", "category",
			"ad_url", "scraped_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ad := range ads {
		if err := prepareAd(ad); err != nil {
			return 0, err
		}

		queryBuilder = queryBuilder.Values(
			ad.ID, ad.UserID, ad.Title, ad.Description, ad.Platform, ad.ImageURL, ad.VideoURL,
			ad.Likes, ad.Comments, ad.Shares, ad.Country, ad.DaysActive, ad.Brand, ad.Category,
			ad.AdURL, ad.ScrapedAt,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir anúncios: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter quantidade de anúncios inseridos: %w", err)
	}

	return inserted, nil
}

func (r *adRepository) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if err := prepareAd(ad); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert("ads").
		Columns(
			"id", "user_id", "title", "description", "platform", "image_url", "video_url",
			"likes", "comments", "shares", "country", "days_active", "brand", "category",
			"ad_url", "scraped_at",
		).
		Values(
			ad.ID, ad.UserID, ad.Title, ad.Description, ad.Platform, ad.ImageURL, ad.VideoURL,
			ad.Likes, ad.Comments, ad.Shares, ad.Country, ad.DaysActive, ad.Brand, ad.Category,
			ad.AdURL, ad.ScrapedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&ad.CreatedAt, &ad.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir anúncio: %w", err)
	}

	return ad, nil
}

// ListByOwner retorna os anúncios do dono, do mais recente para o mais antigo
func (r *adRepository) ListByOwner(ctx context.Context, ownerID string, filters domain.AdFilters) ([]*domain.Ad, error) {
	queryBuilder := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"a.user_id": ownerID}).
		OrderBy("a.scraped_at DESC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"a.platform": filters.Platform})
	}

	if filters.Country != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"a.country": filters.Country})
	}

	if filters.Category != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"a.category": filters.Category})
	}

	if filters.MinEngagement > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Expr("(a.likes + a.comments + a.shares) >= ?", filters.MinEngagement))
	}

	if filters.SinceDays > 0 {
		since := time.Now().UTC().AddDate(0, 0, -filters.SinceDays)
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"a.scraped_at": since})
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultAdsLimit
	}
	if limit > maxAdsLimit {
		limit = maxAdsLimit
	}
	queryBuilder = queryBuilder.Limit(uint64(limit))

	if filters.Offset > 0 {
		queryBuilder = queryBuilder.Offset(uint64(filters.Offset))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar anúncios: %w", err)
	}
	defer rows.Close()

	var ads []*domain.Ad
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ads, nil
}

func (r *adRepository) GetTotals(ctx context.Context, ownerID string) (*domain.AdTotals, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(a.likes + a.comments + a.shares), 0)",
			"MAX(a.scraped_at)",
		).
		From(adsTable).
		Where(squirrel.Eq{"a.user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		totals        domain.AdTotals
		lastScrapedAt sql.NullTime
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Count, &totals.Engagement, &lastScrapedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais de anúncios: %w", err)
	}

	if lastScrapedAt.Valid {
		totals.LastScrapedAt = &lastScrapedAt.Time
	}

	return &totals, nil
}

func (r *adRepository) CountByCategory(ctx context.Context, ownerID string) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, ownerID, "a.category")
}

func (r *adRepository) CountByPlatform(ctx context.Context, ownerID string) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, ownerID, "a.platform")
}

func (r *adRepository) countBy(ctx context.Context, ownerID, column string) ([]domain.CategoryCount, error) {
	query, args, err := squirrel.
		Select(fmt.Sprintf("COALESCE(NULLIF(%s, ''), 'Uncategorized')", column), "COUNT(*) AS total").
		From(adsTable).
		Where(squirrel.Eq{"a.user_id": ownerID}).
		GroupBy("1").
		OrderBy("total DESC", "1 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar anúncios por %s: %w", column, err)
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return counts, nil
}

// ListOwnerIDs retorna os donos que possuem ao menos um anúncio
func (r *adRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT a.user_id").
		From(adsTable).
		OrderBy("a.user_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar donos de anúncios: %w", err)
	}
	defer rows.Close()

	var ownerIDs []string
	for rows.Next() {
		var ownerID string
		if err := rows.Scan(&ownerID); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		ownerIDs = append(ownerIDs, ownerID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ownerIDs, nil
}

func prepareAd(ad *domain.Ad) error {
	if ad.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do anúncio: %w", err)
		}
		ad.ID = id
	}

	if ad.ScrapedAt.IsZero() {
		ad.ScrapedAt = time.Now().UTC()
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAd(row rowScanner) (*domain.Ad, error) {
	var (
		ad          domain.Ad
		description sql.NullString
		country     sql.NullString
		brand       sql.NullString
		category    sql.NullString
	)

	err := row.Scan(
		&ad.ID,
		&ad.UserID,
		&ad.Title,
		&description,
		&ad.Platform,
		&ad.ImageURL,
		&ad.VideoURL,
		&ad.Likes,
		&ad.Comments,
		&ad.Shares,
		&country,
		&ad.DaysActive,
		&brand,
		&category,
		&ad.AdURL,
		&ad.ScrapedAt,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ad.Description = description.String
	ad.Country = country.String
	ad.Brand = brand.String
	ad.Category = category.String

	return &ad, nil
}
