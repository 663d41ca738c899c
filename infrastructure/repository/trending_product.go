package repository

//go:generate mockgen -source=trending_product.go -destination=mocks/trending_product_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-trends-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/pkg/utils"
)

const (
	trendingProductsTable = "trending_products tp"
)

type TrendingProductRepository interface {
	ReplaceForOwner(ctx context.Context, ownerID string, products []*domain.TrendingProduct) (int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.TrendingProduct, error)
	GetSummary(ctx context.Context, ownerID string) (int, *string, error)
}

type trendingProductRepository struct {
	conn *postgres.Connection
}

func NewTrendingProductRepository(conn *postgres.Connection) TrendingProductRepository {
	return &trendingProductRepository{
		conn: conn,
	}
}

// ReplaceForOwner apaga o conjunto atual do dono e grava o novo na mesma transação; ids são sempre gerados aqui
func (r *trendingProductRepository) ReplaceForOwner(ctx context.Context, ownerID string, products []*domain.TrendingProduct) (int64, error) {
	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete("trending_products").
			Where(squirrel.Eq{"user_id": ownerID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover produtos em tendência anteriores: %w", err)
		}

		if len(products) == 0 {
			return nil
		}

		insertBuilder := squirrel.
			Insert("trending_products").
			Columns(
				"id", "user_id", "rank", "name", "category", "score", "trend",
				"reason", "platforms", "avg_engagement", "analysis_date",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, p := range products {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id do produto: %w", err)
			}
			p.ID = id
			p.UserID = ownerID

			insertBuilder = insertBuilder.Values(
				p.ID, p.UserID, p.Rank, p.Name, p.Category, p.Score, p.Trend,
				p.Reason, pq.Array(p.Platforms), p.AvgEngagement, p.AnalysisDate,
			)
		}

		insertSQL, insertArgs, err := insertBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, insertSQL, insertArgs...)
		if err != nil {
			return fmt.Errorf("erro ao inserir produtos em tendência: %w", err)
		}

		inserted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter quantidade de produtos inseridos: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ListByOwner retorna os produtos do dono ordenados pelo ranking
func (r *trendingProductRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TrendingProduct, error) {
	query, args, err := squirrel.
		Select(
			"tp.id",
			"tp.user_id",
			"tp.rank",
			"tp.name",
			"tp.category",
			"tp.score",
			"tp.trend",
			"tp.reason",
			"tp.platforms",
			"tp.avg_engagement",
			"tp.analysis_date",
			"tp.created_at",
			"tp.updated_at",
		).
		From(trendingProductsTable).
		Where(squirrel.Eq{"tp.user_id": ownerID}).
		OrderBy("tp.rank ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos em tendência: %w", err)
	}
	defer rows.Close()

	var products []*domain.TrendingProduct
	for rows.Next() {
		var (
			p            domain.TrendingProduct
			category     sql.NullString
			trend        sql.NullString
			reason       sql.NullString
			avgEngage    sql.NullString
			analysisDate time.Time
		)

		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Rank,
			&p.Name,
			&category,
			&p.Score,
			&trend,
			&reason,
			pq.Array(&p.Platforms),
			&avgEngage,
			&analysisDate,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto em tendência: %w", err)
		}

		p.Category = category.String
		p.Trend = trend.String
		p.Reason = reason.String
		p.AvgEngagement = avgEngage.String
		p.AnalysisDate = analysisDate.Format(time.DateOnly)

		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return products, nil
}

// GetSummary retorna a quantidade de produtos e a data da última análise do dono
func (r *trendingProductRepository) GetSummary(ctx context.Context, ownerID string) (int, *string, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "MAX(tp.analysis_date)").
		From(trendingProductsTable).
		Where(squirrel.Eq{"tp.user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count        int
		analysisDate sql.NullTime
	)

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count, &analysisDate); err != nil {
		return 0, nil, fmt.Errorf("erro ao consultar resumo de produtos em tendência: %w", err)
	}

	if !analysisDate.Valid {
		return count, nil, nil
	}

	date := analysisDate.Time.Format(time.DateOnly)
	return count, &date, nil
}
