package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-trends-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-trends-api/internal/domain"
)

const testOwnerID = "3f0c1a52-8c1e-4a8e-9a57-2b6b1f0f7a11"

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func productArgs(ownerID string, p *domain.TrendingProduct) []driver.Value {
	return []driver.Value{
		sqlmock.AnyArg(), ownerID, p.Rank, p.Name, p.Category, p.Score, p.Trend,
		p.Reason, sqlmock.AnyArg(), p.AvgEngagement, p.AnalysisDate,
	}
}

func TestTrendingProductRepository_ReplaceForOwner(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM trending_products WHERE user_id = $1")
	insertSQL := regexp.QuoteMeta("INSERT INTO trending_products (id,user_id,rank,name,category,score,trend,reason,platforms,avg_engagement,analysis_date) VALUES")

	newProducts := func() []*domain.TrendingProduct {
		return []*domain.TrendingProduct{
			{ID: "id-do-modelo", UserID: "outro-dono", Rank: 1, Name: "LED Strip Lights", Category: "Home Decor", Score: 92, Trend: "+24%", Platforms: []string{"Facebook"}, AvgEngagement: "12.5K", AnalysisDate: "2024-03-20"},
			{Rank: 2, Name: "Posture Corrector", Category: "Health", Score: 85, Trend: "+15%", AvgEngagement: "8.1K", AnalysisDate: "2024-03-20"},
		}
	}

	tests := []struct {
		name     string
		products func() []*domain.TrendingProduct
		setup    func(mock sqlmock.Sqlmock, products []*domain.TrendingProduct)
		validate func(t *testing.T, inserted int64, products []*domain.TrendingProduct, err error)
	}{
		{
			name:     "Apaga e insere do mesmo dono dentro da transação",
			products: newProducts,
			setup: func(mock sqlmock.Sqlmock, products []*domain.TrendingProduct) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteSQL).WithArgs(testOwnerID).WillReturnResult(sqlmock.NewResult(0, 10))

				args := append(productArgs(testOwnerID, products[0]), productArgs(testOwnerID, products[1])...)
				mock.ExpectExec(insertSQL).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, inserted int64, products []*domain.TrendingProduct, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(2), inserted)

				for _, p := range products {
					assert.Equal(t, testOwnerID, p.UserID)
					assert.Len(t, p.ID, 16)
				}
				assert.NotEqual(t, "id-do-modelo", products[0].ID)
				assert.NotEqual(t, products[0].ID, products[1].ID)
			},
		},
		{
			name:     "Lista vazia apenas limpa o conjunto do dono",
			products: func() []*domain.TrendingProduct { return nil },
			setup: func(mock sqlmock.Sqlmock, _ []*domain.TrendingProduct) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteSQL).WithArgs(testOwnerID).WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, inserted int64, _ []*domain.TrendingProduct, err error) {
				require.NoError(t, err)
				assert.Zero(t, inserted)
			},
		},
		{
			name:     "Falha no insert desfaz a remoção",
			products: newProducts,
			setup: func(mock sqlmock.Sqlmock, _ []*domain.TrendingProduct) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteSQL).WithArgs(testOwnerID).WillReturnResult(sqlmock.NewResult(0, 10))
				mock.ExpectExec(insertSQL).WillReturnError(errors.New("value too long"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, inserted int64, _ []*domain.TrendingProduct, err error) {
				assert.ErrorContains(t, err, "erro ao inserir produtos em tendência")
				assert.Zero(t, inserted)
			},
		},
		{
			name:     "Falha na remoção não tenta inserir",
			products: newProducts,
			setup: func(mock sqlmock.Sqlmock, _ []*domain.TrendingProduct) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteSQL).WithArgs(testOwnerID).WillReturnError(errors.New("conexão perdida"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, inserted int64, _ []*domain.TrendingProduct, err error) {
				assert.ErrorContains(t, err, "erro ao remover produtos em tendência anteriores")
				assert.Zero(t, inserted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			products := tt.products()
			tt.setup(mock, products)

			inserted, err := NewTrendingProductRepository(conn).ReplaceForOwner(context.Background(), testOwnerID, products)

			tt.validate(t, inserted, products, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
