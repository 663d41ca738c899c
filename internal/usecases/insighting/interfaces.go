package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ad-trends-api/internal/domain"
)

// Insighter define a interface para obter os indicadores do painel de um dono
type Insighter interface {
	// GetDashboardStats consolida totais de anúncios, distribuição por categoria e plataforma e o resumo da última análise
	GetDashboardStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}
