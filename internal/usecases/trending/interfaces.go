package trending

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ad-trends-api/internal/domain"
)

// TextGenerator envia um par de prompts ao modelo de linguagem e devolve o texto da resposta
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Analyzer executa o pipeline de análise e a leitura dos produtos em tendência
type Analyzer interface {
	AnalyzeTrends(ctx context.Context, ownerID string) (*domain.AnalyzeResponse, error)
	ListTrendingProducts(ctx context.Context, ownerID string) ([]*domain.TrendingProduct, error)
}
