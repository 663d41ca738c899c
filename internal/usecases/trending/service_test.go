package trending

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/ad-trends-api/infrastructure/cache/mocks"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	trendingmocks "github.com/vfg2006/ad-trends-api/internal/usecases/trending/mocks"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 4, 2, 23, 45, 0, 0, time.UTC)

type testDeps struct {
	generator   *trendingmocks.MockTextGenerator
	adRepo      *mocks.MockAdRepository
	productRepo *mocks.MockTrendingProductRepository
	statsCache  *cachemocks.MockStatsCache
}

func newTestService(t *testing.T, apiKey string) (*Service, testDeps) {
	ctrl := gomock.NewController(t)

	deps := testDeps{
		generator:   trendingmocks.NewMockTextGenerator(ctrl),
		adRepo:      mocks.NewMockAdRepository(ctrl),
		productRepo: mocks.NewMockTrendingProductRepository(ctrl),
		statsCache:  cachemocks.NewMockStatsCache(ctrl),
	}

	service := &Service{
		cfg:         &config.Config{OpenAI: config.OpenAI{APIKey: apiKey}},
		generator:   deps.generator,
		adRepo:      deps.adRepo,
		productRepo: deps.productRepo,
		statsCache:  deps.statsCache,
		now:         func() time.Time { return fixedNow },
	}

	return service, deps
}

func sampleAds() []*domain.Ad {
	return []*domain.Ad{
		{Title: "Digital Marketing Course - Learn Online", Platform: "Facebook", Category: "Education", Likes: 1250, Comments: 89, Shares: 42, DaysActive: 5},
		{Title: "Premium Smartphone at Best Price", Platform: "Facebook", Category: "Electronics", Likes: 2100, Comments: 156, Shares: 78, DaysActive: 9},
	}
}

func TestService_AnalyzeTrends(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  string
		apiKey   string
		setup    func(t *testing.T, deps testDeps)
		validate func(t *testing.T, resp *domain.AnalyzeResponse, err error)
	}{
		{
			name:    "Resposta válida - substitui o conjunto do dono pelos produtos extraídos",
			ownerID: "owner-1",
			apiKey:  "sk-test",
			setup: func(t *testing.T, deps testDeps) {
				deps.adRepo.EXPECT().
					ListByOwner(gomock.Any(), "owner-1", domain.AdFilters{Limit: 50}).
					Return(sampleAds(), nil)

				deps.generator.EXPECT().
					Complete(gomock.Any(), SystemPrompt, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, userPrompt string) (string, error) {
						assert.Contains(t, userPrompt, `"engagement": 1381`)
						assert.Contains(t, userPrompt, `"engagement": 2334`)
						assert.Contains(t, userPrompt, "exactly 10 trending products")
						return "```json\n" + productsJSON + "\n```", nil
					})

				deps.productRepo.EXPECT().
					ReplaceForOwner(gomock.Any(), "owner-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, products []*domain.TrendingProduct) (int64, error) {
						require.Len(t, products, 2)
						assert.Equal(t, "LED Strip Lights", products[0].Name)
						assert.Equal(t, "Posture Corrector", products[1].Name)
						for _, p := range products {
							assert.Equal(t, "2025-04-02", p.AnalysisDate)
						}
						return int64(len(products)), nil
					})

				deps.statsCache.EXPECT().Invalidate(gomock.Any(), "owner-1")
			},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, 2, resp.Products)
				assert.Equal(t, "Trending products analysis completed successfully", resp.Message)
			},
		},
		{
			name:    "Resposta malformada - nunca chega a apagar os produtos anteriores",
			ownerID: "owner-1",
			apiKey:  "sk-test",
			setup: func(t *testing.T, deps testDeps) {
				deps.adRepo.EXPECT().
					ListByOwner(gomock.Any(), "owner-1", gomock.Any()).
					Return(sampleAds(), nil)

				deps.generator.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("Sorry, I cannot help with that.", nil)

				deps.productRepo.EXPECT().ReplaceForOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrInvalidAIResponse)
				assert.NotContains(t, err.Error(), "Sorry")

				var trendErr *TrendError
				require.ErrorAs(t, err, &trendErr)
				assert.Equal(t, apiErrors.ErrInvalidAIResponse, trendErr.Code)
			},
		},
		{
			name:    "Produtos inválidos - nunca chega a apagar os produtos anteriores",
			ownerID: "owner-1",
			apiKey:  "sk-test",
			setup: func(t *testing.T, deps testDeps) {
				deps.adRepo.EXPECT().
					ListByOwner(gomock.Any(), "owner-1", gomock.Any()).
					Return(sampleAds(), nil)

				deps.generator.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(`[{"name": "", "rank": 1}]`, nil)

				deps.productRepo.EXPECT().ReplaceForOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrInvalidAIResponse)
			},
		},
		{
			name:    "Falha no modelo de linguagem - erro fatal",
			ownerID: "owner-1",
			apiKey:  "sk-test",
			setup: func(t *testing.T, deps testDeps) {
				deps.adRepo.EXPECT().
					ListByOwner(gomock.Any(), "owner-1", gomock.Any()).
					Return(sampleAds(), nil)

				deps.generator.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("openai: status 429"))
			},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrGenerateTrends)
			},
		},
		{
			name:    "Falha ao ler anúncios - erro fatal sem chamar o modelo",
			ownerID: "owner-1",
			apiKey:  "sk-test",
			setup: func(t *testing.T, deps testDeps) {
				deps.adRepo.EXPECT().
					ListByOwner(gomock.Any(), "owner-1", gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrFetchAds)
			},
		},
		{
			name:    "Falha ao substituir produtos - erro fatal",
			ownerID: "owner-1",
			apiKey:  "sk-test",
			setup: func(t *testing.T, deps testDeps) {
				deps.adRepo.EXPECT().
					ListByOwner(gomock.Any(), "owner-1", gomock.Any()).
					Return(sampleAds(), nil)

				deps.generator.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(productsJSON, nil)

				deps.productRepo.EXPECT().
					ReplaceForOwner(gomock.Any(), "owner-1", gomock.Any()).
					Return(int64(0), errors.New("deadlock detected"))
			},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrReplaceProducts)
			},
		},
		{
			name:    "Sem dono autenticado - nenhuma leitura ou gravação",
			ownerID: "",
			apiKey:  "sk-test",
			setup:   func(*testing.T, testDeps) {},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrMissingOwner)

				var trendErr *TrendError
				require.ErrorAs(t, err, &trendErr)
				assert.Equal(t, apiErrors.ErrMissingCredentials, trendErr.Code)
			},
		},
		{
			name:    "Chave da OpenAI ausente - erro de configuração",
			ownerID: "owner-1",
			apiKey:  "",
			setup:   func(*testing.T, testDeps) {},
			validate: func(t *testing.T, resp *domain.AnalyzeResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrOpenAIKeyNotConfigured)

				var trendErr *TrendError
				require.ErrorAs(t, err, &trendErr)
				assert.Equal(t, apiErrors.ErrConfiguration, trendErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t, tt.apiKey)
			tt.setup(t, deps)

			resp, err := service.AnalyzeTrends(context.Background(), tt.ownerID)

			tt.validate(t, resp, err)
		})
	}
}

func TestService_ListTrendingProducts(t *testing.T) {
	t.Run("Sem produtos - lista vazia", func(t *testing.T) {
		service, deps := newTestService(t, "sk-test")
		deps.productRepo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(nil, nil)

		products, err := service.ListTrendingProducts(context.Background(), "owner-1")

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Falha no repositório", func(t *testing.T) {
		service, deps := newTestService(t, "sk-test")
		deps.productRepo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(nil, errors.New("boom"))

		products, err := service.ListTrendingProducts(context.Background(), "owner-1")

		assert.Nil(t, products)
		assert.ErrorIs(t, err, ErrListProducts)
	})
}

func TestBuildUserPrompt(t *testing.T) {
	prompt, err := BuildUserPrompt(Summarize(sampleAds()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Analyze the following ad performance data"))
	assert.Contains(t, prompt, "Ad Data Summary:\n[\n  {\n    \"title\": \"Digital Marketing Course - Learn Online\"")
	assert.Contains(t, prompt, `"days_active": 9`)
	assert.Contains(t, prompt, `"trend": "+15%"`)
	assert.True(t, strings.HasSuffix(prompt, "based on the data provided."))
}

func TestBuildUserPrompt_SemAnuncios(t *testing.T) {
	prompt, err := BuildUserPrompt(Summarize(nil))
	require.NoError(t, err)

	assert.Contains(t, prompt, "Ad Data Summary:\n[]\n")
}
