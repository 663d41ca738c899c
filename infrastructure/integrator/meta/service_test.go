package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			CountryCode: "IN",
			CountryName: "India",
			AdType:      "POLITICAL_AND_ISSUE_ADS",
			Category:    "Political/Issue",
			PageLimit:   50,
			MaxPages:    1,
		},
	}
}

func TestMetaIntegrator_SearchAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	integrator := New(testConfig(), mockClient)
	integrator.now = func() time.Time { return now }

	window := domain.DateRange{Start: "2024-02-19", End: "2024-03-20"}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, ads []*domain.Ad, err error)
	}{
		{
			name: "Converte anúncios com os valores padrão quando faltam campos",
			setup: func() {
				mockClient.EXPECT().
					SearchArchivedAds(gomock.Any(), metadomain.ArchiveQuery{
						StartDate:   "2024-02-19",
						EndDate:     "2024-03-20",
						CountryCode: "IN",
						AdType:      "POLITICAL_AND_ISSUE_ADS",
						Limit:       50,
						MaxPages:    1,
					}).
					Return([]metadomain.ArchivedAd{
						{
							ID:                  "1",
							PageName:            "Acme Foods",
							AdCreativeBody:      "Fresh snacks delivered",
							AdSnapshotURL:       "https://www.facebook.com/ads/archive/render_ad/?id=1",
							AdDeliveryStartTime: "2024-03-10T08:00:00+0000",
						},
						{
							ID: "2",
						},
					}, nil)
			},
			validate: func(t *testing.T, ads []*domain.Ad, err error) {
				require.NoError(t, err)
				require.Len(t, ads, 2)

				first := ads[0]
				assert.Equal(t, "Acme Foods - Ad", first.Title)
				assert.Equal(t, "Fresh snacks delivered", first.Description)
				assert.Equal(t, "Acme Foods", first.Brand)
				assert.Equal(t, "Facebook", first.Platform)
				assert.Equal(t, "India", first.Country)
				assert.Equal(t, "Political/Issue", first.Category)
				assert.Equal(t, 10, first.DaysActive)
				assert.Equal(t, "owner-1", first.UserID)
				require.NotNil(t, first.AdURL)
				assert.Equal(t, "https://www.facebook.com/ads/archive/render_ad/?id=1", *first.AdURL)
				assert.Nil(t, first.ImageURL)
				assert.Nil(t, first.VideoURL)
				assert.Equal(t, now, first.ScrapedAt)

				second := ads[1]
				assert.Equal(t, "Unknown Page - Ad", second.Title)
				assert.Equal(t, "No description available", second.Description)
				assert.Equal(t, "Unknown Brand", second.Brand)
				assert.Equal(t, 0, second.DaysActive)
				assert.Nil(t, second.AdURL)

				for _, ad := range ads {
					assert.GreaterOrEqual(t, ad.Likes, 100)
					assert.LessOrEqual(t, ad.Likes, 1099)
					assert.GreaterOrEqual(t, ad.Comments, 20)
					assert.LessOrEqual(t, ad.Comments, 219)
					assert.GreaterOrEqual(t, ad.Shares, 10)
					assert.LessOrEqual(t, ad.Shares, 109)
				}
			},
		},
		{
			name: "Propaga erro da Ads Library",
			setup: func() {
				mockClient.EXPECT().
					SearchArchivedAds(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, ads []*domain.Ad, err error) {
				require.Error(t, err)
				assert.Nil(t, ads)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			ads, err := integrator.SearchAds(context.Background(), "owner-1", window)
			tt.validate(t, ads, err)
		})
	}
}

func TestMetaIntegrator_SearchAdsWithSnapshotEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Meta.SnapshotEnrichmentEnabled = true

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(cfg, mockClient)

	mockClient.EXPECT().
		SearchArchivedAds(gomock.Any(), gomock.Any()).
		Return([]metadomain.ArchivedAd{
			{ID: "1", PageName: "Acme", AdSnapshotURL: "https://snapshot/1"},
			{ID: "2", PageName: "Beta", AdSnapshotURL: "https://snapshot/2"},
			{ID: "3", PageName: "Gama"},
		}, nil)

	mockClient.EXPECT().
		FetchSnapshotImage(gomock.Any(), "https://snapshot/1").
		Return("https://cdn/1.jpg", nil)
	mockClient.EXPECT().
		FetchSnapshotImage(gomock.Any(), "https://snapshot/2").
		Return("", errors.New("status 500"))

	ads, err := integrator.SearchAds(context.Background(), "owner-1", domain.DateRange{Start: "2024-01-01", End: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, ads, 3)

	require.NotNil(t, ads[0].ImageURL)
	assert.Equal(t, "https://cdn/1.jpg", *ads[0].ImageURL)
	assert.Nil(t, ads[1].ImageURL)
	assert.Nil(t, ads[2].ImageURL)
}

func TestDaysActive(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Formato da Graph API", input: "2024-03-10T08:00:00+0000", expected: 10},
		{name: "RFC3339", input: "2024-03-18T12:00:00Z", expected: 2},
		{name: "Somente data", input: "2024-01-20", expected: 60},
		{name: "Ausente conta como hoje", input: "", expected: 0},
		{name: "Inválida conta como hoje", input: "ontem", expected: 0},
		{name: "Início no futuro nunca é negativo", input: "2024-04-01", expected: 0},
		{name: "Menos de um dia arredonda para baixo", input: "2024-03-19T13:00:00Z", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysActive(tt.input, now))
		})
	}
}
