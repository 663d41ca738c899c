package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestAdsWorkbook(t *testing.T) {
	adURL := "https://facebook.com/ads/library"
	scrapedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	ads := []*domain.Ad{
		{
			ID:         "ad-1",
			Title:      "Premium Smartphone at Best Price",
			Platform:   domain.PlatformFacebook,
			Brand:      "TechMart India",
			Category:   "Electronics",
			Country:    "India",
			Likes:      2100,
			Comments:   156,
			Shares:     78,
			DaysActive: 4,
			AdURL:      &adURL,
			ScrapedAt:  scrapedAt,
		},
	}

	raw, err := AdsWorkbook(ads)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	xl, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(AdsSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, adsHeader, rows[0])
	assert.Equal(t, "ad-1", rows[1][0])
	assert.Equal(t, "Premium Smartphone at Best Price", rows[1][1])
	assert.Equal(t, "2334", rows[1][10])
	assert.Equal(t, "https://facebook.com/ads/library", rows[1][14])
	assert.Equal(t, "2025-03-10T12:00:00Z", rows[1][15])
}

func TestAdsWorkbook_SemAnuncios(t *testing.T) {
	raw, err := AdsWorkbook(nil)
	require.NoError(t, err)

	xl, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(AdsSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAdsFilename(t *testing.T) {
	assert.Equal(t, "ads_20250310.xlsx", AdsFilename(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)))
}
