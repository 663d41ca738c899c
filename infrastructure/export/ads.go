// Package export gera planilhas a partir dos dados do dono
package export

import (
	"fmt"
	"time"

	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	AdsSheetName   = "Ads"
	AdsContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var adsHeader = []string{
	"id", "title", "description", "platform", "brand", "category", "country",
	"likes", "comments", "shares", "engagement", "days_active",
	"image_url", "video_url", "ad_url", "scraped_at",
}

// AdsWorkbook monta uma planilha XLSX com uma linha por anúncio
func AdsWorkbook(ads []*domain.Ad) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	xl.SetSheetName(xl.GetSheetName(0), AdsSheetName)

	if err := xl.SetSheetRow(AdsSheetName, "A1", &adsHeader); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho da planilha: %w", err)
	}

	for i, ad := range ads {
		record := []any{
			ad.ID,
			ad.Title,
			ad.Description,
			ad.Platform,
			ad.Brand,
			ad.Category,
			ad.Country,
			ad.Likes,
			ad.Comments,
			ad.Shares,
			ad.Engagement(),
			ad.DaysActive,
			deref(ad.ImageURL),
			deref(ad.VideoURL),
			deref(ad.AdURL),
			ad.ScrapedAt.UTC().Format(time.RFC3339),
		}

		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("erro ao calcular célula da planilha: %w", err)
		}

		if err := xl.SetSheetRow(AdsSheetName, cellRef, &record); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha da planilha: %w", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return buf.Bytes(), nil
}

// AdsFilename gera o nome do arquivo de exportação para a data informada
func AdsFilename(now time.Time) string {
	return fmt.Sprintf("ads_%s.xlsx", now.UTC().Format("20060102"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
