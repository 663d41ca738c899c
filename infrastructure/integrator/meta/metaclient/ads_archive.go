package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/domain"
)

// archiveFields são os campos solicitados para cada anúncio arquivado
var archiveFields = []string{
	"id",
	"ad_creative_body",
	"page_name",
	"ad_snapshot_url",
	"ad_delivery_start_time",
	"impressions",
	"spend",
	"demographic_distribution",
	"region_distribution",
}

// SearchArchivedAds consulta o endpoint ads_archive, seguindo a paginação até query.MaxPages
func (c *MetaClient) SearchArchivedAds(ctx context.Context, query metadomain.ArchiveQuery) ([]metadomain.ArchivedAd, error) {
	token := c.accessToken()
	if token == "" {
		return nil, fmt.Errorf("token de acesso da Graph API não configurado")
	}

	baseURL := fmt.Sprintf("%s/ads_archive", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("access_token", token)
	params.Add("ad_reached_countries", fmt.Sprintf(`["%s"]`, query.CountryCode))
	params.Add("ad_delivery_date_min", query.StartDate)
	params.Add("ad_delivery_date_max", query.EndDate)
	params.Add("ad_type", query.AdType)
	params.Add("limit", strconv.Itoa(query.Limit))
	params.Add("fields", strings.Join(archiveFields, ","))

	maxPages := query.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	nextURL := baseURL + "?" + params.Encode()

	var ads []metadomain.ArchivedAd
	for page := 1; page <= maxPages && nextURL != ""; page++ {
		body, err := c.get(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		var response metadomain.ArchivedAdsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON da Ads Library")
			return nil, fmt.Errorf("erro ao decodificar resposta da Ads Library: %w", err)
		}

		ads = append(ads, response.Data...)

		logrus.WithFields(logrus.Fields{
			"page":  page,
			"count": len(response.Data),
		}).Debug("Página da Ads Library recebida")

		nextURL = ""
		if response.Paging != nil {
			nextURL = response.Paging.Next
		}
	}

	if len(ads) == 0 {
		return nil, ErrNoAdsFound
	}

	return ads, nil
}
