package metaclient

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-trends-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoAdsFound indica que a Ads Library respondeu sem nenhum registro
var ErrNoAdsFound = errors.New("nenhum anúncio encontrado na Ads Library")

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

type Client interface {
	SearchArchivedAds(ctx context.Context, query metadomain.ArchiveQuery) ([]metadomain.ArchivedAd, error)
	FetchSnapshotImage(ctx context.Context, snapshotURL string) (string, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	Tokens     *TokenManager
}

func NewClient(cfg *config.Config) *MetaClient {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.MetaTimeout(),
		},
	}
}

// accessToken prefere o token renovado pelo TokenManager ao configurado
func (c *MetaClient) accessToken() string {
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			return token
		}
	}
	return c.Cfg.Meta.AccessToken
}

func (c *MetaClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição para a Graph API: %w", err)
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// HandleResponse devolve o corpo em caso de sucesso ou um *GraphError com o envelope de erro da API
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	graphErr := &metadomain.GraphError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		graphErr.Details = &errorResp

		switch {
		case errorResp.IsTokenExpired():
			logrus.WithFields(logrus.Fields{
				"code":    errorResp.Error.Code,
				"subcode": errorResp.Error.ErrorSubcode,
			}).Error("Token da Graph API expirado ou inválido, atualize META_ACCESS_TOKEN")
		case errorResp.IsRateLimited():
			logrus.WithField("code", errorResp.Error.Code).Warn("Limite de uso da Graph API atingido")
		}
	}

	return nil, graphErr
}
