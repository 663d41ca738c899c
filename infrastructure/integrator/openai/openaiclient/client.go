package openaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	openaidomain "github.com/vfg2006/ad-trends-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/ad-trends-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateChatCompletion(ctx context.Context, req openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error)
}

type OpenAIClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.OpenAITimeout(),
		},
	}
}

// CreateChatCompletion envia uma requisição ao endpoint /chat/completions
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, payload openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error) {
	if c.Cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("chave da API da OpenAI não configurada")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	endpoint := strings.TrimRight(c.Cfg.OpenAI.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.OpenAI.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição para a OpenAI: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &openaidomain.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}

		var errorResp openaidomain.ErrorResponse
		if err := json.Unmarshal(raw, &errorResp); err == nil {
			httpErr.Message = errorResp.Error.Message
			httpErr.Type = errorResp.Error.Type
		}

		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"type":        httpErr.Type,
		}).Error("OpenAI retornou erro")

		return nil, httpErr
	}

	var completion openaidomain.ChatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta da OpenAI: %w", err)
	}

	return &completion, nil
}
