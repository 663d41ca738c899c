package openai

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	openaidomain "github.com/vfg2006/ad-trends-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ad-trends-api/internal/config"
)

// ErrEmptyCompletion indica uma resposta sem nenhuma escolha
var ErrEmptyCompletion = errors.New("resposta da OpenAI sem conteúdo")

type OpenAIIntegrator struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) *OpenAIIntegrator {
	return &OpenAIIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Complete envia o par de prompts e devolve o texto da primeira escolha
func (s *OpenAIIntegrator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openaidomain.ChatCompletionRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []openaidomain.Message{
			{Role: openaidomain.RoleSystem, Content: systemPrompt},
			{Role: openaidomain.RoleUser, Content: userPrompt},
		},
		Temperature: s.cfg.OpenAI.Temperature,
	}

	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logrus.WithFields(logrus.Fields{
		"model":         resp.Model,
		"total_tokens":  resp.Usage.TotalTokens,
		"finish_reason": resp.Choices[0].FinishReason,
	}).Debug("openai: chat completion concluída")

	return resp.Choices[0].Message.Content, nil
}
