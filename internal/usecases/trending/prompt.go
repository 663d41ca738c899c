package trending

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-trends-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const SystemPrompt = "You are an expert in e-commerce trends and dropshipping product analysis. Always respond with valid JSON arrays."

const userPromptTemplate = `Analyze the following ad performance data and identify the top 10 trending products for dropshipping. Consider engagement rates, platform performance, and market trends.

Ad Data Summary:
%s

Please respond with a JSON array of exactly 10 trending products, each with the following structure:
{
  "name": "Product Name",
  "category": "Product Category",
  "score": 85,
  "trend": "+15%%",
  "reason": "Detailed explanation of why this product is trending",
  "platforms": ["Facebook", "TikTok"],
  "avg_engagement": "12.5K",
  "rank": 1
}

Focus on realistic product names, categories, and trends based on the data provided.`

// Summarize reduz os anúncios ao resumo enviado no prompt
func Summarize(ads []*domain.Ad) []domain.AdSummary {
	summaries := make([]domain.AdSummary, 0, len(ads))
	for _, ad := range ads {
		summaries = append(summaries, ad.Summary())
	}
	return summaries
}

// BuildUserPrompt embute o resumo, indentado com dois espaços, no modelo de instrução
func BuildUserPrompt(summaries []domain.AdSummary) (string, error) {
	payload, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar resumo dos anúncios: %w", err)
	}

	return fmt.Sprintf(userPromptTemplate, payload), nil
}
