package trending

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/pkg/validation"
)

var (
	ErrNoJSONArray      = errors.New("nenhum array JSON encontrado na resposta")
	ErrMalformedJSON    = errors.New("array JSON inválido na resposta")
	ErrEmptyProductList = errors.New("a resposta não contém produtos")
	ErrDuplicateRank    = errors.New("ranking repetido na resposta")
)

// ExtractJSONArray isola o array JSON de uma resposta livre do modelo.
// Remove cercas de markdown opcionais e recorta do primeiro '[' ao último ']'.
func ExtractJSONArray(text string) ([]byte, error) {
	body := strings.TrimSpace(text)
	body = stripFence(body)

	start := strings.Index(body, "[")
	end := strings.LastIndex(body, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoJSONArray
	}

	raw := []byte(body[start : end+1])
	if !json.Valid(raw) {
		return nil, ErrMalformedJSON
	}

	return raw, nil
}

func stripFence(body string) string {
	var rest string
	switch {
	case strings.HasPrefix(body, "```json"):
		rest = strings.TrimPrefix(body, "```json")
	case strings.HasPrefix(body, "```"):
		rest = strings.TrimPrefix(body, "```")
	default:
		return body
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")

	return strings.TrimSpace(rest)
}

// productReply é o formato de cada item pedido ao modelo; campos fora dele são descartados
type productReply struct {
	Rank          int      `json:"rank" validate:"gte=1"`
	Name          string   `json:"name" validate:"required"`
	Category      string   `json:"category"`
	Score         float64  `json:"score"`
	Trend         string   `json:"trend"`
	Reason        string   `json:"reason"`
	Platforms     []string `json:"platforms"`
	AvgEngagement string   `json:"avg_engagement"`
}

// ParseTrendingProducts decodifica e valida a lista extraída da resposta do modelo
func ParseTrendingProducts(raw []byte) ([]*domain.TrendingProduct, error) {
	var replies []*productReply
	if err := json.Unmarshal(raw, &replies); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if len(replies) == 0 {
		return nil, ErrEmptyProductList
	}

	products := make([]*domain.TrendingProduct, 0, len(replies))
	seenRanks := make(map[int]struct{}, len(replies))
	for i, reply := range replies {
		if reply == nil {
			return nil, fmt.Errorf("%w: item %d nulo", ErrMalformedJSON, i)
		}

		reply.Name = strings.TrimSpace(reply.Name)
		if err := validation.Struct(reply); err != nil {
			return nil, fmt.Errorf("item %d inválido: %s", i, strings.Join(validation.Messages(err), "; "))
		}

		if _, ok := seenRanks[reply.Rank]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRank, reply.Rank)
		}
		seenRanks[reply.Rank] = struct{}{}

		platforms := reply.Platforms
		if platforms == nil {
			platforms = []string{}
		}

		products = append(products, &domain.TrendingProduct{
			Rank:          reply.Rank,
			Name:          reply.Name,
			Category:      reply.Category,
			Score:         reply.Score,
			Trend:         reply.Trend,
			Reason:        reply.Reason,
			Platforms:     platforms,
			AvgEngagement: reply.AvgEngagement,
		})
	}

	return products, nil
}
