package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-trends-api/internal/config"
)

func newTokenTestClient(serverURL string) *MetaClient {
	return &MetaClient{
		Cfg: &config.Config{
			Meta: config.Meta{
				URL:         serverURL + "/v18.0",
				AccessToken: "short-token",
				AppID:       "app-id",
				AppSecret:   "app-secret",
			},
		},
		HTTPClient: http.DefaultClient,
	}
}

func TestMetaClient_ExchangeToken(t *testing.T) {
	t.Run("Troca o token enviando as credenciais do app", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v18.0/oauth/access_token", r.URL.Path)

			q := r.URL.Query()
			assert.Equal(t, "fb_exchange_token", q.Get("grant_type"))
			assert.Equal(t, "app-id", q.Get("client_id"))
			assert.Equal(t, "app-secret", q.Get("client_secret"))
			assert.Equal(t, "short-token", q.Get("fb_exchange_token"))

			fmt.Fprint(w, `{"access_token":"long-token","token_type":"bearer","expires_in":5184000}`)
		}))
		defer server.Close()

		resp, err := newTokenTestClient(server.URL).ExchangeToken(context.Background(), "short-token")

		require.NoError(t, err)
		assert.Equal(t, "long-token", resp.AccessToken)
		assert.Equal(t, int64(5184000), resp.ExpiresIn)
	})

	t.Run("Token vazio não é enviado", func(t *testing.T) {
		client := newTokenTestClient("http://127.0.0.1:0")

		_, err := client.ExchangeToken(context.Background(), "")

		assert.Error(t, err)
	})

	t.Run("Resposta sem token retorna erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"token_type":"bearer"}`)
		}))
		defer server.Close()

		_, err := newTokenTestClient(server.URL).ExchangeToken(context.Background(), "short-token")

		assert.ErrorContains(t, err, "vazio")
	})
}

func TestTokenManager_Refresh(t *testing.T) {
	t.Run("Token renovado passa a ser usado pelo cliente", func(t *testing.T) {
		var received []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = append(received, r.URL.Query().Get("fb_exchange_token"))
			fmt.Fprintf(w, `{"access_token":"long-token-%d","expires_in":172800}`, len(received))
		}))
		defer server.Close()

		client := newTokenTestClient(server.URL)
		now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

		tm := NewTokenManager(client.Cfg, client)
		tm.now = func() time.Time { return now }

		require.NoError(t, tm.Refresh(context.Background()))
		assert.Equal(t, "long-token-1", client.accessToken())
		assert.Equal(t, now.Add(24*time.Hour), tm.ExpiresAt())

		require.NoError(t, tm.Refresh(context.Background()))
		assert.Equal(t, []string{"short-token", "long-token-1"}, received)
		assert.Equal(t, "long-token-2", client.accessToken())
	})

	t.Run("Sem credenciais do app não renova", func(t *testing.T) {
		client := newTokenTestClient("http://127.0.0.1:0")
		client.Cfg.Meta.AppSecret = ""

		tm := NewTokenManager(client.Cfg, client)

		assert.False(t, tm.Enabled())
		assert.Error(t, tm.Refresh(context.Background()))
		assert.Equal(t, "short-token", client.accessToken())
	})
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresIn int64
		expected  time.Time
	}{
		{name: "Antecipa um dia", expiresIn: 60 * 24 * 60 * 60, expected: now.Add(59 * 24 * time.Hour)},
		{name: "Prazo curto usa metade", expiresIn: 2 * 60 * 60, expected: now.Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTokenExpiration(tt.expiresIn, now))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 dias, 2 horas e 3 minutos", FormatDuration(int64(26*60*60+3*60)))
}
