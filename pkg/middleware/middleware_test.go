package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-trends-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ad-trends-api/pkg/log"
	"github.com/vfg2006/ad-trends-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func claimsHandler(t *testing.T, want *domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if want == nil {
			assert.False(t, ok)
		} else {
			assert.True(t, ok)
			assert.Equal(t, want.UserID, claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	validClaims := &domain.Claims{UserID: "user-1", UserRoleID: domain.RoleMember}

	tests := []struct {
		name       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantClaims *domain.Claims
	}{
		{
			name:   "Token válido - anexa claims",
			header: "Bearer token-ok",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("token-ok").Return(validClaims, nil)
			},
			wantClaims: validClaims,
		},
		{
			name:   "Token inválido - segue sem claims",
			header: "Bearer token-ruim",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("token-ruim").Return(nil, authenticating.ErrInvalidToken)
			},
		},
		{
			name:   "Sem cabeçalho - não valida",
			header: "",
			setup:  func(*mocks.MockAuthenticator) {},
		},
		{
			name:   "Esquema diferente de Bearer - não valida",
			header: "Basic dXNlcjpwYXNz",
			setup:  func(*mocks.MockAuthenticator) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(claimsHandler(t, tt.wantClaims)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("Sem token - 401 AUTH_010", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAuth()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ads", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_010")
	})

	t.Run("Token presente mas rejeitado - 401 AUTH_006", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req.Header.Set("Authorization", "Bearer expirado")
		rec := httptest.NewRecorder()

		RequireAuth()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_006")
	})

	t.Run("Com claims - segue", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req = req.WithContext(WithClaims(req.Context(), &domain.Claims{UserID: "user-1"}))
		rec := httptest.NewRecorder()

		RequireAuth()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Admin acessa", claims: &domain.Claims{UserID: "1", UserRoleID: domain.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "Membro é barrado", claims: &domain.Claims{UserID: "2", UserRoleID: domain.RoleMember}, wantStatus: http.StatusForbidden},
		{name: "Sem claims é barrado", claims: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/trend-analysis/run", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Origem liberada recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/trends", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/trends", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/ads/scrape", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLoggingMiddleware_DevolveCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("falha inesperada"))
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ads", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestMetrics_UsaTemplateDaRota(t *testing.T) {
	route := "/v1/cron/:type/run"
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, route, "409")
	before := testutil.ToFloat64(counter)

	handler := Metrics(route)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/cron/trend-analysis/run", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(metrics.HTTPInFlight))
}
