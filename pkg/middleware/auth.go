package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware anexa ao contexto as claims de um token bearer válido.
// Requisições sem token seguem adiante; cada rota decide como rejeitar.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := BearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logrus.WithField("path", r.URL.Path).Debug("Token bearer rejeitado: ", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejeita com 401 requisições sem claims no contexto
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			if _, hasToken := BearerToken(r); !hasToken {
				apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Token bearer obrigatório", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
		})
	}
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	tokenString = strings.TrimSpace(tokenString)
	if !found || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	if !ok || claims == nil || claims.UserID == "" {
		return nil, false
	}
	return claims, true
}
