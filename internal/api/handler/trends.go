package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-trends-api/internal/usecases/trending"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
	"github.com/vfg2006/ad-trends-api/pkg/log"
	"github.com/vfg2006/ad-trends-api/pkg/middleware"
)

// AnalyzeTrends gera um novo ranking de produtos para o usuário autenticado.
// Toda falha responde 500, inclusive a ausência de credenciais.
func AnalyzeTrends(service trending.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			log.ForContext(r.Context()).Warn("trends: análise sem credenciais válidas")
			apiErrors.WriteFatal(w, apiErrors.ErrMissingCredentials, trending.ErrMissingOwner.Error(), nil)
			return
		}

		resp, err := service.AnalyzeTrends(r.Context(), claims.UserID)
		if err != nil {
			var trendErr *trending.TrendError
			if errors.As(err, &trendErr) {
				apiErrors.WriteFatal(w, trendErr.Code, trendErr.Error(), nil)
				return
			}

			apiErrors.WriteFatal(w, apiErrors.ErrTrendAnalysis, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// ListTrendingProducts retorna o ranking atual do usuário
func ListTrendingProducts(service trending.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		products, err := service.ListTrendingProducts(r.Context(), claims.UserID)
		if err != nil {
			var trendErr *trending.TrendError
			if errors.As(err, &trendErr) {
				apiErrors.WriteError(w, trendErr.Code, trendErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}
