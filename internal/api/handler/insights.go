package handler

import (
	"net/http"

	"github.com/vfg2006/ad-trends-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
	"github.com/vfg2006/ad-trends-api/pkg/log"
)

func GetDashboardStats(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		stats, err := service.GetDashboardStats(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("insights: erro ao consolidar estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consolidar estatísticas do painel", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
