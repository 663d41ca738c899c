package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
)

// CronJobTypeTrendAnalysis identifica a reanálise de tendências de todos os donos
const CronJobTypeTrendAnalysis = "trend-analysis"

// ManualSync é o contrato dos agendadores que podem ser disparados pela API
type ManualSync interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores acionáveis manualmente, por tipo
type CronJobServices struct {
	TrendAnalysisSync ManualSync
}

func (s CronJobServices) byType(cronType string) (ManualSync, bool) {
	switch cronType {
	case CronJobTypeTrendAnalysis:
		return s.TrendAnalysisSync, s.TrendAnalysisSync != nil
	default:
		return nil, false
	}
}

// RunCronJob dispara em segundo plano o agendador do tipo informado
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		sync, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSyncType, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeTrendAnalysis, nil)
			return
		}

		if !sync.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Execução já em andamento", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status do agendador do tipo informado
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		sync, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSyncType, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeTrendAnalysis, nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"type":   cronType,
			"status": sync.GetStatus(),
		})
	}
}
