package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/usecases/trending"
	"github.com/vfg2006/ad-trends-api/pkg/log"
)

// TrendAnalysisSyncConfig representa a configuração do agendador de análise de tendências
type TrendAnalysisSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// TrendAnalysisSyncService reexecuta periodicamente a análise de tendências de todos os donos com anúncios
type TrendAnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              TrendAnalysisSyncConfig
	adRepo              repository.AdRepository
	analyzer            trending.Analyzer
	sleep               func(time.Duration)
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncOwners      int
	lastSyncFailures    int
}

// NewTrendAnalysisSyncService cria uma nova instância do serviço de análise agendada
func NewTrendAnalysisSyncService(
	adRepo repository.AdRepository,
	analyzer trending.Analyzer,
	appConfig *config.Config,
) *TrendAnalysisSyncService {
	syncConfig := TrendAnalysisSyncConfig{
		CronSchedule:        appConfig.TrendAnalysisSync.CronSchedule,
		RequestDelaySeconds: appConfig.TrendAnalysisSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.TrendAnalysisSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.TrendAnalysisSync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de análise de tendências carregada")

	return &TrendAnalysisSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		adRepo:    adRepo,
		analyzer:  analyzer,
		sleep:     time.Sleep,
	}
}

// Start inicia o agendador
func (s *TrendAnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Análise agendada de tendências desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise de tendências")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllOwners(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise de tendências: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise de tendências")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllOwners executa a análise para cada dono com anúncios; execuções sobrepostas são ignoradas
func (s *TrendAnalysisSyncService) syncAllOwners(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de tendências já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	s.runSync(ctx, startTime)
}

func (s *TrendAnalysisSyncService) runSync(ctx context.Context, startTime time.Time) {
	logrus.Info("Iniciando análise de tendências para todos os donos com anúncios")

	ownerIDs, err := s.adRepo.ListOwnerIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar donos para análise de tendências")
		return
	}

	if len(ownerIDs) == 0 {
		logrus.Info("Nenhum dono com anúncios encontrado para análise de tendências")
		return
	}

	failures := s.analyzeOwners(ctx, ownerIDs)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"owners":   len(ownerIDs),
		"failures": failures,
	}).Info("Análise de tendências concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncOwners = len(ownerIDs)
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()
}

// analyzeOwners processa os donos com no máximo MaxConcurrentJobs análises simultâneas
func (s *TrendAnalysisSyncService) analyzeOwners(ctx context.Context, ownerIDs []string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		failures atomic.Int64
	)

	for _, ownerID := range ownerIDs {
		if ctx.Err() != nil {
			logrus.Warn("Análise de tendências interrompida pelo cancelamento do contexto")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(ownerID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if !s.analyzeOwner(ctx, ownerID) {
				failures.Add(1)
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(ownerID)
	}

	wg.Wait()

	return int(failures.Load())
}

func (s *TrendAnalysisSyncService) analyzeOwner(ctx context.Context, ownerID string) bool {
	jobCtx, correlationID := log.WithCorrelationID(ctx)

	resp, err := s.analyzer.AnalyzeTrends(jobCtx, ownerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"user_id":        ownerID,
			"error":          err.Error(),
		}).Error("Erro na análise agendada de tendências")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"user_id":        ownerID,
		"products":       resp.Products,
	}).Info("Análise agendada de tendências salva")

	return true
}

// TriggerManualSync inicia manualmente a análise de todos os donos.
// Retorna false quando já existe uma execução em andamento.
func (s *TrendAnalysisSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de tendências já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando análise manual de tendências")
	go s.syncAllOwners(context.Background())

	return true
}

// IsRunning informa se existe uma execução em andamento
func (s *TrendAnalysisSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *TrendAnalysisSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_owners":       s.lastSyncOwners,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
