package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/infrastructure/cache"
	"github.com/vfg2006/ad-trends-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ad-trends-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ad-trends-api/infrastructure/repository"
	"github.com/vfg2006/ad-trends-api/internal/api"
	"github.com/vfg2006/ad-trends-api/internal/api/handler"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/scheduler"
	"github.com/vfg2006/ad-trends-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-trends-api/internal/usecases/cataloging"
	"github.com/vfg2006/ad-trends-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-trends-api/internal/usecases/scraping"
	"github.com/vfg2006/ad-trends-api/internal/usecases/trending"
	"github.com/vfg2006/ad-trends-api/pkg/log"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	logOutput, err := log.SetupOutput(cfg.Log)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar arquivo de log")
	}
	defer logOutput.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	statsCache := newStatsCache(ctx, cfg)

	userRepo := repository.NewUserRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	productRepo := repository.NewTrendingProductRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	tokenManager := metaclient.NewTokenManager(cfg, metaClient)
	go tokenManager.StartAutoRefresh(ctx)

	metaIntegrator := meta.New(cfg, metaClient)
	openAIIntegrator := openai.New(cfg, openaiclient.NewClient(cfg))

	scraper := scraping.NewService(cfg, metaIntegrator, adRepo, statsCache)
	analyzer := trending.NewService(cfg, openAIIntegrator, adRepo, productRepo, statsCache)
	cataloger := cataloging.NewService(adRepo, statsCache)
	insighter := insighting.NewService(adRepo, productRepo, statsCache)

	trendAnalysisSyncService := scheduler.NewTrendAnalysisSyncService(adRepo, analyzer, cfg)

	if err := trendAnalysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise de tendências")
	} else {
		logrus.Info("Agendador de análise de tendências iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Scraper:       scraper,
		Cataloger:     cataloger,
		Analyzer:      analyzer,
		Insighter:     insighter,
		CronJobs: handler.CronJobServices{
			TrendAnalysisSync: trendAnalysisSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newStatsCache usa o Redis quando habilitado; sem Redis as estatísticas são sempre recalculadas
func newStatsCache(ctx context.Context, cfg *config.Config) cache.StatsCache {
	if !cfg.Redis.Enabled {
		logrus.Info("Cache de estatísticas desabilitado")
		return cache.NewNoopStatsCache()
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de estatísticas")
		return cache.NewNoopStatsCache()
	}

	logrus.Info("Cache de estatísticas no Redis habilitado")
	return cache.NewRedisStatsCache(client, time.Duration(cfg.Redis.StatsTTLSeconds)*time.Second)
}
