package cache

//go:generate mockgen -source=stats.go -destination=mocks/stats_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const statsKeyPrefix = "ad-trends:stats:"

// StatsCache guarda as estatísticas do painel por dono. Falhas do cache nunca interrompem a requisição.
type StatsCache interface {
	Get(ctx context.Context, ownerID string) (*domain.DashboardStats, bool)
	Set(ctx context.Context, ownerID string, stats *domain.DashboardStats)
	Invalidate(ctx context.Context, ownerID string)
}

// NewRedisClient conecta ao Redis e valida a conexão com um PING
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("url do redis inválida: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	return client, nil
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	return &redisStatsCache{
		client: client,
		ttl:    ttl,
	}
}

func StatsKey(ownerID string) string {
	return statsKeyPrefix + ownerID
}

func (c *redisStatsCache) Get(ctx context.Context, ownerID string) (*domain.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, StatsKey(ownerID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("cache: erro ao ler estatísticas do redis")
		}
		return nil, false
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logrus.WithError(err).Warn("cache: estatísticas corrompidas no redis, ignorando")
		return nil, false
	}

	return &stats, true
}

func (c *redisStatsCache) Set(ctx context.Context, ownerID string, stats *domain.DashboardStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		logrus.WithError(err).Warn("cache: erro ao serializar estatísticas")
		return
	}

	if err := c.client.Set(ctx, StatsKey(ownerID), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("cache: erro ao gravar estatísticas no redis")
	}
}

func (c *redisStatsCache) Invalidate(ctx context.Context, ownerID string) {
	if err := c.client.Del(ctx, StatsKey(ownerID)).Err(); err != nil {
		logrus.WithError(err).Warn("cache: erro ao invalidar estatísticas no redis")
	}
}

type noopStatsCache struct{}

// NewNoopStatsCache é usado quando o Redis está desabilitado
func NewNoopStatsCache() StatsCache {
	return noopStatsCache{}
}

func (noopStatsCache) Get(context.Context, string) (*domain.DashboardStats, bool) {
	return nil, false
}

func (noopStatsCache) Set(context.Context, string, *domain.DashboardStats) {}

func (noopStatsCache) Invalidate(context.Context, string) {}
