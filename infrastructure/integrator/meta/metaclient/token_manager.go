package metaclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/internal/config"
)

const (
	defaultRefreshInterval = 23 * time.Hour
	retryRefreshInterval   = time.Hour
)

// TokenManager mantém um token de longa duração da Graph API e o renova periodicamente
type TokenManager struct {
	cfg       *config.Config
	client    *MetaClient
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewTokenManager cria o gerenciador e o associa ao cliente, que passa a usar o token renovado
func NewTokenManager(cfg *config.Config, client *MetaClient) *TokenManager {
	tm := &TokenManager{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
	client.Tokens = tm

	return tm
}

// Enabled indica se há credenciais do app para trocar tokens
func (tm *TokenManager) Enabled() bool {
	return tm.cfg.Meta.AppID != "" && tm.cfg.Meta.AppSecret != ""
}

// Token retorna o token renovado ou vazio enquanto nenhuma troca foi feita
func (tm *TokenManager) Token() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return tm.token
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return tm.expiresAt
}

// Refresh troca o token atual por um novo token de longa duração
func (tm *TokenManager) Refresh(ctx context.Context) error {
	if !tm.Enabled() {
		return fmt.Errorf("META_APP_ID e META_APP_SECRET são obrigatórios para renovar o token")
	}

	current := tm.Token()
	if current == "" {
		current = tm.cfg.Meta.AccessToken
	}

	resp, err := tm.client.ExchangeToken(ctx, current)
	if err != nil {
		return err
	}

	tm.mu.Lock()
	tm.token = resp.AccessToken
	tm.expiresAt = CalculateTokenExpiration(resp.ExpiresIn, tm.now())
	tm.mu.Unlock()

	logrus.WithField("expires_at", tm.ExpiresAt().Format(time.RFC3339)).Info("Token da Graph API renovado")

	return nil
}

// StartAutoRefresh renova o token imediatamente e depois a cada intervalo, até o contexto ser cancelado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	if !tm.Enabled() {
		logrus.Info("Renovação de token da Graph API desabilitada: META_APP_ID/META_APP_SECRET ausentes")
		return
	}

	refreshInterval := defaultRefreshInterval
	if tm.cfg.Meta.TokenRefreshHours > 0 {
		refreshInterval = time.Duration(tm.cfg.Meta.TokenRefreshHours) * time.Hour
	}

	next := refreshInterval
	if err := tm.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao obter token de longa duração, usando META_ACCESS_TOKEN")
		next = retryRefreshInterval
	}

	ticker := time.NewTicker(next)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.Refresh(ctx); err != nil {
				logrus.WithError(err).Error("Erro na renovação periódica do token")
				ticker.Reset(retryRefreshInterval)
				continue
			}
			ticker.Reset(refreshInterval)
		case <-ctx.Done():
			logrus.Info("Encerrando renovação periódica do token")
			return
		}
	}
}
