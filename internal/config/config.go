package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	insecureSecretKey  = "your_secret_key"
	minSecretKeyLength = 32
)

// ErrInsecureSecretKey impede a assinatura de tokens com uma chave vazia ou conhecida
var ErrInsecureSecretKey = errors.New("SECRET_KEY ausente ou com valor padrão: defina uma chave própria")

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Meta              Meta              `mapstructure:",squash"`
	OpenAI            OpenAI            `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Redis             Redis             `mapstructure:",squash"`
	Log               Log               `mapstructure:",squash"`
	Cors              Cors              `mapstructure:",squash"`
	Scrape            Scrape            `mapstructure:",squash"`
	TrendAnalysisSync TrendAnalysisSync `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Meta agrupa a configuração da Ads Library (endpoint ads_archive da Graph API)
type Meta struct {
	BaseURL                   string `mapstructure:"meta_base_url"`
	URL                       string `mapstructure:"-"`
	Version                   string `mapstructure:"meta_version"`
	AccessToken               string `mapstructure:"meta_access_token"`
	AppID                     string `mapstructure:"meta_app_id"`
	AppSecret                 string `mapstructure:"meta_app_secret"`
	TokenRefreshHours         int    `mapstructure:"meta_token_refresh_hours"`
	CountryCode               string `mapstructure:"meta_ads_country_code"`
	CountryName               string `mapstructure:"meta_ads_country_name"`
	AdType                    string `mapstructure:"meta_ads_type"`
	Category                  string `mapstructure:"meta_ads_category"`
	PageLimit                 int    `mapstructure:"meta_ads_limit"`
	MaxPages                  int    `mapstructure:"meta_ads_max_pages"`
	TimeoutSeconds            int    `mapstructure:"meta_timeout_seconds"`
	SnapshotEnrichmentEnabled bool   `mapstructure:"meta_snapshot_enrichment_enabled"`
}

type OpenAI struct {
	APIKey         string  `mapstructure:"openai_api_key"`
	BaseURL        string  `mapstructure:"openai_base_url"`
	Model          string  `mapstructure:"openai_model"`
	Temperature    float64 `mapstructure:"openai_temperature"`
	TimeoutSeconds int     `mapstructure:"openai_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTLHours int `mapstructure:"auth_token_ttl_hours"`
}

type Redis struct {
	Enabled         bool   `mapstructure:"redis_enabled"`
	URL             string `mapstructure:"redis_url"`
	StatsTTLSeconds int    `mapstructure:"redis_stats_ttl_seconds"`
}

// Log controla a gravação opcional de logs em arquivo com rotação
type Log struct {
	File       string `mapstructure:"log_file"`
	MaxSizeMB  int    `mapstructure:"log_file_max_size_mb"`
	MaxBackups int    `mapstructure:"log_file_max_backups"`
	MaxAgeDays int    `mapstructure:"log_file_max_age_days"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Scrape struct {
	DefaultLookbackDays int `mapstructure:"scrape_default_lookback_days"`
	MaxLookbackDays     int `mapstructure:"scrape_max_lookback_days"`
}

type TrendAnalysisSync struct {
	CronSchedule        string `mapstructure:"trend_analysis_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"trend_analysis_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"trend_analysis_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"trend_analysis_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_trends?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_TOKEN_REFRESH_HOURS", 23)
	viper.SetDefault("META_ADS_COUNTRY_CODE", "IN")
	viper.SetDefault("META_ADS_COUNTRY_NAME", "India")
	viper.SetDefault("META_ADS_TYPE", "POLITICAL_AND_ISSUE_ADS")
	viper.SetDefault("META_ADS_CATEGORY", "Political/Issue")
	viper.SetDefault("META_ADS_LIMIT", 50)
	viper.SetDefault("META_ADS_MAX_PAGES", 1)
	viper.SetDefault("META_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_SNAPSHOT_ENRICHMENT_ENABLED", false)

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 120)

	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_STATS_TTL_SECONDS", 300)

	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_FILE_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_FILE_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_FILE_MAX_AGE_DAYS", 14)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:8080")

	viper.SetDefault("SCRAPE_DEFAULT_LOOKBACK_DAYS", 30)
	viper.SetDefault("SCRAPE_MAX_LOOKBACK_DAYS", 365)

	// Reanálise periódica de tendências para todos os donos com anúncios
	viper.SetDefault("TREND_ANALYSIS_SYNC_CRON", "0 6 * * *")        // Todos os dias às 6h da manhã
	viper.SetDefault("TREND_ANALYSIS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("TREND_ANALYSIS_SYNC_MAX_CONCURRENT_JOBS", 2)   // 2 jobs concorrentes
	viper.SetDefault("TREND_ANALYSIS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := ValidateSecretKey(config.SecretKey); err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.Meta.AccessToken == "" {
		logrus.Warn("META_ACCESS_TOKEN não configurado: a coleta de anúncios vai falhar até que seja definido")
	}

	if config.OpenAI.APIKey == "" {
		logrus.Warn("OPENAI_API_KEY não configurada: a análise de tendências vai falhar até que seja definida")
	}

	return config, nil
}

// ValidateSecretKey recusa chaves vazias, o placeholder de exemplo e chaves com menos de 32 caracteres
func ValidateSecretKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" || key == insecureSecretKey || len(key) < minSecretKeyLength {
		return ErrInsecureSecretKey
	}
	return nil
}

// MetaTimeout retorna o timeout das chamadas à Graph API
func (c *Config) MetaTimeout() time.Duration {
	return time.Duration(c.Meta.TimeoutSeconds) * time.Second
}

// OpenAITimeout retorna o timeout das chamadas de chat completion
func (c *Config) OpenAITimeout() time.Duration {
	return time.Duration(c.OpenAI.TimeoutSeconds) * time.Second
}

func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
