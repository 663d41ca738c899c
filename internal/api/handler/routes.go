package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-trends-api/internal/api/handler/router"
	"github.com/vfg2006/ad-trends-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-trends-api/internal/usecases/cataloging"
	"github.com/vfg2006/ad-trends-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-trends-api/internal/usecases/scraping"
	"github.com/vfg2006/ad-trends-api/internal/usecases/trending"
	"github.com/vfg2006/ad-trends-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth()},
		},
	}
}

// Ads registra as rotas do catálogo e da coleta. A coleta valida as credenciais no próprio handler.
func Ads(scraper scraping.Scraper, cataloger cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/scrape",
			Method:  http.MethodPost,
			Handler: ScrapeAds(scraper),
		},
		{
			Path:        "/v1/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(cataloger),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth()},
		},
		{
			Path:        "/v1/ads",
			Method:      http.MethodPost,
			Handler:     CreateAd(cataloger),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth()},
		},
		{
			Path:        "/v1/ads/export",
			Method:      http.MethodGet,
			Handler:     ExportAds(cataloger),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth()},
		},
	}
}

func Trends(analyzer trending.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/trends/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeTrends(analyzer),
		},
		{
			Path:        "/v1/trends",
			Method:      http.MethodGet,
			Handler:     ListTrendingProducts(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(), middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(), middleware.AdminOnly()},
		},
	}
}
