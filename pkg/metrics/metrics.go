// Package metrics concentra os coletores Prometheus da aplicação
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceMeta     = "meta"
	SourceFallback = "fallback"
	SourceError    = "error"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// Total HTTP requests partitioned by method, route, and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Execuções da coleta por origem dos dados gravados
	ScrapeRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_scrape_runs_total",
			Help: "Total de execuções da coleta de anúncios por origem",
		},
		[]string{"source"},
	)

	ScrapedAdsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_scrape_inserted_ads_total",
			Help: "Total de anúncios gravados pela coleta por origem",
		},
		[]string{"source"},
	)

	TrendAnalysisRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trend_analysis_runs_total",
			Help: "Total de análises de tendência por status",
		},
		[]string{"status"},
	)

	TrendAnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trend_analysis_duration_seconds",
			Help:    "Duração das análises de tendência",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80, 160},
		},
	)
)

// ObserveScrape registra o resultado de uma execução da coleta
func ObserveScrape(source string, inserted int64) {
	ScrapeRunsTotal.WithLabelValues(source).Inc()
	if inserted > 0 {
		ScrapedAdsTotal.WithLabelValues(source).Add(float64(inserted))
	}
}

// ObserveTrendAnalysis registra o resultado e a duração de uma análise
func ObserveTrendAnalysis(status string, seconds float64) {
	TrendAnalysisRunsTotal.WithLabelValues(status).Inc()
	TrendAnalysisDuration.Observe(seconds)
}
