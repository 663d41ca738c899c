package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/ad-trends-api/pkg/metrics"
)

// Metrics registra contadores Prometheus da rota. O template (ex.: /v1/cron/:type/run)
// é usado como label para manter a cardinalidade baixa.
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPInFlight.Inc()
			defer metrics.HTTPInFlight.Dec()

			srw := newStatusResponseWriter(w)
			next.ServeHTTP(srw, r)

			labels := prometheus.Labels{
				"method": r.Method,
				"route":  route,
				"status": strconv.Itoa(srw.statusCode),
			}
			metrics.HTTPRequestsTotal.With(labels).Inc()
			metrics.HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		})
	}
}
