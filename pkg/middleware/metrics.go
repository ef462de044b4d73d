package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsMiddleware conta as requisições HTTP por método e status
func MetricsMiddleware(reg prometheus.Registerer) func(http.Handler) http.Handler {
	factory := promauto.With(reg)

	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Name: "demo_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "status"})
	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "demo_http_request_duration_seconds",
		Help:    "HTTP request duration by method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			started := time.Now()

			next.ServeHTTP(lrw, r)

			requests.WithLabelValues(r.Method, strconv.Itoa(lrw.statusCode)).Inc()
			duration.WithLabelValues(r.Method).Observe(time.Since(started).Seconds())
		})
	}
}
