package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Anzahl der HTTP-Requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Dauer der HTTP-Requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	webhookRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kassa_webhook_requests_total",
			Help: "Anzahl der Kassen-Webhook-Aufrufe nach HTTP-Status",
		},
		[]string{"status"},
	)

	salesRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kassa_sales_recorded_total",
			Help: "Anzahl der verbuchten Kassenverkäufe",
		},
	)
)

// InitMetrics registriert alle Collector bei der Default-Registry.
func InitMetrics() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, webhookRequestsTotal, salesRecordedTotal)
}

// PrometheusMiddleware zählt Requests und misst ihre Dauer je Route.
func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		path := c.Route().Path
		if path == "" {
			path = "undefined"
		}

		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		httpRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
		return err
	}
}
