package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spigell/hr-assistant/internal/screens"
)

const metricsNamespace = "hr_assistant"

// Metrics owns the Prometheus registry of the process. It measures HTTP
// traffic and records feature submissions for screens.
type Metrics struct {
	registry *prometheus.Registry

	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec

	submissions *prometheus.CounterVec
	gatewayTime *prometheus.HistogramVec
}

var _ screens.Recorder = (*Metrics)(nil)

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		summaryVec: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		counterVec: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "submissions_total",
				Help:      "Feature submissions by outcome",
			},
			[]string{"feature", "outcome"},
		),
		gatewayTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "gateway_duration_seconds",
				Help:      "Duration of model calls in seconds",
				Buckets:   []float64{0.5, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"feature"},
		),
	}
}

// Build returns the request metrics middleware.
func (m *Metrics) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		duration := time.Since(start).Seconds()

		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		m.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		m.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}

func (m *Metrics) ObserveSubmission(feature, outcome string, elapsed time.Duration) {
	m.submissions.WithLabelValues(feature, outcome).Inc()
	if outcome == screens.OutcomeInvalid {
		return
	}
	m.gatewayTime.WithLabelValues(feature).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
