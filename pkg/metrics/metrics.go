package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "outfitcast"

// Metrics holds the Prometheus collectors for forecasts and HTTP traffic.
type Metrics struct {
	registry *prometheus.Registry

	ForecastsTotal   *prometheus.CounterVec // labels: condition, band
	ForecastFailures *prometheus.CounterVec // labels: code
	Confidence       prometheus.Histogram
	RequestDuration  *prometheus.HistogramVec // labels: method, route, status
}

// New creates the collectors on a dedicated registry, so repeated construction in tests
// never collides with the default registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ForecastsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecasts_total",
			Help:      "Forecasts generated by weather condition and outfit band.",
		}, []string{"condition", "band"}),
		ForecastFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_failures_total",
			Help:      "Forecast requests rejected or aborted, by error code.",
		}, []string{"code"}),
		Confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_confidence_pct",
			Help:      "Confidence score of returned outfit recommendations.",
			Buckets:   []float64{40, 50, 60, 70, 80, 90, 100},
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ForecastsTotal,
		m.ForecastFailures,
		m.Confidence,
		m.RequestDuration,
	)
	return m
}

// ObserveForecast records a successfully generated forecast.
func (m *Metrics) ObserveForecast(condition, band string, confidencePct int) {
	m.ForecastsTotal.WithLabelValues(condition, band).Inc()
	m.Confidence.Observe(float64(confidencePct))
}

// ObserveFailure records a forecast that ended in an error.
func (m *Metrics) ObserveFailure(code string) {
	m.ForecastFailures.WithLabelValues(code).Inc()
}

// ObserveRequest records the latency of a served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
