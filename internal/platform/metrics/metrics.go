package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Outcomes of rate resolution, labelled by strategy (identity, direct, hub_forward, hub_inverse, none)
	RateResolutionsTotal *prometheus.CounterVec

	// Stored rate updates, labelled by pair
	RateUpdatesTotal *prometheus.CounterVec

	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RateResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_rate_resolutions_total",
				Help: "Number of exchange rate resolutions by strategy",
			},
			[]string{"strategy"},
		),
		RateUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_rate_updates_total",
				Help: "Number of stored exchange rate updates",
			},
			[]string{"from", "to"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms, 10ms, 20ms...
			},
			[]string{"method", "route", "status"},
		),
	}
}

// RecordResolution counts one resolution outcome.
func (m *Metrics) RecordResolution(strategy string) {
	if m == nil {
		return
	}
	m.RateResolutionsTotal.WithLabelValues(strategy).Inc()
}

// RecordRateUpdate counts one stored rate update.
func (m *Metrics) RecordRateUpdate(from, to string) {
	if m == nil {
		return
	}
	m.RateUpdatesTotal.WithLabelValues(from, to).Inc()
}

// RecordHTTPRequest observes the latency of a finished request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
