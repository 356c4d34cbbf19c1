package prometheus

import (
	"net/http"
	"time"

	"github.com/aescanero/demoapp/internal/application/uptime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute labels requests that hit no registered route.
const UnmatchedRoute = "unmatched"

// Collector records HTTP request metrics on its own registry
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	inFlight     prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector. The uptime gauge
// is read from clock at scrape time.
func NewCollector(clock *uptime.Clock) *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	if clock != nil {
		factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "demoapp_uptime_seconds",
				Help: "Seconds elapsed since process start",
			},
			clock.Seconds,
		)
	}

	return &Collector{
		registry: registry,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demoapp_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "demoapp_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "demoapp_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
	}
}

// IncInFlight marks a request as started
func (c *Collector) IncInFlight() {
	c.inFlight.Inc()
}

// DecInFlight marks a request as finished
func (c *Collector) DecInFlight() {
	c.inFlight.Dec()
}

// RecordRequest records a completed request. An empty route is recorded as
// UnmatchedRoute so 404 paths do not explode label cardinality.
func (c *Collector) RecordRequest(method, route, status string, duration time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
