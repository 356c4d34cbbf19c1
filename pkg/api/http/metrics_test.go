package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/aescanero/demoapp/internal/application/uptime"
	metrics "github.com/aescanero/demoapp/pkg/adapters/metrics/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServer_ServesMetrics(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := uptime.NewClockWithSource(start, func() time.Time { return start.Add(5 * time.Second) })
	collector := metrics.NewCollector(clock)

	api := NewServer(&Config{Port: 3000, Clock: clock, Metrics: collector})
	serve(t, api.Handler(), http.MethodGet, "/health")

	m := NewMetricsServer(9100, collector, nil)
	rec := serve(t, m.Handler(), http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `demoapp_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, "demoapp_uptime_seconds 5")
}

func TestMetricsServer_OnlyMetricsRoute(t *testing.T) {
	m := NewMetricsServer(9100, metrics.NewCollector(nil), nil)

	rec := serve(t, m.Handler(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
