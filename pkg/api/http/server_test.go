package http

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	metrics "github.com/aescanero/demoapp/pkg/adapters/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestServer_ListenerDisabled(t *testing.T) {
	s := NewServer(&Config{Port: 3000, StartListener: false})

	assert.False(t, s.ListenerEnabled())
	assert.Equal(t, ":3000", s.Addr())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start blocked with the listener disabled")
	}

	assert.NoError(t, s.Shutdown(context.Background()))

	// Routes still answer through in-process injection.
	rec := serve(t, s.Handler(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_StartAndShutdown(t *testing.T) {
	s := NewServer(&Config{Port: 0, StartListener: true})
	require.True(t, s.ListenerEnabled())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestRequestID_Generated(t *testing.T) {
	s := newTestServer(t, nil)

	rec := serve(t, s.Handler(), http.MethodGet, "/")
	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")

	rec := serveRequest(s.Handler(), req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewServer(&Config{Port: 3000, Logger: zap.New(core)})

	serve(t, s.Handler(), http.MethodGet, "/unknown?x=1")

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/unknown", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRequestMetrics(t *testing.T) {
	collector := metrics.NewCollector(nil)
	s := NewServer(&Config{Port: 3000, Metrics: collector})

	serve(t, s.Handler(), http.MethodGet, "/")
	serve(t, s.Handler(), http.MethodGet, "/health")
	serve(t, s.Handler(), http.MethodGet, "/health")
	serve(t, s.Handler(), http.MethodGet, "/nope")

	expected := `
# HELP demoapp_http_requests_total Total number of HTTP requests
# TYPE demoapp_http_requests_total counter
demoapp_http_requests_total{method="GET",route="/",status="200"} 1
demoapp_http_requests_total{method="GET",route="/health",status="200"} 2
demoapp_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(
		collector.Registry(),
		strings.NewReader(expected),
		"demoapp_http_requests_total",
	))
}
