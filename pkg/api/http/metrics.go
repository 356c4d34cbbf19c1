package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	metrics "github.com/aescanero/demoapp/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MetricsServer serves /metrics on a port separate from the public API
type MetricsServer struct {
	router *gin.Engine
	server *http.Server
	logger *zap.Logger
}

// NewMetricsServer creates a metrics server for collector
func NewMetricsServer(port int, collector *metrics.Collector, logger *zap.Logger) *MetricsServer {
	gin.SetMode(gin.ReleaseMode)

	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	return &MetricsServer{
		router: router,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Handler returns the routed handler
func (m *MetricsServer) Handler() http.Handler {
	return m.router
}

// Start starts the metrics server and blocks until it stops
func (m *MetricsServer) Start() error {
	m.logger.Info("starting metrics server", zap.String("addr", m.server.Addr))

	if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	if err := m.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown metrics server: %w", err)
	}
	return nil
}
