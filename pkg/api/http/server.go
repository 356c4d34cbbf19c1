package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aescanero/demoapp/internal/application/uptime"
	metrics "github.com/aescanero/demoapp/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

// Server represents the HTTP API server
type Server struct {
	router        *gin.Engine
	server        *http.Server
	clock         *uptime.Clock
	logger        *zap.Logger
	startListener bool
}

// Config holds HTTP server configuration
type Config struct {
	Port int

	// StartListener false keeps Start from binding a socket; requests can
	// still be served in-process through Handler.
	StartListener bool

	Clock   *uptime.Clock
	Logger  *zap.Logger
	Metrics *metrics.Collector
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = uptime.NewClock(time.Now())
	}

	router := gin.New()
	// Only the exact paths are served; /health/ is a 404, not a redirect.
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		router.Use(requestMetrics(cfg.Metrics))
	}

	s := &Server{
		router:        router,
		clock:         clock,
		logger:        logger,
		startListener: cfg.StartListener,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleGreeting)
	s.router.GET("/health", s.handleHealth)
}

// Handler returns the routed handler for in-process request injection
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenerEnabled reports whether Start binds a socket
func (s *Server) ListenerEnabled() bool {
	return s.startListener
}

// Start starts the HTTP server. It blocks until the server stops, or
// returns nil at once when the listener is disabled.
func (s *Server) Start() error {
	if !s.startListener {
		s.logger.Info("HTTP listener disabled, serving in-process only")
		return nil
	}

	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.startListener {
		return nil
	}

	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
