package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aescanero/demoapp/internal/application/uptime"
	"github.com/aescanero/demoapp/internal/config"
	"github.com/aescanero/demoapp/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/demoapp/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	startedAt := time.Now()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting demo-app",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("app_env", cfg.AppEnv))

	clock := uptime.NewClock(startedAt)
	metricsCollector := prometheus.NewCollector(clock)

	httpServer := http.NewServer(&http.Config{
		Port:          cfg.Port,
		StartListener: cfg.ListenerEnabled(),
		Clock:         clock,
		Logger:        logger,
		Metrics:       metricsCollector,
	})

	if !httpServer.ListenerEnabled() {
		// Test mode: nothing to serve over a socket.
		_ = httpServer.Start()
		return
	}

	var metricsServer *http.MetricsServer
	if cfg.MetricsEnabled() {
		metricsServer = http.NewMetricsServer(cfg.MetricsPort, metricsCollector, logger)
	}

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Fatal("metrics server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("Server is running",
		zap.Int("port", cfg.Port),
		zap.Int("metrics_port", cfg.MetricsPort))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
		}
	}

	logger.Info("demo-app shut down complete",
		zap.Duration("uptime", clock.Uptime()))
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
