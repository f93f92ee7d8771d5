// Package main provides the echo-api HTTP service.
//
// This service exposes:
//   - An HTML page that sends messages to the echo endpoint
//   - A JSON echo endpoint returning the message with its length and a timestamp
//   - Health checks for liveness/readiness probes
//   - Prometheus metrics
//
// Usage:
//
//	./echo-api
//
// Environment:
//
//	HOST: Bind host (default: 0.0.0.0)
//	PORT: Server port (default: 8000)
//	LOG_LEVEL: zap log level (default: info)
//	GIN_MODE: gin mode (default: release)
//	SHUTDOWN_TIMEOUT: graceful shutdown limit (default: 30s)
//
// A .env file in the working directory is read when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"echo-api/handlers"
	"echo-api/logger"
	"echo-api/middleware"
	"echo-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config, err := bootstrap(".env")
	if err != nil {
		logger.Logger.Fatal("Startup failed", zap.Error(err))
	}
	defer logger.Sync()

	gin.SetMode(config.Mode)

	logger.Logger.Info("Starting echo-api",
		zap.String("addr", config.Addr()),
		zap.String("mode", config.Mode),
	)

	server := &http.Server{
		Addr:    config.Addr(),
		Handler: setupRouter(),
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	GracefulShutdown(server, config)
}

// bootstrap loads the configuration and initializes the logger.
// The logger runs at the default level until the configured one is known,
// so configuration errors still reach the log.
func bootstrap(envFiles ...string) (*services.Config, error) {
	if err := logger.Init(services.DefaultLogLevel); err != nil {
		return nil, fmt.Errorf("logger 초기화 실패: %w", err)
	}

	config, err := services.LoadConfig(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}

	if err := logger.Init(config.LogLevel); err != nil {
		return nil, fmt.Errorf("logger 초기화 실패: %w", err)
	}
	return config, nil
}

// setupRouter builds the route table. The engine is not modified after it returns.
func setupRouter() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(gin.Recovery(), middleware.LoggingMiddleware())

	router.GET("/", handlers.IndexPage)
	router.GET("/health", handlers.HealthCheck)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(router)

	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	return router
}

// setupAPIRoutes configures the /api route group
func setupAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/echo", handlers.Echo)
	}
}

// GracefulShutdown blocks until SIGINT/SIGTERM, then drains the server
func GracefulShutdown(server *http.Server, config *services.Config) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
