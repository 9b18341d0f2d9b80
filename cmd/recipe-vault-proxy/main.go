// cmd/recipe-vault-proxy/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Renz00/recipe-vault/internal/api/proxy"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration. An unset CONFIG_PATH means environment
	// variables and defaults only.
	configPath := os.Getenv("CONFIG_PATH")

	proxyConfig, err := config.InitializeProxyConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&proxyConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(proxyConfig, log)
}

// startServerWithGracefulShutdown starts the edge server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.ProxyConfig, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Setup edge routes
	if err := proxy.SetupRoutes(r, cfg, log); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}
	log.Info("Forwarding application traffic to ", cfg.Upstream())

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.ListenPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.ListenPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
