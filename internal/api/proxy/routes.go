package proxy

import (
	"fmt"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StaticURLPrefix is the URL subtree served straight from the shared
// static volume. Collected assets live under static/ and uploads under
// media/ beneath it.
const StaticURLPrefix = "/static"

// SetupRoutes configures the edge surface: static assets from disk, the
// Prometheus endpoint and a catch-all relay to the application server.
func SetupRoutes(r *gin.Engine, cfg *config.ProxyConfig, logger logger.Logger) error {
	forwardHandler, err := NewForwardHandler(cfg.Upstream(), cfg.MaxBodyMB, logger)
	if err != nil {
		return fmt.Errorf("failed to create forward handler: %w", err)
	}

	metrics := newEdgeMetrics()
	r.Use(metrics.middleware())

	// Static Routes
	r.Static(StaticURLPrefix, cfg.StaticDir)

	// Metrics Routes
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Application Routes
	r.NoRoute(forwardHandler.Forward)

	return nil
}
