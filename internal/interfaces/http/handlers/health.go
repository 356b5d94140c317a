// internal/interfaces/http/handlers/health.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
)

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Health() error
}

// HealthHandler handles liveness and readiness endpoints
type HealthHandler struct {
	config    *config.Config
	checks    map[string]HealthChecker
	startedAt time.Time
}

// NewHealthHandler creates a health handler. Nil checkers are skipped.
func NewHealthHandler(cfg *config.Config, checks map[string]HealthChecker) *HealthHandler {
	active := make(map[string]HealthChecker, len(checks))
	for name, check := range checks {
		if check != nil {
			active[name] = check
		}
	}
	return &HealthHandler{
		config:    cfg,
		checks:    active,
		startedAt: time.Now(),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	services := make(gin.H, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check.Health(); err != nil {
			services[name] = "unhealthy"
			healthy = false
			continue
		}
		services[name] = "healthy"
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":      state,
		"services":    services,
		"timestamp":   time.Now().UTC(),
		"version":     h.config.App.Version,
		"environment": h.config.App.Environment,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startedAt).String(),
	})
}
