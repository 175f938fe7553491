package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/SscSPs/erp_backend/internal/platform/config"
	"github.com/SscSPs/erp_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	rateLimiter *limiter.Limiter,
) {
	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	setupCurrencyRoutes(r, cfg, services, rateLimiter)
}

// setupCurrencyRoutes configures the authenticated, rate limited currency routes
func setupCurrencyRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	handlers := []gin.HandlerFunc{}
	if rateLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(rateLimiter))
	}
	handlers = append(handlers, middleware.AuthMiddleware(cfg.JWTSecret))

	api := r.Group("", handlers...)

	registerCurrencyRoutes(api, services.Currency)
	registerExchangeRateRoutes(api, services.ExchangeRate, services.Currency)
}
