package http

import (
	"github.com/gin-gonic/gin"
	"github.com/labelproof/backend/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check and metrics endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		compliance := v1.Group("/compliance")
		{
			compliance.POST("/verify", handler.Verify)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/cache/invalidate", handler.InvalidateCaches)
			admin.GET("/cache/stats", handler.CacheStats)
		}
	}

	return router
}
