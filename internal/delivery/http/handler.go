package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labelproof/backend/internal/domain"
	"github.com/labelproof/backend/internal/infrastructure/refcache"
	"github.com/labelproof/backend/internal/usecase"
	"go.uber.org/zap"
)

// VerifyRequest is the inbound payload from the analysis pipeline.
type VerifyRequest struct {
	Ingredients     []string               `json:"ingredients" binding:"required"`
	ProductCategory domain.ProductCategory `json:"productCategory" binding:"required"`
	Draft           domain.AIDraft         `json:"draft"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.VerificationService
	caches  *refcache.Registry
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.VerificationService, caches *refcache.Registry, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, caches: caches, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelproof-backend",
		"version": "1.0.0",
	})
}

// Verify runs the ingredient compliance verification for one label analysis.
func (h *Handler) Verify(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "verification service not configured",
		})
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.PostProcess(c.Request.Context(), req.Draft, req.Ingredients, req.ProductCategory)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("verification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// InvalidateCaches forces every reference table to refetch on next read.
func (h *Handler) InvalidateCaches(c *gin.Context) {
	if h.caches == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "cache registry not configured"})
		return
	}

	h.caches.InvalidateAll()
	h.logger.Info("reference caches invalidated")
	c.JSON(http.StatusOK, gin.H{"status": "invalidated"})
}

// CacheStats reports the age, validity and row count of every cached table.
func (h *Handler) CacheStats(c *gin.Context) {
	if h.caches == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "cache registry not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caches": h.caches.Stats()})
}
