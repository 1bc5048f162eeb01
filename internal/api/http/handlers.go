// Package http provides the HTTP handlers for the numerics API.
package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/calcware/numerics/internal/infrastructure/monitoring"
	"github.com/calcware/numerics/internal/service"
	"github.com/calcware/numerics/internal/types"
)

const serviceVersion = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Numerics Service",
		"version": serviceVersion,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceID := req.ToolID
	if idx := strings.Index(req.ToolID, "."); idx > 0 {
		serviceID = req.ToolID[:idx]
	}

	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, nil)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError(serviceID, req.ToolID)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
		h.metrics.RecordToolError(serviceID, req.ToolID)
	}

	c.JSON(http.StatusOK, result)
}
