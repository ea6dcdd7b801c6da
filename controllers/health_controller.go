package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController serves the liveness probe and the root service
// descriptor.
type HealthController struct {
	startedAt time.Time
}

// NewHealthController creates a new HealthController.
func NewHealthController() *HealthController {
	return &HealthController{startedAt: time.Now()}
}

// Health handles GET /health.
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Service is healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(hc.startedAt).String(),
	})
}

// Root handles GET / with an endpoint map.
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "store-api",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":   "GET /health",
			"users":    "GET|POST /api/v1/users, GET|PUT|PATCH|DELETE /api/v1/users/:id",
			"products": "GET|POST /api/v1/products, GET|PUT|PATCH|DELETE /api/v1/products/:id",
			"orders":   "GET|POST /api/v1/orders, GET|PUT|PATCH|DELETE /api/v1/orders/:id",
		},
	})
}
