package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/store"
)

// SetupRoutes is the single entry-point that wires up every endpoint.
// Paths follow the public API contract, so they stay flat rather than
// grouped; guarded routes list their middleware chain explicitly.
func SetupRoutes(r *gin.Engine, s *store.Stores) {
	SetupAuthRoutes(r)
	SetupMenuRoutes(r, s)
	SetupCartRoutes(r, s)
	SetupUserRoutes(r, s)
	SetupPaymentRoutes(r, s)

	r.GET("/health", func(c *gin.Context) {
		if err := s.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middleware.MetricsHandler())
}
