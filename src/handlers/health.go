package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/database"
	"github.com/debreiyesus/church-server/src/services"
)

var startTime = time.Now()

// HealthHandler handles health check requests
type HealthHandler struct {
	db         *database.Database
	smsService *services.SMSService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database, smsService *services.SMSService) *HealthHandler {
	return &HealthHandler{
		db:         db,
		smsService: smsService,
	}
}

// HandleHealth returns health status with DB check and feature flags
func (hh *HealthHandler) HandleHealth(c *gin.Context) {
	start := time.Now()
	err := hh.db.Health(c.Request.Context())
	dbLatency := time.Since(start)

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	sms := "disabled"
	if hh.smsService.Configured() {
		sms = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"database":   "connected",
		"sms":        sms,
		"db_latency": dbLatency.String(),
		"uptime":     time.Since(startTime).String(),
	})
}

// HandleReady returns readiness status (for load balancers)
func (hh *HealthHandler) HandleReady(c *gin.Context) {
	err := hh.db.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ready": false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ready": true,
	})
}
