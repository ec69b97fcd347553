package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/services"
)

// DashboardHandler serves the admin dashboard summary
type DashboardHandler struct {
	statsService *services.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// HandleStats handles GET /api/dashboard/stats
func (h *DashboardHandler) HandleStats(c *gin.Context) {
	dashboard, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
