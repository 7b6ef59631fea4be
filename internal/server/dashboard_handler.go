package server

import (
	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// DashboardHandler serves the admin overview and analytics.
type DashboardHandler struct {
	analytics *service.AnalyticsService
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(analytics *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// GetOverview returns the headline counters.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	o, err := h.analytics.GetOverview()
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, o)
}

// GetAnalytics returns the full statistics snapshot.
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	a, err := h.analytics.GetAnalytics(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, a)
}
