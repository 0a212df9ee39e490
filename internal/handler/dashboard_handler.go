package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/service"
)

// DashboardHandler serves the dashboard aggregate counts
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/v1/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}
	common.SuccessResponse(c, stats)
}
