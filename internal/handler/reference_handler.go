package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/service"
)

// ReferenceHandler serves the option lists for form dropdowns
type ReferenceHandler struct {
	service *service.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(service *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// BranchOptions handles GET /api/v1/branches/options
func (h *ReferenceHandler) BranchOptions(c *gin.Context) {
	opts, err := h.service.BranchOptions(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list branches", err)
		return
	}
	common.SuccessResponse(c, opts)
}

// RegionOptions handles GET /api/v1/regions/options
func (h *ReferenceHandler) RegionOptions(c *gin.Context) {
	opts, err := h.service.RegionOptions(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list regions", err)
		return
	}
	common.SuccessResponse(c, opts)
}

// RetirementAgeOptions handles GET /api/v1/retirement-ages/options
func (h *ReferenceHandler) RetirementAgeOptions(c *gin.Context) {
	opts, err := h.service.RetirementAgeOptions(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list retirement ages", err)
		return
	}
	common.SuccessResponse(c, opts)
}
