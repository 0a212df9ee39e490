package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/middleware"
	"github.com/sekawan/membership-backend/internal/scope"
	"github.com/sekawan/membership-backend/internal/service"
)

// MemberHandler handles member registry requests
type MemberHandler struct {
	service *service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(service *service.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	var q domain.MemberListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	if err := c.ShouldBindQuery(&q.Filters); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	q.Page, q.PerPage = scope.NormalizePage(q.Page, q.PerPage)

	members, total, err := h.service.List(q, middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list members", err)
		return
	}

	common.SuccessWithMeta(c, members, common.NewMeta(q.Page, q.PerPage, total))
}

// Retiring handles GET /api/v1/members/retiring
func (h *MemberHandler) Retiring(c *gin.Context) {
	members, err := h.service.ListRetiringThisYear(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list retiring members", err)
		return
	}
	common.SuccessResponse(c, members)
}

// Get handles GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member ID", err)
		return
	}

	member, err := h.service.Get(id)
	if errors.Is(err, common.ErrMemberNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Member not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to get member", err)
		return
	}

	common.SuccessResponse(c, member)
}

// Create handles POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var input service.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	member, err := h.service.Create(input)
	if errors.Is(err, common.ErrInvalidInput) {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member data", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create member", err)
		return
	}

	common.CreatedResponse(c, member)
}

// Update handles PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member ID", err)
		return
	}

	var input service.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	member, err := h.service.Update(id, input)
	if errors.Is(err, common.ErrMemberNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Member not found", err)
		return
	}
	if errors.Is(err, common.ErrInvalidInput) {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member data", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update member", err)
		return
	}

	common.SuccessResponse(c, member)
}

// Delete handles DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrMemberNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Member not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete member", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Member deleted"})
}

func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
