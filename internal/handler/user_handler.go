package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/scope"
	"github.com/sekawan/membership-backend/internal/service"
)

// UserHandler handles account management requests
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/v1/users?role=Admin
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, perPage = scope.NormalizePage(page, perPage)
	roleName := c.Query("role")

	users, total, err := h.service.List(page, perPage, roleName)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	common.SuccessWithMeta(c, users, common.NewMeta(page, perPage, total))
}

// Get handles GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	user, err := h.service.Get(id)
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to get user", err)
		return
	}

	common.SuccessResponse(c, user)
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var input service.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.Create(input)
	if errors.Is(err, common.ErrUserAlreadyExists) {
		common.ErrorResponse(c, http.StatusConflict, "Username already taken", err)
		return
	}
	if errors.Is(err, common.ErrInvalidInput) {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	common.CreatedResponse(c, user)
}

// Update handles PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var input service.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, input)
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update user", err)
		return
	}

	common.SuccessResponse(c, user)
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "User deleted"})
}

// Roles handles GET /api/v1/roles
func (h *UserHandler) Roles(c *gin.Context) {
	roles, err := h.service.Roles()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list roles", err)
		return
	}
	common.SuccessResponse(c, roles)
}
