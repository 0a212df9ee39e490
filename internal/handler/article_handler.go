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

// ArticleHandler handles article requests
type ArticleHandler struct {
	service *service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(service *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, perPage = scope.NormalizePage(page, perPage)

	articles, total, err := h.service.List(page, perPage)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list articles", err)
		return
	}

	common.SuccessWithMeta(c, articles, common.NewMeta(page, perPage, total))
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid article ID", err)
		return
	}

	article, err := h.service.Get(id)
	if errors.Is(err, common.ErrArticleNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Article not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to get article", err)
		return
	}

	common.SuccessResponse(c, article)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input service.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	article, err := h.service.Create(input)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create article", err)
		return
	}

	common.CreatedResponse(c, article)
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid article ID", err)
		return
	}

	var input service.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	article, err := h.service.Update(id, input)
	if errors.Is(err, common.ErrArticleNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Article not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update article", err)
		return
	}

	common.SuccessResponse(c, article)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid article ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrArticleNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Article not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete article", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Article deleted"})
}
