package service

import (
	"fmt"

	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/repository"
)

// ArticleService article CRUD
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// ArticleInput create/update payload
type ArticleInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// List returns a page of articles
func (s *ArticleService) List(page, limit int) ([]*domain.Article, int64, error) {
	return s.articleRepo.FindAll(page, limit)
}

// Get returns a single article
func (s *ArticleService) Get(id uint64) (*domain.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrArticleNotFound
	}
	return article, nil
}

// Create persists a new article
func (s *ArticleService) Create(input ArticleInput) (*domain.Article, error) {
	article := &domain.Article{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// Update mutates an existing article
func (s *ArticleService) Update(id uint64, input ArticleInput) (*domain.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrArticleNotFound
	}

	article.Title = input.Title
	article.Description = input.Description
	article.Content = input.Content

	if err := s.articleRepo.Update(article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete soft-deletes an article
func (s *ArticleService) Delete(id uint64) error {
	if _, err := s.articleRepo.FindByID(id); err != nil {
		return common.ErrArticleNotFound
	}
	return s.articleRepo.Delete(id)
}
