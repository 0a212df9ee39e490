package repository

import (
	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
)

// ArticleRepository article data access
type ArticleRepository interface {
	FindByID(id uint64) (*domain.Article, error)
	FindAll(page, limit int) ([]*domain.Article, int64, error)
	Create(article *domain.Article) error
	Update(article *domain.Article) error
	Delete(id uint64) error
	Count() (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) FindByID(id uint64) (*domain.Article, error) {
	var article domain.Article
	err := r.db.Where("id = ?", id).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindAll(page, limit int) ([]*domain.Article, int64, error) {
	query := r.db.Model(&domain.Article{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var articles []*domain.Article
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) Create(article *domain.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) Update(article *domain.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Article{}, id).Error
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Article{}).Count(&count).Error
	return count, err
}
