package repository

import (
	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
)

// RoleRepository role and permission data access
type RoleRepository interface {
	FindAll() ([]*domain.Role, error)
	FindByName(name string) (*domain.Role, error)
	FindByNames(names []string) ([]domain.Role, error)
	Count() (int64, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindAll() ([]*domain.Role, error) {
	var roles []*domain.Role
	err := r.db.Preload("Permissions").Order("id").Find(&roles).Error
	return roles, err
}

func (r *roleRepository) FindByName(name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByNames(names []string) ([]domain.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var roles []domain.Role
	err := r.db.Where("name IN ?", names).Find(&roles).Error
	return roles, err
}

func (r *roleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Role{}).Count(&count).Error
	return count, err
}
