package repository

import (
	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository login account data access
type UserRepository interface {
	FindByID(id uint64) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindAll(page, limit int, roleName string) ([]*domain.User, int64, error)
	Create(user *domain.User) error
	Update(user *domain.User) error
	Delete(id uint64) error
	CountByRole(roleName string) (int64, error)
	PermissionNames(userID uint64) ([]string, error)
	ReplaceRoles(user *domain.User, roles []domain.Role) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint64) (*domain.User, error) {
	var user domain.User
	err := r.db.
		Preload("Roles").
		Preload("Member.Branch").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll lists users, optionally restricted to those holding a named role
func (r *userRepository) FindAll(page, limit int, roleName string) ([]*domain.User, int64, error) {
	query := r.db.Model(&domain.User{})
	if roleName != "" {
		query = query.Where(
			`EXISTS (SELECT 1 FROM user_roles ur JOIN roles ro ON ro.id = ur.role_id
				WHERE ur.user_id = users.id AND ro.name = ?)`,
			roleName,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var users []*domain.User
	err := query.Preload("Roles").Order("id").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.User{}, id).Error
}

func (r *userRepository) CountByRole(roleName string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where(
			`EXISTS (SELECT 1 FROM user_roles ur JOIN roles ro ON ro.id = ur.role_id
				WHERE ur.user_id = users.id AND ro.name = ?)`,
			roleName,
		).
		Count(&count).Error
	return count, err
}

// PermissionNames resolves the distinct permission names granted to the
// user through its roles
func (r *userRepository) PermissionNames(userID uint64) ([]string, error) {
	var names []string
	err := r.db.Table("permissions").
		Distinct("permissions.name").
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Joins("JOIN user_roles ur ON ur.role_id = rp.role_id").
		Where("ur.user_id = ?", userID).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	return names, err
}

// ReplaceRoles swaps the user's role assignments
func (r *userRepository) ReplaceRoles(user *domain.User, roles []domain.Role) error {
	return r.db.Model(user).Association("Roles").Replace(roles)
}
