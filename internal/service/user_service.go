package service

import (
	"context"
	"fmt"

	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService account management for admins
type UserService struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	permissions *PermissionService
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, permissions *PermissionService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		permissions: permissions,
	}
}

// UserInput create/update payload
type UserInput struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password"`
	IsMember bool     `json:"is_member"`
	Roles    []string `json:"roles"`
}

// List returns a page of users, optionally restricted to a role name
// (e.g. Admin or Member)
func (s *UserService) List(page, limit int, roleName string) ([]*domain.UserResponse, int64, error) {
	users, total, err := s.userRepo.FindAll(page, limit, roleName)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*domain.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, total, nil
}

// Get returns a single account
func (s *UserService) Get(id uint64) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return user.ToResponse(), nil
}

// Roles lists all assignable roles
func (s *UserService) Roles() ([]*domain.Role, error) {
	return s.roleRepo.FindAll()
}

// Create persists a new account
func (s *UserService) Create(input UserInput) (*domain.UserResponse, error) {
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrInvalidInput)
	}
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, common.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roles, err := s.roleRepo.FindByNames(input.Roles)
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}

	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		IsMember: input.IsMember,
		Roles:    roles,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user.ToResponse(), nil
}

// Update mutates an account; an empty password leaves the current one
func (s *UserService) Update(ctx context.Context, id uint64, input UserInput) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	user.Username = input.Username
	user.Email = input.Email
	user.IsMember = input.IsMember
	if input.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		user.Password = string(hashed)
	}

	if input.Roles != nil {
		roles, rolesErr := s.roleRepo.FindByNames(input.Roles)
		if rolesErr != nil {
			return nil, fmt.Errorf("resolve roles: %w", rolesErr)
		}
		if err := s.userRepo.ReplaceRoles(user, roles); err != nil {
			return nil, fmt.Errorf("replace roles: %w", err)
		}
		user.Roles = roles
		s.permissions.Invalidate(ctx, id)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user.ToResponse(), nil
}

// Delete soft-deletes an account
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return common.ErrUserNotFound
	}
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	s.permissions.Invalidate(ctx, id)
	return nil
}
