package service

import (
	"fmt"
	"strconv"

	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/repository"
	"github.com/sekawan/membership-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtManager: jwtManager,
	}
}

// LoginResponse carries the authenticated user and its token pair
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Login authenticates a user by username and password
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

// Register creates a new account with the Member role and logs it in
func (s *AuthService) Register(username, email, password string) (*LoginResponse, error) {
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, common.ErrUserAlreadyExists
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, common.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if memberRole, roleErr := s.roleRepo.FindByName(domain.RoleMember); roleErr == nil {
		user.Roles = []domain.Role{*memberRole}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.tokenResponse(user)
}

// RefreshToken validates a refresh token and issues a new token pair
func (s *AuthService) RefreshToken(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	return s.tokenResponse(user)
}

// GetCurrentUser returns the user for the given ID
func (s *AuthService) GetCurrentUser(userID uint64) (*domain.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) tokenResponse(user *domain.User) (*LoginResponse, error) {
	userID := strconv.FormatUint(user.ID, 10)
	accessToken, err := s.jwtManager.GenerateAccessToken(userID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
