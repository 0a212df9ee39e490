package service

import (
	"testing"

	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret-key", 15, 60*24*7)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	user := &domain.User{
		ID:       1,
		Username: "andi",
		Email:    "andi@example.com",
		Password: hashPassword(t, "secret123"),
		Roles:    []domain.Role{{Name: domain.RoleAdmin}},
	}
	userRepo.On("FindByUsername", "andi").Return(user, nil)

	resp, err := svc.Login("andi", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "andi", resp.User.Username)
	assert.Contains(t, resp.User.Roles, domain.RoleAdmin)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	userRepo.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	userRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Login("ghost", "whatever")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	user := &domain.User{
		ID:       1,
		Username: "andi",
		Password: hashPassword(t, "secret123"),
	}
	userRepo.On("FindByUsername", "andi").Return(user, nil)

	resp, err := svc.Login("andi", "wrong")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	userRepo.On("FindByUsername", "budi").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", "budi@example.com").Return(nil, gorm.ErrRecordNotFound)
	roleRepo.On("FindByName", domain.RoleMember).Return(&domain.Role{ID: 2, Name: domain.RoleMember}, nil)
	userRepo.On("Create", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.User).ID = 7
	}).Return(nil)

	resp, err := svc.Register("budi", "budi@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "budi", resp.User.Username)
	assert.Contains(t, resp.User.Roles, domain.RoleMember)
	assert.NotEmpty(t, resp.AccessToken)
	userRepo.AssertExpectations(t)
	roleRepo.AssertExpectations(t)
}

func TestRegister_UsernameTaken(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	userRepo.On("FindByUsername", "andi").Return(&domain.User{ID: 1, Username: "andi"}, nil)

	resp, err := svc.Register("andi", "new@example.com", "secret123")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	userRepo.On("FindByUsername", "budi").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", "andi@example.com").Return(&domain.User{ID: 1}, nil)

	resp, err := svc.Register("budi", "andi@example.com", "secret123")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
}

func TestRefreshToken_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	manager := newTestJWTManager()
	svc := NewAuthService(userRepo, roleRepo, manager)

	refreshToken, err := manager.GenerateRefreshToken("1")
	assert.NoError(t, err)

	user := &domain.User{ID: 1, Username: "andi"}
	userRepo.On("FindByID", uint64(1)).Return(user, nil)

	resp, err := svc.RefreshToken(refreshToken)

	assert.NoError(t, err)
	assert.Equal(t, "andi", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken_Invalid(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	svc := NewAuthService(userRepo, roleRepo, newTestJWTManager())

	resp, err := svc.RefreshToken("not-a-token")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
