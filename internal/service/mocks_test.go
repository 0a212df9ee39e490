package service

import (
	"time"

	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/scope"
	"github.com/stretchr/testify/mock"
)

// --- Mock MemberRepository ---

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) List(q domain.MemberListQuery, vis scope.Visibility) ([]*domain.Member, int64, error) {
	args := m.Called(q, vis)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Member), args.Get(1).(int64), args.Error(2)
}

func (m *mockMemberRepo) ListRetiringThisYear(now time.Time, vis scope.Visibility) ([]*domain.Member, error) {
	args := m.Called(now, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *mockMemberRepo) FindByID(id uint64) (*domain.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *mockMemberRepo) Create(member *domain.Member) error {
	return m.Called(member).Error(0)
}

func (m *mockMemberRepo) Update(member *domain.Member) error {
	return m.Called(member).Error(0)
}

func (m *mockMemberRepo) Delete(id uint64) error {
	return m.Called(id).Error(0)
}

func (m *mockMemberRepo) FindOpenPosition(memberID uint64) (*domain.Position, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(page, limit int, roleName string) ([]*domain.User, int64, error) {
	args := m.Called(page, limit, roleName)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Update(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Delete(id uint64) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) CountByRole(roleName string) (int64, error) {
	args := m.Called(roleName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) PermissionNames(userID uint64) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockUserRepo) ReplaceRoles(user *domain.User, roles []domain.Role) error {
	return m.Called(user, roles).Error(0)
}

// --- Mock RoleRepository ---

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) FindAll() ([]*domain.Role, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Role), args.Error(1)
}

func (m *mockRoleRepo) FindByName(name string) (*domain.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *mockRoleRepo) FindByNames(names []string) ([]domain.Role, error) {
	args := m.Called(names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *mockRoleRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ArticleRepository ---

type mockArticleRepo struct {
	mock.Mock
}

func (m *mockArticleRepo) FindByID(id uint64) (*domain.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticleRepo) FindAll(page, limit int) ([]*domain.Article, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Article), args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleRepo) Create(article *domain.Article) error {
	return m.Called(article).Error(0)
}

func (m *mockArticleRepo) Update(article *domain.Article) error {
	return m.Called(article).Error(0)
}

func (m *mockArticleRepo) Delete(id uint64) error {
	return m.Called(id).Error(0)
}

func (m *mockArticleRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
