package service

import (
	"context"

	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/repository"
	"github.com/sekawan/membership-backend/pkg/cache"
	"github.com/sekawan/membership-backend/pkg/logger"
)

const dashboardCacheKey = cache.PrefixDashboard + "stats"

// DashboardStats aggregate counts shown on the admin dashboard
type DashboardStats struct {
	Admins   int64 `json:"admins"`
	Members  int64 `json:"members"`
	Roles    int64 `json:"roles"`
	Articles int64 `json:"articles"`
}

// DashboardService aggregates entity counts, cached with a short TTL
type DashboardService struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	articleRepo repository.ArticleRepository
	cache       cache.Service
}

// NewDashboardService creates a new DashboardService. cacheService may be
// nil.
func NewDashboardService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, articleRepo repository.ArticleRepository, cacheService cache.Service) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		articleRepo: articleRepo,
		cache:       cacheService,
	}
}

// Stats returns the dashboard counts
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	admins, err := s.userRepo.CountByRole(domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	members, err := s.userRepo.CountByRole(domain.RoleMember)
	if err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.Count()
	if err != nil {
		return nil, err
	}
	articles, err := s.articleRepo.Count()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Admins:   admins,
		Members:  members,
		Roles:    roles,
		Articles: articles,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, stats, cache.TTLDashboard); err != nil {
			logger.Get().Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return stats, nil
}
