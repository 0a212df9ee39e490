package service

import (
	"context"
	"strconv"

	"github.com/sekawan/membership-backend/internal/repository"
	"github.com/sekawan/membership-backend/pkg/cache"
	"github.com/sekawan/membership-backend/pkg/logger"
)

// PermissionService resolves the named permissions a user holds through its
// roles. Resolution is cached in Redis; without Redis it always hits the
// database.
type PermissionService struct {
	userRepo repository.UserRepository
	cache    cache.Service
}

// NewPermissionService creates a new PermissionService. cacheService may be
// nil.
func NewPermissionService(userRepo repository.UserRepository, cacheService cache.Service) *PermissionService {
	return &PermissionService{
		userRepo: userRepo,
		cache:    cacheService,
	}
}

// Has reports whether the user holds the named permission
func (s *PermissionService) Has(ctx context.Context, userID uint64, permission string) (bool, error) {
	perms, err := s.permissions(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p == permission {
			return true, nil
		}
	}
	return false, nil
}

// Permissions returns all permission names granted to the user
func (s *PermissionService) Permissions(ctx context.Context, userID uint64) ([]string, error) {
	return s.permissions(ctx, userID)
}

// Invalidate drops the cached permission set, e.g. after a role change
func (s *PermissionService) Invalidate(ctx context.Context, userID uint64) {
	if s.cache == nil {
		return
	}
	key := strconv.FormatUint(userID, 10)
	if err := s.cache.InvalidatePermissions(ctx, key); err != nil {
		logger.Get().Warn().Err(err).Uint64("user_id", userID).Msg("permission cache invalidation failed")
	}
}

func (s *PermissionService) permissions(ctx context.Context, userID uint64) ([]string, error) {
	key := strconv.FormatUint(userID, 10)

	if s.cache != nil {
		if perms, err := s.cache.GetPermissions(ctx, key); err == nil {
			return perms, nil
		}
	}

	perms, err := s.userRepo.PermissionNames(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPermissions(ctx, key, perms); err != nil {
			logger.Get().Warn().Err(err).Uint64("user_id", userID).Msg("permission cache write failed")
		}
	}
	return perms, nil
}
