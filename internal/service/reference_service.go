package service

import (
	"context"

	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/repository"
	"github.com/sekawan/membership-backend/pkg/cache"
	"github.com/sekawan/membership-backend/pkg/logger"
)

// ReferenceService serves the option lists backing form dropdowns. These
// change rarely, so they are cached.
type ReferenceService struct {
	referenceRepo repository.ReferenceRepository
	cache         cache.Service
}

// NewReferenceService creates a new ReferenceService. cacheService may be
// nil.
func NewReferenceService(referenceRepo repository.ReferenceRepository, cacheService cache.Service) *ReferenceService {
	return &ReferenceService{
		referenceRepo: referenceRepo,
		cache:         cacheService,
	}
}

// BranchOptions lists branches as value/label pairs
func (s *ReferenceService) BranchOptions(ctx context.Context) ([]domain.Option, error) {
	return s.options(ctx, "branches", func() ([]domain.Option, error) {
		branches, err := s.referenceRepo.ListBranches()
		if err != nil {
			return nil, err
		}
		opts := make([]domain.Option, len(branches))
		for i, b := range branches {
			opts[i] = b.ToOption()
		}
		return opts, nil
	})
}

// RegionOptions lists regions as value/label pairs
func (s *ReferenceService) RegionOptions(ctx context.Context) ([]domain.Option, error) {
	return s.options(ctx, "regions", func() ([]domain.Option, error) {
		regions, err := s.referenceRepo.ListRegions()
		if err != nil {
			return nil, err
		}
		opts := make([]domain.Option, len(regions))
		for i, r := range regions {
			opts[i] = r.ToOption()
		}
		return opts, nil
	})
}

// RetirementAgeOptions lists retirement age categories as value/label pairs
func (s *ReferenceService) RetirementAgeOptions(ctx context.Context) ([]domain.Option, error) {
	return s.options(ctx, "retirement_ages", func() ([]domain.Option, error) {
		ages, err := s.referenceRepo.ListRetirementAges()
		if err != nil {
			return nil, err
		}
		opts := make([]domain.Option, len(ages))
		for i, a := range ages {
			opts[i] = a.ToOption()
		}
		return opts, nil
	})
}

func (s *ReferenceService) options(ctx context.Context, name string, load func() ([]domain.Option, error)) ([]domain.Option, error) {
	key := cache.PrefixOptions + name

	if s.cache != nil {
		var cached []domain.Option
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	opts, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, opts, cache.TTLOptions); err != nil {
			logger.Get().Warn().Err(err).Str("options", name).Msg("options cache write failed")
		}
	}
	return opts, nil
}
