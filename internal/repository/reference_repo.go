package repository

import (
	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
)

// ReferenceRepository read access to the lookup tables backing filter
// dropdowns
type ReferenceRepository interface {
	ListBranches() ([]*domain.Branch, error)
	ListRegions() ([]*domain.Region, error)
	ListRetirementAges() ([]*domain.RetirementAge, error)
}

type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListBranches() ([]*domain.Branch, error) {
	var branches []*domain.Branch
	err := r.db.Order("name").Find(&branches).Error
	return branches, err
}

func (r *referenceRepository) ListRegions() ([]*domain.Region, error) {
	var regions []*domain.Region
	err := r.db.Order("name").Find(&regions).Error
	return regions, err
}

func (r *referenceRepository) ListRetirementAges() ([]*domain.RetirementAge, error) {
	var ages []*domain.RetirementAge
	err := r.db.Order("age").Find(&ages).Error
	return ages, err
}
