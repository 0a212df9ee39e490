package repository

import (
	"errors"
	"time"

	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/scope"
	"gorm.io/gorm"
)

// MemberRepository member data access
type MemberRepository interface {
	List(q domain.MemberListQuery, vis scope.Visibility) ([]*domain.Member, int64, error)
	ListRetiringThisYear(now time.Time, vis scope.Visibility) ([]*domain.Member, error)
	FindByID(id uint64) (*domain.Member, error)
	Create(member *domain.Member) error
	Update(member *domain.Member) error
	Delete(id uint64) error
	FindOpenPosition(memberID uint64) (*domain.Position, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// List composes search, filter and visibility stages, counts the restricted
// set, then applies sort and pagination. Visibility is always applied; the
// stages commute, sort and paging come last so pages are deterministic.
func (r *memberRepository) List(q domain.MemberListQuery, vis scope.Visibility) ([]*domain.Member, int64, error) {
	query := r.db.Model(&domain.Member{})
	query = scope.MemberSearch(q.Keyword)(query)
	query = scope.MemberFilter(q.Filters)(query)
	query = vis.Scope()(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = scope.MemberSort(q.SortKey, q.SortOrder)(query)
	query = scope.Paginate(q.Page, q.PerPage)(query)

	var members []*domain.Member
	err := query.
		Preload("Branch.Region").
		Preload("RetirementAge").
		Preload("Status").
		Preload("Positions").
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// ListRetiringThisYear returns active members reaching retirement in now's
// calendar year, ordered by birth date. Positions are intentionally not
// preloaded here; the open position is fetched on demand.
func (r *memberRepository) ListRetiringThisYear(now time.Time, vis scope.Visibility) ([]*domain.Member, error) {
	query := r.db.Model(&domain.Member{})
	query = scope.MemberActive()(query)
	query = vis.Scope()(query)
	query = scope.MemberWillRetireThisYear(now)(query)

	var members []*domain.Member
	err := query.
		Preload("Branch.Region").
		Preload("RetirementAge").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) FindByID(id uint64) (*domain.Member, error) {
	var member domain.Member
	err := r.db.
		Preload("Branch.Region").
		Preload("RetirementAge").
		Preload("Status").
		Preload("InactiveStatus").
		Preload("Positions").
		Preload("RegularDonation").
		Preload("SpecialDonation").
		Where("id = ?", id).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Create(member *domain.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepository) Update(member *domain.Member) error {
	return r.db.Save(member).Error
}

// Delete soft-deletes the member; the row stays for audit
func (r *memberRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Member{}, id).Error
}

// FindOpenPosition returns the member's position with no end date, or nil
// when there is none. Used when positions were not preloaded.
func (r *memberRepository) FindOpenPosition(memberID uint64) (*domain.Position, error) {
	var position domain.Position
	err := r.db.
		Where("member_id = ? AND end_date IS NULL", memberID).
		Order("id").
		First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}
