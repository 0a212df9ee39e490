package service

import (
	"fmt"
	"time"

	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/sekawan/membership-backend/internal/repository"
	"github.com/sekawan/membership-backend/internal/scope"
)

const birthDateLayout = "2006-01-02"

// MemberService member listing and CRUD. Every listing resolves the acting
// user's visibility first and passes it to the repository; callers cannot
// bypass it.
type MemberService struct {
	memberRepo     repository.MemberRepository
	userRepo       repository.UserRepository
	storageBaseURL string
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository, userRepo repository.UserRepository, storageBaseURL string) *MemberService {
	return &MemberService{
		memberRepo:     memberRepo,
		userRepo:       userRepo,
		storageBaseURL: storageBaseURL,
	}
}

// MemberInput create/update payload
type MemberInput struct {
	Name               string  `json:"name" binding:"required"`
	NIP                string  `json:"nip"`
	KTA                string  `json:"kta"`
	Gender             string  `json:"gender" binding:"omitempty,oneof=male female"`
	BirthDate          string  `json:"birth_date" binding:"required"`
	KTP                string  `json:"ktp"`
	IDCard             string  `json:"id_card"`
	FormSummary        string  `json:"form_summary"`
	BranchID           uint64  `json:"branch_id" binding:"required"`
	RetirementAgeID    uint64  `json:"retirement_age_id" binding:"required"`
	MemberStatusCode   int     `json:"member_status_code"`
	InactiveStatusCode *int    `json:"inactive_status_code"`
	UserID             *uint64 `json:"user_id"`
}

// List returns a page of members visible to the acting user
func (s *MemberService) List(q domain.MemberListQuery, actingUserID uint64) ([]*domain.MemberResponse, int64, error) {
	vis, err := s.visibilityFor(actingUserID)
	if err != nil {
		return nil, 0, err
	}

	members, total, err := s.memberRepo.List(q, vis)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	responses := make([]*domain.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = s.toResponse(m, now)
	}
	return responses, total, nil
}

// ListRetiringThisYear returns active members reaching retirement in the
// current calendar year, within the acting user's visibility
func (s *MemberService) ListRetiringThisYear(actingUserID uint64) ([]*domain.MemberResponse, error) {
	vis, err := s.visibilityFor(actingUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	members, err := s.memberRepo.ListRetiringThisYear(now, vis)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MemberResponse, len(members))
	for i, m := range members {
		resp := s.toResponse(m, now)
		// positions are not preloaded on this listing, fall back to a
		// scoped query for the open position
		if m.Positions == nil {
			if pos, posErr := s.memberRepo.FindOpenPosition(m.ID); posErr == nil {
				resp.LastPosition = pos
			}
		}
		responses[i] = resp
	}
	return responses, nil
}

// Get returns a single member with derived attributes
func (s *MemberService) Get(id uint64) (*domain.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrMemberNotFound
	}
	return s.toResponse(member, time.Now()), nil
}

// Create persists a new member
func (s *MemberService) Create(input MemberInput) (*domain.MemberResponse, error) {
	member, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if member.MemberStatusCode == 0 {
		member.MemberStatusCode = domain.MemberStatusActive
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	return s.Get(member.ID)
}

// Update mutates an existing member
func (s *MemberService) Update(id uint64, input MemberInput) (*domain.MemberResponse, error) {
	existing, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrMemberNotFound
	}

	updated, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if updated.MemberStatusCode == 0 {
		updated.MemberStatusCode = existing.MemberStatusCode
	}

	if err := s.memberRepo.Update(updated); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return s.Get(id)
}

// Delete soft-deletes a member
func (s *MemberService) Delete(id uint64) error {
	if _, err := s.memberRepo.FindByID(id); err != nil {
		return common.ErrMemberNotFound
	}
	return s.memberRepo.Delete(id)
}

func (s *MemberService) visibilityFor(actingUserID uint64) (scope.Visibility, error) {
	user, err := s.userRepo.FindByID(actingUserID)
	if err != nil {
		return scope.Unrestricted(), common.ErrUnauthorized
	}
	return scope.ResolveVisibility(user), nil
}

func (s *MemberService) fromInput(input MemberInput) (*domain.Member, error) {
	birthDate, err := time.Parse(birthDateLayout, input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", common.ErrInvalidInput)
	}

	return &domain.Member{
		Name:               input.Name,
		NIP:                input.NIP,
		KTA:                input.KTA,
		Gender:             input.Gender,
		BirthDate:          birthDate,
		KTP:                input.KTP,
		IDCard:             input.IDCard,
		FormSummary:        input.FormSummary,
		BranchID:           input.BranchID,
		RetirementAgeID:    input.RetirementAgeID,
		MemberStatusCode:   input.MemberStatusCode,
		InactiveStatusCode: input.InactiveStatusCode,
		UserID:             input.UserID,
	}, nil
}

// toResponse assembles the read view, computing derived attributes from the
// loaded entity state
func (s *MemberService) toResponse(m *domain.Member, now time.Time) *domain.MemberResponse {
	return &domain.MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		NIP:            m.NIP,
		KTA:            m.KTA,
		Gender:         m.Gender,
		GenderLabel:    domain.GenderLabel(m.Gender),
		BirthDate:      m.BirthDate.Format(birthDateLayout),
		Age:            domain.Age(m.BirthDate, now),
		KTPURL:         domain.FileURL(s.storageBaseURL, m.KTP),
		IDCardURL:      domain.FileURL(s.storageBaseURL, m.IDCard),
		FormSummaryURL: domain.FileURL(s.storageBaseURL, m.FormSummary),
		Branch:         m.Branch,
		Status:         m.Status,
		RetirementAge:  m.RetirementAge,
		LastPosition:   domain.LastPosition(m.Positions),
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
