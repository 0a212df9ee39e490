package domain

import (
	"time"

	"gorm.io/gorm"
)

// Gender values stored on a member
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Member is a person tracked by the registry, optionally linked to a login
// account. All querying goes through the repository layer and the scope
// package; the entity itself carries no query logic.
type Member struct {
	ID                 uint64         `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"size:255;not null" json:"name" binding:"required"`
	NIP                string         `gorm:"column:nip;size:50;index" json:"nip"`
	KTA                string         `gorm:"column:kta;size:50;index" json:"kta"`
	Gender             string         `gorm:"size:10" json:"gender"`
	BirthDate          time.Time      `json:"birth_date"`
	KTP                string         `gorm:"column:ktp;size:255" json:"-"`
	IDCard             string         `gorm:"column:id_card;size:255" json:"-"`
	FormSummary        string         `gorm:"size:255" json:"-"`
	BranchID           uint64         `gorm:"index" json:"branch_id"`
	RetirementAgeID    uint64         `gorm:"index" json:"retirement_age_id"`
	MemberStatusCode   int            `gorm:"index" json:"member_status_code"`
	InactiveStatusCode *int           `json:"inactive_status_code,omitempty"`
	UserID             *uint64        `json:"user_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Branch          *Branch          `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	RetirementAge   *RetirementAge   `gorm:"foreignKey:RetirementAgeID" json:"retirement_age,omitempty"`
	Status          *MemberStatus    `gorm:"foreignKey:MemberStatusCode;references:Code" json:"status,omitempty"`
	InactiveStatus  *InactiveStatus  `gorm:"foreignKey:InactiveStatusCode;references:Code" json:"inactive_status,omitempty"`
	User            *User            `gorm:"foreignKey:UserID" json:"-"`
	Positions       []Position       `gorm:"foreignKey:MemberID" json:"positions,omitempty"`
	RegularDonation *RegularDonation `gorm:"foreignKey:MemberID" json:"regular_donation,omitempty"`
	SpecialDonation *SpecialDonation `gorm:"foreignKey:MemberID" json:"special_donation,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

// MemberFilters optional listing filters. Zero values mean "no restriction",
// never "match zero".
type MemberFilters struct {
	RegionID        uint64 `form:"region_id"`
	BranchID        uint64 `form:"branch_id"`
	RetirementAgeID uint64 `form:"retirement_age_id"`
}

// MemberListQuery declarative member listing request
type MemberListQuery struct {
	Keyword   string `form:"keyword"`
	Filters   MemberFilters
	SortKey   string `form:"sort"`
	SortOrder string `form:"order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// MemberResponse is the read view of a member, including derived attributes.
// Derived fields are computed at assembly time and never persisted.
type MemberResponse struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	NIP            string    `json:"nip"`
	KTA            string    `json:"kta"`
	Gender         string    `json:"gender"`
	GenderLabel    string    `json:"gender_label"`
	BirthDate      string    `json:"birth_date"`
	Age            int       `json:"age"`
	KTPURL         *string   `json:"ktp_url"`
	IDCardURL      *string   `json:"id_card_url"`
	FormSummaryURL *string   `json:"form_summary_url"`
	Branch         *Branch   `json:"branch,omitempty"`
	Status         *MemberStatus `json:"status,omitempty"`
	RetirementAge  *RetirementAge `json:"retirement_age,omitempty"`
	LastPosition   *Position `json:"last_position"`
	CreatedAt      string    `json:"created_at"`
}
