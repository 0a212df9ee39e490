package domain

import "time"

// RegularDonation monthly contribution settings for a member
type RegularDonation struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MemberID  uint64    `gorm:"uniqueIndex" json:"member_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RegularDonation) TableName() string {
	return "regular_donations"
}

// SpecialDonation one-off contribution settings for a member
type SpecialDonation struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MemberID  uint64    `gorm:"uniqueIndex" json:"member_id"`
	Amount    int64     `json:"amount"`
	Note      string    `gorm:"size:255" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SpecialDonation) TableName() string {
	return "special_donations"
}
