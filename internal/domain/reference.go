package domain

import (
	"strconv"
	"time"
)

// MemberStatusActive is the code of the "active" member status
const MemberStatusActive = 1

// MemberStatus reference table, keyed by code rather than id
type MemberStatus struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Code int    `gorm:"uniqueIndex" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (MemberStatus) TableName() string {
	return "member_statuses"
}

// InactiveStatus reference table for the reason a member went inactive
type InactiveStatus struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Code int    `gorm:"uniqueIndex" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (InactiveStatus) TableName() string {
	return "inactive_statuses"
}

// RetirementAge reference table mapping a member class to its retirement age
type RetirementAge struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RetirementAge) TableName() string {
	return "retirement_ages"
}

// ToOption converts a RetirementAge for select inputs
func (r *RetirementAge) ToOption() Option {
	return Option{Value: itoa(r.ID), Label: r.Name}
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
