package domain

import "time"

// Position held by a member. A nil EndDate marks the currently active
// position; at most one open position per member is enforced on write.
type Position struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	MemberID  uint64     `gorm:"index" json:"member_id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Position) TableName() string {
	return "positions"
}
