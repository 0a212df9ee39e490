package domain

import "time"

// Region top level of the organizational hierarchy
type Region struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Region) TableName() string {
	return "regions"
}

// Branch belongs to a Region
type Branch struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	RegionID  uint64    `gorm:"index" json:"region_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}

func (Branch) TableName() string {
	return "branches"
}

// Option is a {value, label} pair for filter dropdowns
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ToOption converts a Region for select inputs
func (r *Region) ToOption() Option {
	return Option{Value: itoa(r.ID), Label: r.Name}
}

// ToOption converts a Branch for select inputs
func (b *Branch) ToOption() Option {
	return Option{Value: itoa(b.ID), Label: b.Name}
}
