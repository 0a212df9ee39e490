package domain

import (
	"time"

	"gorm.io/gorm"
)

// Role names with special meaning for visibility scoping
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
	RoleBranch = "branch"
	RoleRegion = "region"
)

// User is a login account. A user may or may not correspond to a Member row
// (IsMember); member-type accounts holding the branch or region role get a
// restricted view of the member registry.
type User struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:50;uniqueIndex" json:"username"`
	Email     string         `gorm:"size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	IsMember  bool           `json:"is_member"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Roles  []Role  `gorm:"many2many:user_roles" json:"roles,omitempty"`
	Member *Member `gorm:"foreignKey:UserID" json:"member,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds the named role. Roles must be loaded.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the names of the user's loaded roles
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// Role groups named permissions
type Role struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Permission is a named capability gating an endpoint, e.g. "users-list"
type Permission struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex" json:"name"`
}

func (Permission) TableName() string {
	return "permissions"
}

// UserResponse is the read view of a user
type UserResponse struct {
	ID        uint64   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	IsMember  bool     `json:"is_member"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
}

// ToResponse converts a User to its read view
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsMember:  u.IsMember,
		Roles:     u.RoleNames(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
