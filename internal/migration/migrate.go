package migration

import (
	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all entities and seeds reference data when
// the tables are empty. Safe to call on every start.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Region{},
		&domain.Branch{},
		&domain.RetirementAge{},
		&domain.MemberStatus{},
		&domain.InactiveStatus{},
		&domain.Permission{},
		&domain.Role{},
		&domain.User{},
		&domain.Member{},
		&domain.Position{},
		&domain.RegularDonation{},
		&domain.SpecialDonation{},
		&domain.Article{},
	); err != nil {
		return err
	}

	return Seed(db)
}

// Seed inserts reference rows that the application assumes exist: member
// statuses, retirement ages, permissions and the four well-known roles.
// Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedStatuses(db); err != nil {
		return err
	}
	if err := seedRetirementAges(db); err != nil {
		return err
	}
	return seedRoles(db)
}

func seedStatuses(db *gorm.DB) error {
	var count int64
	db.Model(&domain.MemberStatus{}).Count(&count)
	if count == 0 {
		statuses := []domain.MemberStatus{
			{Code: domain.MemberStatusActive, Name: "Aktif"},
			{Code: 2, Name: "Tidak Aktif"},
		}
		if err := db.Create(&statuses).Error; err != nil {
			return err
		}
	}

	db.Model(&domain.InactiveStatus{}).Count(&count)
	if count == 0 {
		inactive := []domain.InactiveStatus{
			{Code: 1, Name: "Pensiun"},
			{Code: 2, Name: "Mengundurkan Diri"},
			{Code: 3, Name: "Meninggal Dunia"},
		}
		if err := db.Create(&inactive).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedRetirementAges(db *gorm.DB) error {
	var count int64
	db.Model(&domain.RetirementAge{}).Count(&count)
	if count > 0 {
		return nil
	}
	ages := []domain.RetirementAge{
		{Name: "Staf", Age: 56},
		{Name: "Pimpinan", Age: 60},
	}
	return db.Create(&ages).Error
}

// rolePermissions names each seeded role's permission grants
var rolePermissions = map[string][]string{
	domain.RoleAdmin: {
		"users-list", "users-create", "users-edit", "users-delete",
		"members-list", "members-create", "members-edit", "members-delete",
		"articles-create", "articles-edit", "articles-delete",
		"roles-list",
	},
	domain.RoleMember: {
		"members-list",
	},
	domain.RoleBranch: {
		"members-list",
	},
	domain.RoleRegion: {
		"members-list",
	},
}

func seedRoles(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Role{}).Count(&count)
	if count > 0 {
		return nil
	}

	// Collect the distinct permission set first
	seen := map[string]*domain.Permission{}
	for _, names := range rolePermissions {
		for _, name := range names {
			if seen[name] == nil {
				seen[name] = &domain.Permission{Name: name}
			}
		}
	}
	for _, p := range seen {
		if err := db.Create(p).Error; err != nil {
			return err
		}
	}

	for _, roleName := range []string{domain.RoleAdmin, domain.RoleMember, domain.RoleBranch, domain.RoleRegion} {
		role := domain.Role{Name: roleName}
		for _, permName := range rolePermissions[roleName] {
			role.Permissions = append(role.Permissions, *seen[permName])
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
