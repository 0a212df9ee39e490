package scope

import (
	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
)

type visibilityKind int

const (
	unrestricted visibilityKind = iota
	byBranch
	byRegion
)

// Visibility is the role-derived restriction applied to every member
// listing. It is a closed variant: Unrestricted, RestrictedToBranch or
// RestrictedToRegion, resolved once per request from the acting user and
// then applied uniformly. Callers cannot opt out; this is a security
// boundary, not a convenience filter.
type Visibility struct {
	kind visibilityKind
	id   uint64
}

// Unrestricted applies no restriction
func Unrestricted() Visibility {
	return Visibility{kind: unrestricted}
}

// RestrictedToBranch limits results to a single branch
func RestrictedToBranch(branchID uint64) Visibility {
	return Visibility{kind: byBranch, id: branchID}
}

// RestrictedToRegion limits results to branches within a region
func RestrictedToRegion(regionID uint64) Visibility {
	return Visibility{kind: byRegion, id: regionID}
}

// ResolveVisibility derives the restriction from the acting user: a
// member-type account holding the branch role sees only its own branch, one
// holding the region role sees only its branch's region, everyone else
// (admin accounts, accounts without a scoping role) is unrestricted. The
// user's Roles and Member.Branch must be loaded.
func ResolveVisibility(user *domain.User) Visibility {
	if user == nil || !user.IsMember || user.Member == nil {
		return Unrestricted()
	}
	if user.HasRole(domain.RoleBranch) {
		return RestrictedToBranch(user.Member.BranchID)
	}
	if user.HasRole(domain.RoleRegion) && user.Member.Branch != nil {
		return RestrictedToRegion(user.Member.Branch.RegionID)
	}
	return Unrestricted()
}

// Scope returns the query stage for this visibility
func (v Visibility) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch v.kind {
		case byBranch:
			return db.Where("members.branch_id = ?", v.id)
		case byRegion:
			return db.Where(
				"EXISTS (SELECT 1 FROM branches vb WHERE vb.id = members.branch_id AND vb.region_id = ?)",
				v.id,
			)
		default:
			return db
		}
	}
}

// IsRestricted reports whether the visibility narrows the result set
func (v Visibility) IsRestricted() bool {
	return v.kind != unrestricted
}
