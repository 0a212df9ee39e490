// Package scope implements the member query composer: a pipeline of pure
// stages, each taking and returning a query builder, composed through
// gorm's Scopes. Stages are independent and AND-combine; sort and
// pagination are applied last by the repository for deterministic paging.
package scope

import (
	"strings"
	"time"

	"github.com/sekawan/membership-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Pagination bounds
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// MemberSearch restricts to members matching keyword on any searchable
// field: nip, name, kta, the branch name or the branch's region name (the
// relation fields through existence sub-conditions). The keyword becomes a
// case-insensitive substring LIKE. An empty keyword is the identity stage.
//
// The keyword is passed to LIKE unescaped: a literal % or _ in the input
// acts as a wildcard.
func MemberSearch(keyword string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if keyword == "" {
			return db
		}
		like := "%" + keyword + "%"
		return db.Where(
			`(members.nip LIKE ? OR members.name LIKE ? OR members.kta LIKE ?
				OR EXISTS (SELECT 1 FROM branches sb WHERE sb.id = members.branch_id AND sb.name LIKE ?)
				OR EXISTS (SELECT 1 FROM branches sb JOIN regions sr ON sr.id = sb.region_id
					WHERE sb.id = members.branch_id AND sr.name LIKE ?))`,
			like, like, like, like, like,
		)
	}
}

// MemberSort orders the query. The dotted paths branch.name,
// branch.region.name and status.name join the referenced table and order by
// its name column while selecting only members.* so joins never leak columns
// into the projection. Any other key orders by that literal column on the
// members table; a non-existent column is a caller error surfaced by the
// store, not swallowed here. Order is asc unless "desc".
func MemberSort(sortKey, sortOrder string) func(*gorm.DB) *gorm.DB {
	desc := strings.EqualFold(sortOrder, "desc")
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	return func(db *gorm.DB) *gorm.DB {
		switch sortKey {
		case "branch.name":
			return db.Select("members.*").
				Joins("JOIN branches t ON t.id = members.branch_id").
				Order("t.name " + dir)
		case "branch.region.name":
			return db.Select("members.*").
				Joins("JOIN branches b ON b.id = members.branch_id").
				Joins("JOIN regions t ON t.id = b.region_id").
				Order("t.name " + dir)
		case "status.name":
			return db.Select("members.*").
				Joins("JOIN member_statuses t ON t.code = members.member_status_code").
				Order("t.name " + dir)
		case "":
			return db.Order(clause.OrderByColumn{
				Column: clause.Column{Table: "members", Name: "id"},
				Desc:   desc,
			})
		default:
			// Unrecognized keys fall back to the literal column name.
			// The quoted clause keeps the identifier out of SQL text.
			return db.Order(clause.OrderByColumn{
				Column: clause.Column{Table: "members", Name: sortKey},
				Desc:   desc,
			})
		}
	}
}

// MemberFilter applies the optional equality filters. Zero-valued keys add
// no restriction at all. RegionID filters through a branch existence
// sub-condition; the others compare columns on the members table directly.
func MemberFilter(f domain.MemberFilters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.RegionID != 0 {
			db = db.Where(
				"EXISTS (SELECT 1 FROM branches fb WHERE fb.id = members.branch_id AND fb.region_id = ?)",
				f.RegionID,
			)
		}
		if f.BranchID != 0 {
			db = db.Where("members.branch_id = ?", f.BranchID)
		}
		if f.RetirementAgeID != 0 {
			db = db.Where("members.retirement_age_id = ?", f.RetirementAgeID)
		}
		return db
	}
}

// MemberActive restricts to members whose status is the active code
func MemberActive() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("members.member_status_code = ?", domain.MemberStatusActive)
	}
}

// MemberWillRetireThisYear keeps members whose retirement date (birth date
// plus their class's retirement age in years) falls in now's calendar year
// and whose whole-year age at now lies within [age-1, age]. Requires a join
// to retirement_ages; results are ordered by birth date ascending.
//
// The date arithmetic has no portable SQL spelling, so the predicate is
// emitted per dialect: MySQL in production, SQLite under tests. Semantics
// are identical.
func MemberWillRetireThisYear(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		year := now.Year()
		today := now.Format("2006-01-02")

		q := db.Select("members.*").
			Joins("JOIN retirement_ages ra ON ra.id = members.retirement_age_id").
			Order("members.birth_date ASC")

		if db.Dialector.Name() == "sqlite" {
			return q.
				Where(
					"CAST(strftime('%Y', date(members.birth_date, '+' || ra.age || ' years')) AS INTEGER) = ?",
					year,
				).
				Where(
					`(CAST(strftime('%Y', ?) AS INTEGER) - CAST(strftime('%Y', members.birth_date) AS INTEGER)
						- (strftime('%m-%d', ?) < strftime('%m-%d', members.birth_date)))
						BETWEEN ra.age - 1 AND ra.age`,
					today, today,
				)
		}

		return q.
			Where("YEAR(DATE_ADD(members.birth_date, INTERVAL ra.age YEAR)) = ?", year).
			Where("TIMESTAMPDIFF(YEAR, members.birth_date, ?) BETWEEN ra.age - 1 AND ra.age", today)
	}
}

// NormalizePage clamps page and page size to their bounds
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Paginate applies offset/limit paging. It is a thin wrapper meant to be
// the last stage, after search, filter and sort.
func Paginate(page, perPage int) func(*gorm.DB) *gorm.DB {
	page, perPage = NormalizePage(page, perPage)
	offset := (page - 1) * perPage
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(perPage)
	}
}
