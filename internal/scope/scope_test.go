package scope

import (
	"testing"
	"time"

	"github.com/sekawan/membership-backend/internal/domain"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ScopeSuite exercises the query composer stages against in-memory SQLite
type ScopeSuite struct {
	suite.Suite
	db *gorm.DB
}

func TestScopeSuite(t *testing.T) {
	suite.Run(t, new(ScopeSuite))
}

func (s *ScopeSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(db.AutoMigrate(
		&domain.Region{}, &domain.Branch{}, &domain.RetirementAge{},
		&domain.MemberStatus{}, &domain.InactiveStatus{},
		&domain.Member{}, &domain.Position{},
	))

	s.seed()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ScopeSuite) seed() {
	s.Require().NoError(s.db.Create(&[]domain.Region{
		{ID: 1, Name: "Sumatera Utara"},
		{ID: 2, Name: "Jawa Barat"},
	}).Error)
	s.Require().NoError(s.db.Create(&[]domain.Branch{
		{ID: 1, Name: "Medan", RegionID: 1},
		{ID: 2, Name: "Bandung", RegionID: 2},
		{ID: 3, Name: "Bekasi", RegionID: 2},
	}).Error)
	s.Require().NoError(s.db.Create(&[]domain.RetirementAge{
		{ID: 1, Name: "Staf", Age: 60},
		{ID: 2, Name: "Pimpinan", Age: 55},
	}).Error)
	s.Require().NoError(s.db.Create(&[]domain.MemberStatus{
		{ID: 1, Code: 1, Name: "Aktif"},
		{ID: 2, Code: 2, Name: "Tidak Aktif"},
	}).Error)
	s.Require().NoError(s.db.Create(&[]domain.Member{
		{ID: 1, Name: "Andi Wijaya", NIP: "NIP-001", KTA: "KTA-001", Gender: "male",
			BirthDate: date(1966, 3, 10), BranchID: 1, RetirementAgeID: 1, MemberStatusCode: 1},
		{ID: 2, Name: "Budi Santoso", NIP: "NIP-002", KTA: "KTA-002", Gender: "male",
			BirthDate: date(1966, 9, 10), BranchID: 2, RetirementAgeID: 1, MemberStatusCode: 1},
		{ID: 3, Name: "Citra Lestari", NIP: "NIP-003", KTA: "KTA-003", Gender: "female",
			BirthDate: date(1990, 1, 20), BranchID: 2, RetirementAgeID: 1, MemberStatusCode: 1},
		{ID: 4, Name: "Dewi Anggraini", NIP: "NIP-004", KTA: "KTA-004", Gender: "female",
			BirthDate: date(1971, 2, 5), BranchID: 3, RetirementAgeID: 2, MemberStatusCode: 2},
		{ID: 5, Name: "Eko Prasetyo", NIP: "NIP-005", KTA: "KTA-005", Gender: "male",
			BirthDate: date(1965, 6, 1), BranchID: 3, RetirementAgeID: 1, MemberStatusCode: 1},
	}).Error)
}

func (s *ScopeSuite) memberQuery() *gorm.DB {
	return s.db.Model(&domain.Member{})
}

func (s *ScopeSuite) idsOf(q *gorm.DB) []uint64 {
	var members []domain.Member
	s.Require().NoError(q.Find(&members).Error)
	ids := make([]uint64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func (s *ScopeSuite) TestSearch_EmptyKeywordIsIdentity() {
	all := s.idsOf(s.memberQuery().Order("id"))
	searched := s.idsOf(MemberSearch("")(s.memberQuery().Order("id")))
	s.Equal(all, searched)
}

func (s *ScopeSuite) TestSearch_MatchesOwnColumns() {
	s.ElementsMatch([]uint64{2}, s.idsOf(MemberSearch("NIP-002")(s.memberQuery())))
	s.ElementsMatch([]uint64{3}, s.idsOf(MemberSearch("KTA-003")(s.memberQuery())))
	s.ElementsMatch([]uint64{2}, s.idsOf(MemberSearch("Budi")(s.memberQuery())))
}

func (s *ScopeSuite) TestSearch_CaseInsensitiveSubstring() {
	s.ElementsMatch([]uint64{2}, s.idsOf(MemberSearch("budi")(s.memberQuery())))
	s.ElementsMatch([]uint64{1}, s.idsOf(MemberSearch("wija")(s.memberQuery())))
}

func (s *ScopeSuite) TestSearch_MatchesBranchRelation() {
	// branch name
	s.ElementsMatch([]uint64{1}, s.idsOf(MemberSearch("Medan")(s.memberQuery())))
	// branch's region name
	s.ElementsMatch([]uint64{2, 3, 4, 5}, s.idsOf(MemberSearch("Jawa")(s.memberQuery())))
}

func (s *ScopeSuite) TestSearch_NoMatch() {
	s.Empty(s.idsOf(MemberSearch("zzz-nothing")(s.memberQuery())))
}

func (s *ScopeSuite) TestSort_BranchNameAscending() {
	var members []domain.Member
	s.Require().NoError(MemberSort("branch.name", "asc")(s.memberQuery()).Find(&members).Error)
	s.Len(members, 5)

	branchNames := map[uint64]string{1: "Medan", 2: "Bandung", 3: "Bekasi"}
	prev := ""
	for _, m := range members {
		name := branchNames[m.BranchID]
		s.GreaterOrEqual(name, prev)
		prev = name
	}
}

func (s *ScopeSuite) TestSort_RegionNameDescending() {
	var members []domain.Member
	s.Require().NoError(MemberSort("branch.region.name", "desc")(s.memberQuery()).Find(&members).Error)
	s.Len(members, 5)
	// "Sumatera Utara" sorts after "Jawa Barat", so descending puts the
	// Medan member first
	s.Equal(uint64(1), members[0].ID)
}

func (s *ScopeSuite) TestSort_StatusName() {
	var members []domain.Member
	s.Require().NoError(MemberSort("status.name", "asc")(s.memberQuery()).Find(&members).Error)
	s.Len(members, 5)
	// "Aktif" sorts before "Tidak Aktif"; member 4 is the only inactive one
	s.Equal(uint64(4), members[4].ID)
}

func (s *ScopeSuite) TestSort_PlainColumn() {
	ids := s.idsOf(MemberSort("name", "asc")(s.memberQuery()))
	s.Equal([]uint64{1, 2, 3, 4, 5}, ids)

	ids = s.idsOf(MemberSort("name", "desc")(s.memberQuery()))
	s.Equal([]uint64{5, 4, 3, 2, 1}, ids)
}

func (s *ScopeSuite) TestSort_UnknownColumnSurfacesStoreError() {
	var members []domain.Member
	err := MemberSort("foo", "asc")(s.memberQuery()).Find(&members).Error
	s.Error(err)
}

func (s *ScopeSuite) TestFilter_EmptyIsIdentity() {
	all := s.idsOf(s.memberQuery().Order("id"))
	filtered := s.idsOf(MemberFilter(domain.MemberFilters{})(s.memberQuery().Order("id")))
	s.Equal(all, filtered)
}

func (s *ScopeSuite) TestFilter_BranchEquality() {
	s.ElementsMatch([]uint64{2, 3},
		s.idsOf(MemberFilter(domain.MemberFilters{BranchID: 2})(s.memberQuery())))
}

func (s *ScopeSuite) TestFilter_RegionThroughBranch() {
	s.ElementsMatch([]uint64{1},
		s.idsOf(MemberFilter(domain.MemberFilters{RegionID: 1})(s.memberQuery())))
	s.ElementsMatch([]uint64{2, 3, 4, 5},
		s.idsOf(MemberFilter(domain.MemberFilters{RegionID: 2})(s.memberQuery())))
}

func (s *ScopeSuite) TestFilter_RetirementAge() {
	s.ElementsMatch([]uint64{4},
		s.idsOf(MemberFilter(domain.MemberFilters{RetirementAgeID: 2})(s.memberQuery())))
}

func (s *ScopeSuite) TestFilter_CombinedAnd() {
	s.ElementsMatch([]uint64{2, 3},
		s.idsOf(MemberFilter(domain.MemberFilters{RegionID: 2, BranchID: 2})(s.memberQuery())))
	s.Empty(
		s.idsOf(MemberFilter(domain.MemberFilters{RegionID: 1, BranchID: 2})(s.memberQuery())))
}

func (s *ScopeSuite) TestVisibility_Branch() {
	vis := RestrictedToBranch(3)
	s.ElementsMatch([]uint64{4, 5}, s.idsOf(vis.Scope()(s.memberQuery())))

	// visibility stacks on top of caller filters, it cannot widen them
	q := MemberFilter(domain.MemberFilters{BranchID: 2})(s.memberQuery())
	s.Empty(s.idsOf(vis.Scope()(q)))
}

func (s *ScopeSuite) TestVisibility_Region() {
	s.ElementsMatch([]uint64{2, 3, 4, 5}, s.idsOf(RestrictedToRegion(2).Scope()(s.memberQuery())))
}

func (s *ScopeSuite) TestVisibility_Unrestricted() {
	s.Len(s.idsOf(Unrestricted().Scope()(s.memberQuery())), 5)
}

func (s *ScopeSuite) TestResolveVisibility() {
	admin := &domain.User{ID: 1, Roles: []domain.Role{{Name: domain.RoleAdmin}}}
	s.False(ResolveVisibility(admin).IsRestricted())

	branchUser := &domain.User{
		ID: 2, IsMember: true,
		Roles:  []domain.Role{{Name: domain.RoleBranch}},
		Member: &domain.Member{BranchID: 3},
	}
	s.Equal(RestrictedToBranch(3), ResolveVisibility(branchUser))

	regionUser := &domain.User{
		ID: 3, IsMember: true,
		Roles:  []domain.Role{{Name: domain.RoleRegion}},
		Member: &domain.Member{BranchID: 2, Branch: &domain.Branch{ID: 2, RegionID: 2}},
	}
	s.Equal(RestrictedToRegion(2), ResolveVisibility(regionUser))

	// member account without a scoping role sees everything
	plain := &domain.User{ID: 4, IsMember: true, Member: &domain.Member{BranchID: 1}}
	s.False(ResolveVisibility(plain).IsRestricted())

	s.False(ResolveVisibility(nil).IsRestricted())
}

func (s *ScopeSuite) TestActive() {
	s.ElementsMatch([]uint64{1, 2, 3, 5}, s.idsOf(MemberActive()(s.memberQuery())))
}

func (s *ScopeSuite) TestWillRetireThisYear() {
	now := date(2026, 6, 15)

	var members []domain.Member
	s.Require().NoError(MemberWillRetireThisYear(now)(s.memberQuery()).Find(&members).Error)

	// 1: born 1966-03-10, retires at 60 in 2026, already 60 -> included
	// 2: born 1966-09-10, retires at 60 in 2026, still 59 -> included
	// 4: born 1971-02-05, retires at 55 in 2026 -> included
	// 5: born 1965-06-01, retirement year 2025 -> excluded
	ids := make([]uint64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	// ordered by birth date ascending
	s.Equal([]uint64{1, 2, 4}, ids)
}

func (s *ScopeSuite) TestWillRetireThisYear_YearBoundary() {
	// one year earlier nobody from the 1966 cohort retires yet
	var members []domain.Member
	s.Require().NoError(MemberWillRetireThisYear(date(2025, 6, 15))(s.memberQuery()).Find(&members).Error)
	s.Len(members, 1)
	s.Equal(uint64(5), members[0].ID) // born 1965-06-01, retires in 2025
}

func (s *ScopeSuite) TestPaginate_Stable() {
	first := s.idsOf(Paginate(1, 2)(MemberSort("name", "asc")(s.memberQuery())))
	again := s.idsOf(Paginate(1, 2)(MemberSort("name", "asc")(s.memberQuery())))
	s.Equal(first, again)
	s.Equal([]uint64{1, 2}, first)

	second := s.idsOf(Paginate(2, 2)(MemberSort("name", "asc")(s.memberQuery())))
	s.Equal([]uint64{3, 4}, second)
}

func (s *ScopeSuite) TestNormalizePage() {
	page, perPage := NormalizePage(0, 0)
	s.Equal(1, page)
	s.Equal(DefaultPerPage, perPage)

	_, perPage = NormalizePage(1, 10_000)
	s.Equal(MaxPerPage, perPage)
}
