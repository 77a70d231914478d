package cornercase

import (
	"testing"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func fixture() domain.Snapshot {
	lead := "L1"
	due := now.AddDate(0, 0, 20)
	return domain.Snapshot{
		Members: []domain.Member{
			{ID: "L1", Name: "Lead", LastAccess: now, OverallProgress: 70},
			{ID: "M1", Name: "Ana", ManagerID: &lead, LastAccess: now, OverallProgress: 50,
				EnrollmentIDs: []string{"E1", "E2", "E3"}, TrailIDs: []string{"T1"}, PulseIDs: []string{"P1"}},
			{ID: "M2", Name: "Bruno", ManagerID: &lead, LastAccess: now.AddDate(0, 0, -3), OverallProgress: 20,
				EnrollmentIDs: []string{"E4"}},
		},
		Enrollments: []domain.Enrollment{
			{ID: "E1", MemberID: "M1", CourseID: "C1", Type: domain.EnrollmentMandatory, DueDate: &due, Progress: 100, Status: domain.StatusFinished},
			{ID: "E2", MemberID: "M1", CourseID: "REG", Type: domain.EnrollmentMandatory, IsRegulatory: true, DueDate: &due, Progress: 30, Status: domain.StatusStarted},
			{ID: "E3", MemberID: "M1", CourseID: "C2", Type: domain.EnrollmentFree, Progress: 40, Status: domain.StatusStarted},
			{ID: "E4", MemberID: "M2", CourseID: "REG", Type: domain.EnrollmentMandatory, IsRegulatory: true, Progress: 10, Status: domain.StatusEnrolled},
		},
		Courses:  []domain.Course{{ID: "C1", Title: "Safety"}, {ID: "C2", Title: "Go"}, {ID: "REG", Title: "Compliance"}},
		Trails:   []domain.Trail{{ID: "T1", Title: "Onboarding", IsMandatory: true, DueDate: &due}},
		Pulses:   []domain.Pulse{{ID: "P1", Title: "Tip"}},
		Ranking:  []domain.RankingEntry{{MemberID: "M1", Points: 10}},
		Personas: []domain.Persona{{ID: "P", Role: domain.RoleManager}},
	}
}

func TestApply_NoFlagsReturnsInput(t *testing.T) {
	snap := fixture()
	out := Apply(snap, Flags{}, now)
	assert.Equal(t, snap, out)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	snap := fixture()
	before := snap.Clone()

	all := NewFlags(Order[1:]...)
	all.RegulatoryCourseID = "REG"
	all.ClearedMemberIDs = []string{"M2"}
	_ = Apply(snap, all, now)

	assert.Equal(t, before, snap)
}

func TestEmptyDataset_ShortCircuits(t *testing.T) {
	out := Apply(fixture(), NewFlags(EmptyDataset, LongNames), now)
	assert.Empty(t, out.Members)
	assert.Empty(t, out.Enrollments)
	assert.Len(t, out.Personas, 1, "personas survive so the viewer resolves")
}

func TestLongNames(t *testing.T) {
	out := ApplyOne(fixture(), LongNames, Flags{}, now)
	assert.Greater(t, len(out.Members[1].Name), len("Ana")+20)
	assert.Contains(t, out.Courses[0].Title, "Safety")
}

func TestAllInactive(t *testing.T) {
	out := ApplyOne(fixture(), AllInactive, Flags{}, now)
	for _, m := range out.Members {
		assert.Equal(t, 45, domain.DaysSince(m.LastAccess, now))
	}
}

func TestAllMandatoryOverdue(t *testing.T) {
	out := ApplyOne(fixture(), AllMandatoryOverdue, Flags{}, now)
	for _, e := range out.Enrollments {
		if !e.IsMandatory() {
			assert.Nil(t, e.DueDate)
			continue
		}
		require.NotNil(t, e.DueDate)
		assert.Less(t, domain.DayDiff(*e.DueDate, now), 0)
		assert.False(t, e.IsDone())
	}
	assert.Less(t, domain.DayDiff(*out.Trails[0].DueDate, now), 0)
}

func TestStripMandatory(t *testing.T) {
	out := ApplyOne(fixture(), StripMandatory, Flags{}, now)
	require.Len(t, out.Enrollments, 1)
	assert.Equal(t, "E3", out.Enrollments[0].ID)
	assert.Equal(t, []string{"E3"}, out.Members[1].EnrollmentIDs)
	assert.Empty(t, out.Members[2].EnrollmentIDs)
	assert.False(t, out.Trails[0].IsMandatory)
}

func TestStripRegulatoryCourse(t *testing.T) {
	f := Flags{RegulatoryCourseID: "REG"}
	out := ApplyOne(fixture(), StripRegulatoryCourse, f, now)
	for _, e := range out.Enrollments {
		assert.NotEqual(t, "REG", e.CourseID)
	}
	assert.Equal(t, []string{"E1", "E3"}, out.Members[1].EnrollmentIDs)

	untouched := ApplyOne(fixture(), StripRegulatoryCourse, Flags{}, now)
	assert.Len(t, untouched.Enrollments, 4, "no course id configured")
}

func TestZeroProgress(t *testing.T) {
	out := ApplyOne(fixture(), ZeroProgress, Flags{}, now)
	for _, m := range out.Members {
		assert.Zero(t, m.OverallProgress)
	}
	for _, e := range out.Enrollments {
		assert.Zero(t, e.Progress)
	}
}

func TestFarFutureDueDates(t *testing.T) {
	out := ApplyOne(fixture(), FarFutureDueDates, Flags{}, now)
	for _, e := range out.Enrollments {
		if e.DueDate != nil {
			assert.Greater(t, domain.DayDiff(*e.DueDate, now), 365)
		}
	}
	assert.Nil(t, out.Enrollments[3].DueDate, "items without a due date stay without one")
}

func TestClearMemberContent(t *testing.T) {
	f := Flags{ClearedMemberIDs: []string{"M1"}}
	out := ApplyOne(fixture(), ClearMemberContent, f, now)

	m1 := out.Members[1]
	assert.True(t, m1.ContentCleared)
	assert.Empty(t, m1.EnrollmentIDs)
	assert.Empty(t, m1.TrailIDs)
	assert.Empty(t, m1.EventIDs)
	assert.Empty(t, m1.ChannelIDs)
	assert.Empty(t, m1.PulseIDs)
	for _, e := range out.Enrollments {
		assert.NotEqual(t, "M1", e.MemberID)
	}
	assert.False(t, out.Members[2].ContentCleared)
}

func TestClearRanking(t *testing.T) {
	out := ApplyOne(fixture(), ClearRanking, Flags{}, now)
	assert.Empty(t, out.Ranking)
}

func TestTransformsCompose(t *testing.T) {
	f := NewFlags(AllInactive, ZeroProgress, ClearRanking)
	out := Apply(fixture(), f, now)

	assert.Equal(t, 45, domain.DaysSince(out.Members[0].LastAccess, now))
	assert.Zero(t, out.Members[1].OverallProgress)
	assert.Empty(t, out.Ranking)
}

func TestParseName(t *testing.T) {
	n, err := ParseName(" All-Inactive ")
	require.NoError(t, err)
	assert.Equal(t, AllInactive, n)

	_, err = ParseName("nope")
	assert.ErrorContains(t, err, "unknown corner case")
}

func TestPipeline_FollowsFixedOrder(t *testing.T) {
	p := Pipeline(NewFlags(ClearRanking, LongNames, ZeroProgress))
	require.Len(t, p, 3)
	assert.Equal(t, []Name{LongNames, ZeroProgress, ClearRanking}, []Name{p[0].Name, p[1].Name, p[2].Name})
}
