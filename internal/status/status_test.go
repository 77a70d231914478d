package status

import (
	"testing"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func member(id string, progress float64, lastAccessDaysAgo int) domain.Member {
	return domain.Member{
		ID:              id,
		Name:            "Member " + id,
		OverallProgress: progress,
		LastAccess:      now.AddDate(0, 0, -lastAccessDaysAgo),
	}
}

func mandatory(memberID string, dueInDays int, progress float64) domain.Enrollment {
	due := domain.StartOfDay(now).AddDate(0, 0, dueInDays)
	return domain.Enrollment{
		ID:       memberID + "-e",
		MemberID: memberID,
		CourseID: "C1",
		Type:     domain.EnrollmentMandatory,
		DueDate:  &due,
		Progress: progress,
		Status:   domain.StatusStarted,
	}
}

func TestClassify_OverdueMandatoryIsAtRisk(t *testing.T) {
	m := member("1", 10, 2)
	c := Classify(m, []domain.Enrollment{mandatory("1", -15, 10)}, nil, now)

	assert.Equal(t, AtRisk, c.General)
	assert.Contains(t, c.NextDueDateText, "15")
	require.NotNil(t, c.NextDueInDays)
	assert.Equal(t, -15, *c.NextDueInDays)
	assert.Equal(t, 1, c.OverdueCount)
}

func TestClassify_AtRiskDominatesAccessRecency(t *testing.T) {
	for _, days := range []int{0, 10, 20, 31, 90} {
		m := member("1", 80, days)
		c := Classify(m, []domain.Enrollment{mandatory("1", -1, 0)}, nil, now)
		assert.Equal(t, AtRisk, c.General, "days since access %d", days)
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		accessDays  int
		enrollments []domain.Enrollment
		want        General
	}{
		{"inactive beats due soon", 31, []domain.Enrollment{mandatory("1", 3, 0)}, Inactive},
		{"due within a week", 1, []domain.Enrollment{mandatory("1", 7, 0)}, Attention},
		{"due today", 1, []domain.Enrollment{mandatory("1", 0, 0)}, Attention},
		{"due in eight days", 1, []domain.Enrollment{mandatory("1", 8, 0)}, OnTrack},
		{"access between 15 and 30", 16, nil, Attention},
		{"access exactly 15", 15, nil, OnTrack},
		{"access exactly 30", 30, nil, Attention},
		{"recent and clear", 2, nil, OnTrack},
		{"finished overdue item is ignored", 2, []domain.Enrollment{mandatory("1", -5, 100)}, OnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(member("1", 50, tt.accessDays), tt.enrollments, nil, now)
			assert.Equal(t, tt.want, c.General)
		})
	}
}

func TestClassify_MandatoryTrailCounts(t *testing.T) {
	due := domain.StartOfDay(now).AddDate(0, 0, -2)
	trail := domain.Trail{ID: "T1", IsMandatory: true, DueDate: &due}

	c := Classify(member("1", 50, 1), nil, []domain.Trail{trail}, now)
	assert.Equal(t, AtRisk, c.General)
	assert.Equal(t, "Overdue by 2 days", c.NextDueDateText)
}

func TestClassify_MandatoryTrailWithoutDueDate(t *testing.T) {
	trail := domain.Trail{ID: "T1", IsMandatory: true}

	c := Classify(member("1", 50, 1), nil, []domain.Trail{trail}, now)
	assert.Equal(t, OnTrack, c.General)
	assert.Equal(t, 1, c.MandatoryCount)
	assert.Nil(t, c.NextDueInDays)
}

func TestClassify_NoObligationText(t *testing.T) {
	free := domain.Enrollment{ID: "e", MemberID: "1", Type: domain.EnrollmentFree}
	c := Classify(member("1", 50, 1), []domain.Enrollment{free}, []domain.Trail{{ID: "T"}}, now)

	assert.Equal(t, "No mandatory obligation", c.NextDueDateText)
	assert.Nil(t, c.NextDueInDays)
	assert.Equal(t, 0, c.MandatoryCount)
}

func TestClassify_NextDuePicksMinimumDiff(t *testing.T) {
	enrollments := []domain.Enrollment{
		mandatory("1", 20, 0),
		mandatory("1", -3, 0),
		mandatory("1", 5, 0),
	}
	c := Classify(member("1", 50, 1), enrollments, nil, now)

	require.NotNil(t, c.NextDueInDays)
	assert.Equal(t, -3, *c.NextDueInDays)
	assert.Equal(t, 3, c.MandatoryCount)
}

func TestClassify_ClearedContentIsEmpty(t *testing.T) {
	m := member("1", 0, 1)
	m.ContentCleared = true
	c := Classify(m, nil, nil, now)
	assert.Equal(t, Empty, c.General)
}

func TestEngagementFor(t *testing.T) {
	assert.Equal(t, EngagementHigh, EngagementFor(60, 15))
	assert.Equal(t, EngagementMedium, EngagementFor(60, 16))
	assert.Equal(t, EngagementMedium, EngagementFor(30, 30))
	assert.Equal(t, EngagementLow, EngagementFor(29, 1))
	assert.Equal(t, EngagementLow, EngagementFor(90, 31))
}

func TestMetaFor_PriorityTable(t *testing.T) {
	assert.Equal(t, 1, MetaFor(AtRisk).Priority)
	assert.Equal(t, 2, MetaFor(Attention).Priority)
	assert.Equal(t, 3, MetaFor(OnTrack).Priority)
	assert.Equal(t, 4, MetaFor(Inactive).Priority)
	assert.Equal(t, ToneDanger, MetaFor(AtRisk).Tone)
	assert.Equal(t, "unknown", MetaFor(General("unknown")).Label)
}

func TestLowEngagementFree(t *testing.T) {
	members := []domain.Member{member("1", 10, 40), member("2", 10, 20), member("3", 90, 1), member("4", 5, 50)}
	enrollments := []domain.Enrollment{
		{ID: "a", MemberID: "1", Type: domain.EnrollmentFree, Progress: 20},
		{ID: "b", MemberID: "2", Type: domain.EnrollmentFree, Progress: 0},
		{ID: "c", MemberID: "3", Type: domain.EnrollmentFree, Progress: 0},
		{ID: "d", MemberID: "4", Type: domain.EnrollmentFree, Progress: 100},
	}
	classes := make(map[string]Classification)
	for _, m := range members {
		classes[m.ID] = Classify(m, enrollments, nil, now)
	}

	got := LowEngagementFree(members, classes, enrollments)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].MemberID, "least recently active first")
	assert.Equal(t, "2", got[1].MemberID)
}
