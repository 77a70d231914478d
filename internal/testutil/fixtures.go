package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/teamlens/internal/domain"
)

// Member options
type MemberOption func(*domain.Member)

func WithManager(id string) MemberOption {
	return func(m *domain.Member) {
		m.ManagerID = &id
	}
}

func WithProgress(p float64) MemberOption {
	return func(m *domain.Member) {
		m.OverallProgress = p
	}
}

func WithLastAccess(t time.Time) MemberOption {
	return func(m *domain.Member) {
		m.LastAccess = t
	}
}

func WithJobTitle(title string) MemberOption {
	return func(m *domain.Member) {
		m.JobTitle = title
	}
}

func WithMemberID(id string) MemberOption {
	return func(m *domain.Member) {
		m.ID = id
	}
}

func WithTrails(ids ...string) MemberOption {
	return func(m *domain.Member) {
		m.TrailIDs = ids
	}
}

func WithPulses(ids ...string) MemberOption {
	return func(m *domain.Member) {
		m.PulseIDs = ids
	}
}

func WithCourseCounters(total, completed int) MemberOption {
	return func(m *domain.Member) {
		m.TotalCourses = total
		m.CoursesCompleted = completed
	}
}

// NewTestMember returns a recently active member with a fresh id.
func NewTestMember(name string, opts ...MemberOption) domain.Member {
	m := domain.Member{
		ID:              uuid.New().String(),
		Name:            name,
		JobTitle:        "Analyst",
		OverallProgress: 50,
		LastAccess:      time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Enrollment options
type EnrollmentOption func(*domain.Enrollment)

func Mandatory(due time.Time) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.Type = domain.EnrollmentMandatory
		e.DueDate = &due
	}
}

func Regulatory() EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.IsRegulatory = true
	}
}

func WithStatus(s domain.EnrollmentStatus) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.Status = s
		if s == domain.StatusFinished {
			e.Progress = 100
		}
	}
}

func WithEnrollmentProgress(p float64) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.Progress = p
	}
}

// Enroll creates a free, started enrollment of m in courseID and links it
// from the member's EnrollmentIDs.
func Enroll(m *domain.Member, courseID string, opts ...EnrollmentOption) domain.Enrollment {
	e := domain.Enrollment{
		ID:       uuid.New().String(),
		MemberID: m.ID,
		CourseID: courseID,
		Type:     domain.EnrollmentFree,
		Status:   domain.StatusStarted,
		Progress: 20,
	}
	for _, opt := range opts {
		opt(&e)
	}
	m.EnrollmentIDs = append(m.EnrollmentIDs, e.ID)
	return e
}

// NewTestLeaderTeam builds a leader with size reports, all reporting to it.
func NewTestLeaderTeam(leaderName string, size int, opts ...MemberOption) (domain.Member, []domain.Member) {
	leader := NewTestMember(leaderName, WithJobTitle("Team Lead"))
	team := make([]domain.Member, size)
	for i := range team {
		all := append([]MemberOption{WithManager(leader.ID)}, opts...)
		team[i] = NewTestMember(fmt.Sprintf("%s report %d", leaderName, i+1), all...)
	}
	return leader, team
}
