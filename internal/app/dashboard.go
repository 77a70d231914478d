package app

import (
	"time"

	"github.com/alexanderramin/teamlens/internal/cornercase"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/kpi"
	"github.com/alexanderramin/teamlens/internal/leader"
	"github.com/alexanderramin/teamlens/internal/scope"
	"github.com/alexanderramin/teamlens/internal/status"
)

// DashboardRequest is everything a recompute depends on besides the stored
// snapshot. A change to any field means a full recompute.
type DashboardRequest struct {
	// PersonaID selects the viewing persona; empty means the unrestricted
	// all-teams view.
	PersonaID         string
	SelectedLeaderIDs []string
	Flags             cornercase.Flags
	Now               *time.Time
	BenchmarkEnabled  bool
	LeaderSort        leader.SortBy
}

func NewDashboardRequest(personaID string) DashboardRequest {
	return DashboardRequest{
		PersonaID:        personaID,
		BenchmarkEnabled: true,
		LeaderSort:       leader.ByEngagement,
	}
}

// MemberView is one classified, visible member.
type MemberView struct {
	Member          domain.Member
	ManagerName     string
	EnrollmentCount int
	status.Classification
}

// CourseRow summarises one visible course.
type CourseRow struct {
	Course      domain.Course
	Hours       float64
	Enrollments int
	Finished    int
	Mandatory   int
}

// EventRow summarises one visible event. ExpectedAttendance is a seeded
// estimate, stable for a given event id and registration count.
type EventRow struct {
	Event              domain.Event
	Registered         int
	ExpectedAttendance int
}

type DashboardResponse struct {
	Persona domain.Persona
	Now     time.Time
	Flags   []string

	Dataset       scope.Dataset
	Members       []MemberView
	StatusCounts  map[status.General]int
	KPIs          []kpi.Result
	Leaders       []leader.Metrics
	Leaderboard   []leader.Metrics
	Actions       []leader.ActionItem
	LowEngagement []status.LowEngagementItem
	Ranking       []leader.MemberRankingItem
	Courses       []CourseRow
	Events        []EventRow
}
