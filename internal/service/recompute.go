package service

import (
	"math"
	"time"

	"github.com/alexanderramin/teamlens/internal/app"
	"github.com/alexanderramin/teamlens/internal/cornercase"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/kpi"
	"github.com/alexanderramin/teamlens/internal/leader"
	"github.com/alexanderramin/teamlens/internal/scope"
	"github.com/alexanderramin/teamlens/internal/status"
)

// AllTeamsPersona is the unrestricted view used when no persona is chosen.
var AllTeamsPersona = domain.Persona{Name: "All teams", Role: domain.RoleDirector}

// Recompute derives the whole dashboard from raw for one persona. It never
// modifies raw.
func Recompute(raw domain.Snapshot, persona domain.Persona, req app.DashboardRequest, benchmarks kpi.Benchmarks, now time.Time) *app.DashboardResponse {
	snap := cornercase.Apply(raw, req.Flags, now)
	ds := scope.Resolve(snap, persona, req.SelectedLeaderIDs)

	members, classes := classifyMembers(snap, ds, now)

	counts := make(map[status.General]int)
	for _, m := range members {
		counts[m.General]++
	}

	metrics := leaderMetrics(snap, ds, persona, now)

	return &app.DashboardResponse{
		Persona:      persona,
		Now:          now,
		Flags:        req.Flags.EnabledNames(),
		Dataset:      ds,
		Members:      members,
		StatusCounts: counts,
		KPIs: kpi.Compute(kpi.Input{
			Members:     ds.Members,
			Courses:     ds.Courses,
			Trails:      ds.Trails,
			Pulses:      ds.Pulses,
			Enrollments: ds.Enrollments,
			Now:         now,
		}, benchmarks, req.BenchmarkEnabled),
		Leaders:       metrics,
		Leaderboard:   leader.RankLeaders(metrics, req.LeaderSort),
		Actions:       leader.RankActions(metrics),
		LowEngagement: status.LowEngagementFree(ds.Members, classes, ds.Enrollments),
		Ranking:       leader.RankMembers(ds.Ranking, ds.Members),
		Courses:       CourseRows(ds),
		Events:        EventRows(ds),
	}
}

func classifyMembers(snap domain.Snapshot, ds scope.Dataset, now time.Time) ([]app.MemberView, map[string]status.Classification) {
	names := make(map[string]string, len(snap.Members))
	for _, m := range snap.Members {
		names[m.ID] = m.Name
	}
	byMember := domain.EnrollmentsByMember(ds.Enrollments)
	trails := domain.TrailIndex(ds.Trails)

	views := make([]app.MemberView, 0, len(ds.Members))
	classes := make(map[string]status.Classification, len(ds.Members))
	for _, m := range ds.Members {
		own := byMember[m.ID]
		c := status.Classify(m, own, domain.ResolveTrails(m.TrailIDs, trails), now)
		classes[m.ID] = c

		view := app.MemberView{Member: m, EnrollmentCount: len(own), Classification: c}
		if m.ManagerID != nil {
			view.ManagerName = names[*m.ManagerID]
		}
		views = append(views, view)
	}
	return views, classes
}

// leaderMetrics scores the leaders in view. Teams always come from the full
// roster so drilling into one leader does not change another's numbers.
func leaderMetrics(snap domain.Snapshot, ds scope.Dataset, persona domain.Persona, now time.Time) []leader.Metrics {
	managed := persona.ManagedLeaderIDs
	if ds.ActiveLeaderIDs != nil {
		if len(ds.ActiveLeaderIDs) == 0 {
			return nil
		}
		managed = ds.ActiveLeaderIDs
	}
	return leader.ComputeMetrics(snap.Leaders(), snap.Members, managed, now)
}

// CourseRows summarises enrollments per visible course.
func CourseRows(ds scope.Dataset) []app.CourseRow {
	rows := make([]app.CourseRow, 0, len(ds.Courses))
	index := make(map[string]int, len(ds.Courses))
	for i, c := range ds.Courses {
		index[c.ID] = i
		rows = append(rows, app.CourseRow{Course: c, Hours: domain.ParseDurationHours(c.Duration)})
	}
	for _, e := range ds.Enrollments {
		i, ok := index[e.CourseID]
		if !ok {
			continue
		}
		rows[i].Enrollments++
		if e.IsFinished() {
			rows[i].Finished++
		}
		if e.IsMandatory() {
			rows[i].Mandatory++
		}
	}
	return rows
}

// EventRows counts visible registrations per event and attaches a seeded
// attendance estimate between 60% and 100% of them.
func EventRows(ds scope.Dataset) []app.EventRow {
	registered := make(map[string]int)
	for _, m := range ds.Members {
		for _, id := range m.EventIDs {
			registered[id]++
		}
	}
	rows := make([]app.EventRow, 0, len(ds.Events))
	for _, ev := range ds.Events {
		n := registered[ev.ID]
		ratio := 0.6 + 0.4*domain.SeededRatio(ev.ID)
		rows = append(rows, app.EventRow{
			Event:              ev,
			Registered:         n,
			ExpectedAttendance: int(math.Round(float64(n) * ratio)),
		})
	}
	return rows
}
