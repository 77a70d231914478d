// Package leader scores each team leader, detects the issues worth acting on
// and ranks leaders and members for the dashboard.
package leader

import (
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
)

// Score penalties and thresholds.
const (
	maxScore = 100

	inactiveAfterDays     = 7
	lowFrequencyAfterDays = 3
	inactivePenalty       = 50
	lowFrequencyPenalty   = 25

	lowCompletionRate         = 30
	moderateCompletionRate    = 50
	lowCompletionPenalty      = 20
	moderateCompletionPenalty = 10

	manyPendingTasks     = 20
	lowEngagementScore   = 50
	criticalEngagement   = 30
	recentActivityWindow = 7
)

type Metrics struct {
	LeaderID           string
	Name               string
	JobTitle           string
	TeamSize           int
	TeamCompletionRate float64
	PendingTasks       int
	DaysSinceAccess    int
	EngagementScore    int
	// ActionsThisWeek counts the leader and team members who accessed the
	// platform within the last seven days.
	ActionsThisWeek int
}

// ComputeMetrics derives metrics for each leader. Teams are taken from
// allMembers, the unscoped roster, so a leader's numbers do not depend on the
// current drill-down. When managedLeaderIDs is non-empty only those leaders
// are reported.
func ComputeMetrics(leaders, allMembers []domain.Member, managedLeaderIDs []string, now time.Time) []Metrics {
	var managed map[string]bool
	if len(managedLeaderIDs) > 0 {
		managed = domain.IDSet(managedLeaderIDs)
	}

	teams := make(map[string][]domain.Member)
	for _, m := range allMembers {
		if m.ManagerID != nil {
			teams[*m.ManagerID] = append(teams[*m.ManagerID], m)
		}
	}

	var out []Metrics
	for _, l := range leaders {
		if managed != nil && !managed[l.ID] {
			continue
		}
		out = append(out, compute(l, teams[l.ID], now))
	}
	return out
}

func compute(l domain.Member, team []domain.Member, now time.Time) Metrics {
	m := Metrics{
		LeaderID:        l.ID,
		Name:            l.Name,
		JobTitle:        l.JobTitle,
		TeamSize:        len(team),
		DaysSinceAccess: domain.DaysSince(l.LastAccess, now),
	}

	var progress float64
	for _, member := range team {
		progress += member.OverallProgress
		m.PendingTasks += pending(member.TotalCourses, member.CoursesCompleted) + pending(member.TotalTrails, member.TrailsCompleted)
		if domain.DaysSince(member.LastAccess, now) <= recentActivityWindow {
			m.ActionsThisWeek++
		}
	}
	if len(team) > 0 {
		m.TeamCompletionRate = progress / float64(len(team))
	}
	if m.DaysSinceAccess <= recentActivityWindow {
		m.ActionsThisWeek++
	}

	m.EngagementScore = Score(m.DaysSinceAccess, m.TeamCompletionRate)
	return m
}

// Score starts at 100 and subtracts access and team-completion penalties,
// clamped to [0, 100].
func Score(daysSinceAccess int, teamCompletionRate float64) int {
	score := maxScore
	switch {
	case daysSinceAccess > inactiveAfterDays:
		score -= inactivePenalty
	case daysSinceAccess > lowFrequencyAfterDays:
		score -= lowFrequencyPenalty
	}
	switch {
	case teamCompletionRate < lowCompletionRate:
		score -= lowCompletionPenalty
	case teamCompletionRate < moderateCompletionRate:
		score -= moderateCompletionPenalty
	}
	return max(0, min(maxScore, score))
}

func pending(total, done int) int {
	return max(0, total-done)
}
