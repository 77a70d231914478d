package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/alexanderramin/teamlens/internal/app"
	"github.com/alexanderramin/teamlens/internal/leader"
	"github.com/alexanderramin/teamlens/internal/status"
	"github.com/alexanderramin/teamlens/internal/table"
)

// Table specs for every list surface. Each breaks ties on name so repeated
// recomputes list equal rows in the same order.

var MemberTable = table.Spec[app.MemberView]{
	Search: func(v app.MemberView) []string {
		return []string{v.Member.Name, v.Member.JobTitle, v.ManagerName}
	},
	Keys: map[string]table.Key[app.MemberView]{
		"name":       table.StringKey(func(v app.MemberView) string { return v.Member.Name }),
		"title":      table.StringKey(func(v app.MemberView) string { return v.Member.JobTitle }),
		"manager":    table.StringKey(func(v app.MemberView) string { return v.ManagerName }),
		"status":     table.NumberKey(func(v app.MemberView) int { return status.MetaFor(v.General).Priority }),
		"engagement": table.NumberKey(func(v app.MemberView) int { return status.EngagementMetaFor(v.Engagement).Priority }),
		"progress":   table.NumberKey(func(v app.MemberView) float64 { return v.Member.OverallProgress }),
		"access":     table.NumberKey(func(v app.MemberView) int { return v.DaysSinceAccess }),
		"due": {
			Compare: func(a, b app.MemberView) int { return cmp.Compare(*a.NextDueInDays, *b.NextDueInDays) },
			Present: func(v app.MemberView) bool { return v.NextDueInDays != nil },
		},
		"enrollments": table.NumberKey(func(v app.MemberView) int { return v.EnrollmentCount }),
	},
	TieBreak: func(a, b app.MemberView) int { return compareFold(a.Member.Name, b.Member.Name) },
}

var LeaderTable = table.Spec[leader.Metrics]{
	Search: func(m leader.Metrics) []string { return []string{m.Name, m.JobTitle} },
	Keys: map[string]table.Key[leader.Metrics]{
		"name":       table.StringKey(func(m leader.Metrics) string { return m.Name }),
		"team":       table.NumberKey(func(m leader.Metrics) int { return m.TeamSize }),
		"completion": table.NumberKey(func(m leader.Metrics) float64 { return m.TeamCompletionRate }),
		"pending":    table.NumberKey(func(m leader.Metrics) int { return m.PendingTasks }),
		"engagement": table.NumberKey(func(m leader.Metrics) int { return m.EngagementScore }),
		"actions":    table.NumberKey(func(m leader.Metrics) int { return m.ActionsThisWeek }),
		"access":     table.NumberKey(func(m leader.Metrics) int { return m.DaysSinceAccess }),
	},
	TieBreak: func(a, b leader.Metrics) int { return compareFold(a.Name, b.Name) },
}

var CourseTable = table.Spec[app.CourseRow]{
	Search: func(r app.CourseRow) []string { return append([]string{r.Course.Title}, r.Course.Skills...) },
	Keys: map[string]table.Key[app.CourseRow]{
		"title":       table.StringKey(func(r app.CourseRow) string { return r.Course.Title }),
		"hours":       table.NumberKey(func(r app.CourseRow) float64 { return r.Hours }),
		"enrollments": table.NumberKey(func(r app.CourseRow) int { return r.Enrollments }),
		"finished":    table.NumberKey(func(r app.CourseRow) int { return r.Finished }),
		"mandatory":   table.NumberKey(func(r app.CourseRow) int { return r.Mandatory }),
	},
	TieBreak: func(a, b app.CourseRow) int { return compareFold(a.Course.Title, b.Course.Title) },
}

var RankingTable = table.Spec[leader.MemberRankingItem]{
	Search: func(r leader.MemberRankingItem) []string { return []string{r.Name, r.JobTitle} },
	Keys: map[string]table.Key[leader.MemberRankingItem]{
		"position": table.NumberKey(func(r leader.MemberRankingItem) int { return r.Position }),
		"name":     table.StringKey(func(r leader.MemberRankingItem) string { return r.Name }),
		"points":   table.NumberKey(func(r leader.MemberRankingItem) int { return r.Points }),
	},
	TieBreak: func(a, b leader.MemberRankingItem) int { return compareFold(a.Name, b.Name) },
}

var EventTable = table.Spec[app.EventRow]{
	Search: func(r app.EventRow) []string { return []string{r.Event.Title} },
	Keys: map[string]table.Key[app.EventRow]{
		"title":      table.StringKey(func(r app.EventRow) string { return r.Event.Title }),
		"date":       table.NumberKey(func(r app.EventRow) int64 { return r.Event.Date.Unix() }),
		"registered": table.NumberKey(func(r app.EventRow) int { return r.Registered }),
		"capacity":   table.NumberKey(func(r app.EventRow) int { return r.Event.Capacity }),
	},
	TieBreak: func(a, b app.EventRow) int { return compareFold(a.Event.Title, b.Event.Title) },
}

// SortKeys lists a spec's sortable keys for help text.
func SortKeys[T any](spec table.Spec[T]) []string {
	keys := make([]string, 0, len(spec.Keys))
	for k := range spec.Keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
