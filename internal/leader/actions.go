package leader

import (
	"fmt"
	"slices"
)

type Severity string

const (
	High   Severity = "high"
	Medium Severity = "medium"
	Low    Severity = "low"
)

var severityRank = map[Severity]int{High: 0, Medium: 1, Low: 2}

type Kind string

const (
	KindInactive          Kind = "inactive"
	KindLowFrequency      Kind = "low_frequency"
	KindLowTeamCompletion Kind = "low_team_completion"
	KindManyPendingTasks  Kind = "many_pending_tasks"
	KindLowEngagement     Kind = "low_engagement"
)

// ActionFeedSize caps the ranked action feed.
const ActionFeedSize = 8

type ActionItem struct {
	LeaderID   string
	LeaderName string
	Kind       Kind
	Title      string
	Detail     string
	Severity   Severity
}

// DetectActions lists every issue found for one leader, in detection order.
func DetectActions(m Metrics) []ActionItem {
	var items []ActionItem
	add := func(kind Kind, title, detail string, sev Severity) {
		items = append(items, ActionItem{
			LeaderID:   m.LeaderID,
			LeaderName: m.Name,
			Kind:       kind,
			Title:      title,
			Detail:     detail,
			Severity:   sev,
		})
	}

	switch {
	case m.DaysSinceAccess > inactiveAfterDays:
		add(KindInactive, "Inactive", fmt.Sprintf("No access for %d days", m.DaysSinceAccess), High)
	case m.DaysSinceAccess > lowFrequencyAfterDays:
		add(KindLowFrequency, "Low Frequency", fmt.Sprintf("Last access %d days ago", m.DaysSinceAccess), Medium)
	}
	if m.TeamCompletionRate < lowCompletionRate {
		add(KindLowTeamCompletion, "Low Team Completion", fmt.Sprintf("Team average progress %.0f%%", m.TeamCompletionRate), High)
	}
	if m.PendingTasks > manyPendingTasks {
		add(KindManyPendingTasks, "Many Pending Tasks", fmt.Sprintf("%d tasks pending across the team", m.PendingTasks), Medium)
	}
	switch {
	case m.EngagementScore < criticalEngagement:
		add(KindLowEngagement, "Low Engagement", fmt.Sprintf("Engagement score %d", m.EngagementScore), High)
	case m.EngagementScore < lowEngagementScore:
		add(KindLowEngagement, "Low Engagement", fmt.Sprintf("Engagement score %d", m.EngagementScore), Medium)
	}
	return items
}

// RankActions collects the issues of every leader, orders them by severity
// and keeps the top ActionFeedSize. Items of equal severity keep leader order.
func RankActions(metrics []Metrics) []ActionItem {
	var all []ActionItem
	for _, m := range metrics {
		all = append(all, DetectActions(m)...)
	}
	slices.SortStableFunc(all, func(a, b ActionItem) int {
		return severityRank[a.Severity] - severityRank[b.Severity]
	})
	if len(all) > ActionFeedSize {
		all = all[:ActionFeedSize]
	}
	return all
}
