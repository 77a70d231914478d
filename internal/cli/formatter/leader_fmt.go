package formatter

import (
	"fmt"

	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/leader"
	"github.com/alexanderramin/teamlens/internal/status"
	"github.com/alexanderramin/teamlens/internal/table"
)

const teamProgressWidth = 10

// FormatLeaders renders one page of leader metrics.
func FormatLeaders(p table.Page[leader.Metrics]) string {
	headers := []string{"LEADER", "TITLE", "TEAM", "COMPLETION", "PENDING", "LAST ACCESS", "ENGAGEMENT", "ACTIVE 7D"}
	rows := make([][]string, 0, len(p.Items))
	for _, m := range p.Items {
		rows = append(rows, []string{
			Bold(Truncate(m.Name, nameWidth)),
			Truncate(m.JobTitle, nameWidth),
			fmt.Sprintf("%d", m.TeamSize),
			RenderProgress(m.TeamCompletionRate, teamProgressWidth),
			fmt.Sprintf("%d", m.PendingTasks),
			AccessText(m.DaysSinceAccess),
			engagementScore(m.EngagementScore),
			fmt.Sprintf("%d", m.ActionsThisWeek),
		})
	}
	return RenderTable(headers, rows) + PageFooter(p) + "\n"
}

// FormatLeaderboard renders the ranked top leaders.
func FormatLeaderboard(metrics []leader.Metrics, by leader.SortBy) string {
	if len(metrics) == 0 {
		return Dim("No leaders in view.") + "\n"
	}
	rows := make([][]string, 0, len(metrics))
	for i, m := range metrics {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i+1),
			Bold(m.Name),
			engagementScore(m.EngagementScore),
			fmt.Sprintf("%.0f%%", m.TeamCompletionRate),
			fmt.Sprintf("%d", m.ActionsThisWeek),
		})
	}
	return Dim("ranked by "+string(by)) + "\n" + RenderTable([]string{"RANK", "LEADER", "SCORE", "COMPLETION", "ACTIVE 7D"}, rows)
}

// FormatActions renders the prioritised action feed.
func FormatActions(items []leader.ActionItem) string {
	if len(items) == 0 {
		return StyleGreen.Render("✔ No actions needed") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{SeverityPill(a.Severity), Bold(a.Title), a.LeaderName, Dim(a.Detail)})
	}
	return RenderTable([]string{"SEVERITY", "ACTION", "LEADER", "DETAIL"}, rows)
}

// FormatLowEngagement renders members who are disengaged but still have open
// free enrollments.
func FormatLowEngagement(items []status.LowEngagementItem) string {
	if len(items) == 0 {
		return Dim("No low-engagement members with open free courses.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Bold(it.Name),
			it.JobTitle,
			RenderProgress(it.OverallProgress, memberProgressWidth),
			AccessText(it.DaysSinceAccess),
			fmt.Sprintf("%d", it.OpenFree),
		})
	}
	return RenderTable([]string{"MEMBER", "TITLE", "PROGRESS", "LAST ACCESS", "OPEN FREE"}, rows)
}

// FormatRanking renders one page of the points ranking.
func FormatRanking(p table.Page[leader.MemberRankingItem]) string {
	rows := make([][]string, 0, len(p.Items))
	for _, r := range p.Items {
		pos := fmt.Sprintf("%d", r.Position)
		if r.Position <= 3 {
			pos = StyleYellow.Render(pos)
		}
		rows = append(rows, []string{pos, Bold(r.Name), r.JobTitle, fmt.Sprintf("%d", r.Points)})
	}
	return RenderTable([]string{"POS", "MEMBER", "TITLE", "POINTS"}, rows) + PageFooter(p) + "\n"
}

// FormatCourses renders one page of course summaries.
func FormatCourses(p table.Page[contract.CourseRow]) string {
	rows := make([][]string, 0, len(p.Items))
	for _, c := range p.Items {
		mandatory := Dim("--")
		if c.Mandatory > 0 {
			mandatory = StyleYellow.Render(fmt.Sprintf("%d", c.Mandatory))
		}
		rows = append(rows, []string{
			Bold(Truncate(c.Course.Title, nameWidth)),
			FormatHours(c.Hours),
			fmt.Sprintf("%d", c.Enrollments),
			fmt.Sprintf("%d", c.Finished),
			mandatory,
		})
	}
	return RenderTable([]string{"COURSE", "DURATION", "ENROLLED", "FINISHED", "MANDATORY"}, rows) + PageFooter(p) + "\n"
}

// FormatEvents renders one page of event summaries.
func FormatEvents(p table.Page[contract.EventRow]) string {
	rows := make([][]string, 0, len(p.Items))
	for _, e := range p.Items {
		rows = append(rows, []string{
			Bold(Truncate(e.Event.Title, nameWidth)),
			HumanDate(e.Event.Date),
			fmt.Sprintf("%d", e.Registered),
			fmt.Sprintf("%d", e.ExpectedAttendance),
			fmt.Sprintf("%d", e.Event.Capacity),
		})
	}
	return RenderTable([]string{"EVENT", "DATE", "REGISTERED", "EXPECTED", "CAPACITY"}, rows) + PageFooter(p) + "\n"
}

func engagementScore(score int) string {
	text := fmt.Sprintf("%d", score)
	switch {
	case score >= 70:
		return StyleGreen.Render(text)
	case score >= 40:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}
