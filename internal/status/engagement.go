package status

import (
	"cmp"
	"slices"

	"github.com/alexanderramin/teamlens/internal/domain"
)

// LowEngagementItem is one row of the "low engagement, free enrollments" list.
type LowEngagementItem struct {
	MemberID        string
	Name            string
	JobTitle        string
	OverallProgress float64
	DaysSinceAccess int
	OpenFree        int
}

// LowEngagementFree lists members classified Low who still have unfinished
// free enrollments, least recently active first.
func LowEngagementFree(members []domain.Member, classes map[string]Classification, enrollments []domain.Enrollment) []LowEngagementItem {
	openFree := make(map[string]int)
	for _, e := range enrollments {
		if e.Type == domain.EnrollmentFree && !e.IsDone() {
			openFree[e.MemberID]++
		}
	}

	var out []LowEngagementItem
	for _, m := range members {
		c, ok := classes[m.ID]
		if !ok || c.Engagement != EngagementLow || openFree[m.ID] == 0 {
			continue
		}
		out = append(out, LowEngagementItem{
			MemberID:        m.ID,
			Name:            m.Name,
			JobTitle:        m.JobTitle,
			OverallProgress: m.OverallProgress,
			DaysSinceAccess: c.DaysSinceAccess,
			OpenFree:        openFree[m.ID],
		})
	}
	slices.SortStableFunc(out, func(a, b LowEngagementItem) int {
		if c := cmp.Compare(b.DaysSinceAccess, a.DaysSinceAccess); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
