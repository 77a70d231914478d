// Package status classifies members by compliance status and engagement level.
package status

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
)

type General string

const (
	AtRisk    General = "at_risk"
	Attention General = "attention"
	OnTrack   General = "on_track"
	Inactive  General = "inactive"
	Empty     General = "empty"
)

type Engagement string

const (
	EngagementHigh   Engagement = "high"
	EngagementMedium Engagement = "medium"
	EngagementLow    Engagement = "low"
)

// Thresholds, in days.
const (
	InactiveAfterDays  = 30
	AttentionAfterDays = 15
	DueSoonDays        = 7
)

// Diagnostics carries the human-readable reasoning behind a classification.
type Diagnostics struct {
	NextDueDateText string
	NextDueInDays   *int
	LastAccessText  string
	DaysSinceAccess int
	MandatoryCount  int
	OverdueCount    int
	DueSoonCount    int
}

type Classification struct {
	General    General
	Engagement Engagement
	Diagnostics
}

// obligation is one outstanding mandatory item with a due date.
type obligation struct {
	diff int
}

// Classify derives status and engagement for one member. enrollments should be
// the member's own; trails are the resolved trails the member follows.
func Classify(m domain.Member, enrollments []domain.Enrollment, trails []domain.Trail, now time.Time) Classification {
	daysSince := domain.DaysSince(m.LastAccess, now)
	obligations, mandatory := collectObligations(m.ID, enrollments, trails, now)

	diag := Diagnostics{
		DaysSinceAccess: daysSince,
		LastAccessText:  lastAccessText(m.LastAccess, daysSince),
		MandatoryCount:  mandatory,
	}

	minDiff := math.MaxInt
	for _, o := range obligations {
		if o.diff < 0 {
			diag.OverdueCount++
		} else if o.diff <= DueSoonDays {
			diag.DueSoonCount++
		}
		if o.diff < minDiff {
			minDiff = o.diff
		}
	}
	if len(obligations) > 0 {
		diag.NextDueInDays = &minDiff
	}
	diag.NextDueDateText = nextDueText(mandatory, diag.NextDueInDays)

	return Classification{
		General:     general(m, diag),
		Engagement:  EngagementFor(m.OverallProgress, daysSince),
		Diagnostics: diag,
	}
}

func collectObligations(memberID string, enrollments []domain.Enrollment, trails []domain.Trail, now time.Time) ([]obligation, int) {
	var out []obligation
	mandatory := 0
	for _, e := range enrollments {
		if e.MemberID != memberID || !e.IsMandatory() {
			continue
		}
		mandatory++
		if e.DueDate == nil || e.IsDone() {
			continue
		}
		out = append(out, obligation{diff: domain.DayDiff(*e.DueDate, now)})
	}
	for _, t := range trails {
		if !t.IsMandatory {
			continue
		}
		mandatory++
		if !t.HasDeadline() {
			continue
		}
		out = append(out, obligation{diff: domain.DayDiff(*t.DueDate, now)})
	}
	return out, mandatory
}

func general(m domain.Member, d Diagnostics) General {
	if m.ContentCleared {
		return Empty
	}
	switch {
	case d.OverdueCount > 0:
		return AtRisk
	case d.DaysSinceAccess > InactiveAfterDays:
		return Inactive
	case d.DueSoonCount > 0 || d.DaysSinceAccess > AttentionAfterDays:
		return Attention
	default:
		return OnTrack
	}
}

// EngagementFor buckets a member by progress and access recency.
func EngagementFor(progress float64, daysSince int) Engagement {
	switch {
	case progress >= 60 && daysSince <= AttentionAfterDays:
		return EngagementHigh
	case progress >= 30 && daysSince <= InactiveAfterDays:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

func nextDueText(mandatory int, next *int) string {
	if mandatory == 0 {
		return "No mandatory obligation"
	}
	if next == nil {
		return "No pending deadline"
	}
	d := *next
	switch {
	case d < -1:
		return fmt.Sprintf("Overdue by %d days", -d)
	case d == -1:
		return "Overdue by 1 day"
	case d == 0:
		return "Due today"
	case d == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", d)
	}
}

func lastAccessText(last time.Time, days int) string {
	switch {
	case last.IsZero():
		return "Never accessed"
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
