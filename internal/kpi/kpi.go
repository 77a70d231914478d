// Package kpi rolls the scoped dataset up into the five company KPIs and
// compares each against its benchmark.
package kpi

import (
	"fmt"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
)

type ID string

const (
	TotalEnrollments    ID = "total_enrollments"
	ActiveMemberRate    ID = "active_member_rate"
	CompletionRate      ID = "completion_rate"
	AverageHours        ID = "average_hours"
	MandatoryCompletion ID = "mandatory_completion"
)

// Order is the display order of the KPI list.
var Order = []ID{TotalEnrollments, ActiveMemberRate, CompletionRate, AverageHours, MandatoryCompletion}

var labels = map[ID]string{
	TotalEnrollments:    "Total enrollments",
	ActiveMemberRate:    "Active members",
	CompletionRate:      "Completion rate",
	AverageHours:        "Avg. hours per member",
	MandatoryCompletion: "Mandatory completion",
}

// Label returns the display label for id.
func Label(id ID) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return string(id)
}

const (
	NotAvailable = "N/A"
	EmptyNote    = "No members in the current scope"

	// ActiveWithinDays bounds the access recency counted as active.
	ActiveWithinDays = 30
)

type Result struct {
	ID      ID
	Label   string
	Value   string
	Raw     float64
	Context string
	Trend   *Trend
	// NotApplicable marks results whose Value is N/A.
	NotApplicable bool
}

// Input is the scoped working set the KPIs are computed from.
type Input struct {
	Members     []domain.Member
	Courses     []domain.Course
	Trails      []domain.Trail
	Pulses      []domain.Pulse
	Enrollments []domain.Enrollment
	Now         time.Time
}

// Compute returns the five KPIs in Order. Trends are attached only when
// benchmarkEnabled is set and a benchmark exists for the KPI.
func Compute(in Input, benchmarks Benchmarks, benchmarkEnabled bool) []Result {
	if len(in.Members) == 0 {
		return emptyResults()
	}

	members := float64(len(in.Members))
	results := []Result{
		totalEnrollments(in),
		activeMemberRate(in),
		completionRate(in),
		averageHours(in),
		mandatoryCompletion(in),
	}

	if !benchmarkEnabled {
		return results
	}
	for i := range results {
		r := &results[i]
		if r.NotApplicable {
			continue
		}
		bench, ok := benchmarks[r.ID]
		if !ok {
			continue
		}
		current := r.Raw
		if r.ID == TotalEnrollments {
			// Benchmarked per member so scopes of different sizes compare.
			current = r.Raw / members
		}
		r.Trend = NewTrend(r.ID, current, bench)
	}
	return results
}

func emptyResults() []Result {
	out := make([]Result, len(Order))
	for i, id := range Order {
		out[i] = Result{
			ID:            id,
			Label:         Label(id),
			Value:         NotAvailable,
			Context:       EmptyNote,
			NotApplicable: true,
		}
	}
	return out
}

func totalEnrollments(in Input) Result {
	trailEnrollments := 0
	for _, m := range in.Members {
		trailEnrollments += len(m.TrailIDs)
	}
	total := len(in.Enrollments) + trailEnrollments
	return Result{
		ID:      TotalEnrollments,
		Label:   Label(TotalEnrollments),
		Value:   fmt.Sprintf("%d", total),
		Raw:     float64(total),
		Context: fmt.Sprintf("%d course + %d trail enrollments across %d trails", len(in.Enrollments), trailEnrollments, len(in.Trails)),
	}
}

func activeMemberRate(in Input) Result {
	active := 0
	for _, m := range in.Members {
		if domain.DaysSince(m.LastAccess, in.Now) <= ActiveWithinDays {
			active++
		}
	}
	rate := percent(active, len(in.Members))
	return Result{
		ID:      ActiveMemberRate,
		Label:   Label(ActiveMemberRate),
		Value:   formatPercent(rate),
		Raw:     rate,
		Context: fmt.Sprintf("%d of %d members accessed in the last %d days", active, len(in.Members), ActiveWithinDays),
	}
}

func completionRate(in Input) Result {
	if len(in.Enrollments) == 0 {
		return notApplicable(CompletionRate, "No enrollments in the current scope")
	}
	finished := 0
	for _, e := range in.Enrollments {
		if e.IsFinished() {
			finished++
		}
	}
	rate := percent(finished, len(in.Enrollments))
	return Result{
		ID:      CompletionRate,
		Label:   Label(CompletionRate),
		Value:   formatPercent(rate),
		Raw:     rate,
		Context: fmt.Sprintf("%d of %d enrollments finished", finished, len(in.Enrollments)),
	}
}

func averageHours(in Input) Result {
	courses := domain.CourseIndex(in.Courses)
	pulses := domain.PulseIndex(in.Pulses)

	var courseHours float64
	for _, e := range in.Enrollments {
		if !e.IsFinished() {
			continue
		}
		if c, ok := courses[e.CourseID]; ok {
			courseHours += domain.ParseDurationHours(c.Duration)
		}
	}
	var pulseHours float64
	for _, m := range in.Members {
		for _, id := range m.PulseIDs {
			if p, ok := pulses[id]; ok {
				pulseHours += domain.ParseDurationHours(p.Duration)
			}
		}
	}

	avg := (courseHours + pulseHours) / float64(len(in.Members))
	return Result{
		ID:      AverageHours,
		Label:   Label(AverageHours),
		Value:   formatHours(avg),
		Raw:     avg,
		Context: fmt.Sprintf("%s from courses, %s from pulses", formatHours(courseHours), formatHours(pulseHours)),
	}
}

func mandatoryCompletion(in Input) Result {
	mandatory, finished := 0, 0
	for _, e := range in.Enrollments {
		if !e.IsMandatory() {
			continue
		}
		mandatory++
		if e.IsFinished() {
			finished++
		}
	}
	if mandatory == 0 {
		return notApplicable(MandatoryCompletion, "No mandatory enrollments in the current scope")
	}
	rate := percent(finished, mandatory)
	return Result{
		ID:      MandatoryCompletion,
		Label:   Label(MandatoryCompletion),
		Value:   formatPercent(rate),
		Raw:     rate,
		Context: fmt.Sprintf("%d of %d mandatory enrollments finished", finished, mandatory),
	}
}

func notApplicable(id ID, context string) Result {
	return Result{ID: id, Label: Label(id), Value: NotAvailable, Context: context, NotApplicable: true}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func formatPercent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func formatHours(v float64) string { return fmt.Sprintf("%.1fh", v) }
