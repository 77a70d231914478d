// Package cornercase holds the debug transforms that reshape a snapshot
// before scoping, so edge layouts and empty states can be exercised on demand.
package cornercase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
)

type Name string

const (
	EmptyDataset          Name = "empty-dataset"
	LongNames             Name = "long-names"
	AllInactive           Name = "all-inactive"
	AllMandatoryOverdue   Name = "all-mandatory-overdue"
	StripMandatory        Name = "strip-mandatory"
	StripRegulatoryCourse Name = "strip-regulatory-course"
	ZeroProgress          Name = "zero-progress"
	FarFutureDueDates     Name = "far-future-due-dates"
	ClearMemberContent    Name = "clear-member-content"
	ClearRanking          Name = "clear-ranking"
)

// Order is the fixed application order.
var Order = []Name{
	EmptyDataset,
	LongNames,
	AllInactive,
	AllMandatoryOverdue,
	StripMandatory,
	StripRegulatoryCourse,
	ZeroProgress,
	FarFutureDueDates,
	ClearMemberContent,
	ClearRanking,
}

const (
	inactiveDays  = 45
	overdueDays   = 10
	farFutureDays = 5 * 365
	longSuffix    = " Extended-Name-For-Layout-Verification"
)

// Flags is the set of enabled transforms plus their parameters.
type Flags struct {
	Enabled map[Name]bool
	// RegulatoryCourseID is the course stripped by StripRegulatoryCourse.
	RegulatoryCourseID string
	// ClearedMemberIDs are the members emptied by ClearMemberContent.
	ClearedMemberIDs []string
}

// NewFlags enables the given transforms.
func NewFlags(names ...Name) Flags {
	f := Flags{Enabled: make(map[Name]bool, len(names))}
	for _, n := range names {
		f.Enabled[n] = true
	}
	return f
}

// On reports whether a transform is enabled.
func (f Flags) On(n Name) bool {
	return f.Enabled[n]
}

// Any reports whether at least one transform is enabled.
func (f Flags) Any() bool {
	for _, on := range f.Enabled {
		if on {
			return true
		}
	}
	return false
}

// ParseName validates a transform name.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Order {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown corner case %q (known: %s)", s, strings.Join(Names(), ", "))
}

// Names lists every transform name in application order.
func Names() []string {
	out := make([]string, len(Order))
	for i, n := range Order {
		out[i] = string(n)
	}
	return out
}

// Transform is one named, pure snapshot rewrite. Apply receives a private
// copy and may modify it freely.
type Transform struct {
	Name  Name
	Apply func(s *domain.Snapshot, f Flags, now time.Time)
}

var registry = map[Name]Transform{
	EmptyDataset:          {EmptyDataset, emptyDataset},
	LongNames:             {LongNames, longNames},
	AllInactive:           {AllInactive, allInactive},
	AllMandatoryOverdue:   {AllMandatoryOverdue, allMandatoryOverdue},
	StripMandatory:        {StripMandatory, stripMandatory},
	StripRegulatoryCourse: {StripRegulatoryCourse, stripRegulatoryCourse},
	ZeroProgress:          {ZeroProgress, zeroProgress},
	FarFutureDueDates:     {FarFutureDueDates, farFutureDueDates},
	ClearMemberContent:    {ClearMemberContent, clearMemberContent},
	ClearRanking:          {ClearRanking, clearRanking},
}

// Pipeline returns the enabled transforms in application order.
func Pipeline(f Flags) []Transform {
	var out []Transform
	for _, n := range Order {
		if f.On(n) {
			out = append(out, registry[n])
		}
	}
	return out
}

// Apply runs the enabled transforms over a copy of snap. The input is never
// modified. EmptyDataset short-circuits the rest of the pipeline.
func Apply(snap domain.Snapshot, f Flags, now time.Time) domain.Snapshot {
	if !f.Any() {
		return snap
	}
	out := snap.Clone()
	for _, t := range Pipeline(f) {
		t.Apply(&out, f, now)
		if t.Name == EmptyDataset {
			break
		}
	}
	return out
}

// ApplyOne runs a single transform over a copy of snap.
func ApplyOne(snap domain.Snapshot, n Name, f Flags, now time.Time) domain.Snapshot {
	out := snap.Clone()
	if t, ok := registry[n]; ok {
		t.Apply(&out, f, now)
	}
	return out
}

// Personas survive so the viewer can still be resolved.
func emptyDataset(s *domain.Snapshot, _ Flags, _ time.Time) {
	*s = domain.Snapshot{Personas: s.Personas}
}

func longNames(s *domain.Snapshot, _ Flags, _ time.Time) {
	for i := range s.Members {
		s.Members[i].Name += longSuffix
		s.Members[i].JobTitle += longSuffix
	}
	for i := range s.Courses {
		s.Courses[i].Title += longSuffix
	}
	for i := range s.Trails {
		s.Trails[i].Title += longSuffix
	}
	for i := range s.Events {
		s.Events[i].Title += longSuffix
	}
	for i := range s.Channels {
		s.Channels[i].Title += longSuffix
	}
	for i := range s.Pulses {
		s.Pulses[i].Title += longSuffix
	}
}

func allInactive(s *domain.Snapshot, _ Flags, now time.Time) {
	at := domain.DaysAgo(now, inactiveDays)
	for i := range s.Members {
		s.Members[i].LastAccess = at
	}
}

func allMandatoryOverdue(s *domain.Snapshot, _ Flags, now time.Time) {
	for i := range s.Enrollments {
		e := &s.Enrollments[i]
		if !e.IsMandatory() {
			continue
		}
		due := domain.StartOfDay(domain.DaysAgo(now, overdueDays))
		e.DueDate = &due
		if e.IsDone() {
			e.Progress = 90
		}
		if e.Status == domain.StatusFinished {
			e.Status = domain.StatusStarted
		}
	}
	for i := range s.Trails {
		t := &s.Trails[i]
		if !t.IsMandatory {
			continue
		}
		due := domain.StartOfDay(domain.DaysAgo(now, overdueDays))
		t.DueDate = &due
	}
}

func stripMandatory(s *domain.Snapshot, _ Flags, _ time.Time) {
	removeEnrollments(s, func(e domain.Enrollment) bool { return e.IsMandatory() })
	for i := range s.Trails {
		s.Trails[i].IsMandatory = false
		s.Trails[i].DueDate = nil
	}
}

func stripRegulatoryCourse(s *domain.Snapshot, f Flags, _ time.Time) {
	if f.RegulatoryCourseID == "" {
		return
	}
	removeEnrollments(s, func(e domain.Enrollment) bool { return e.CourseID == f.RegulatoryCourseID })
}

func zeroProgress(s *domain.Snapshot, _ Flags, _ time.Time) {
	for i := range s.Members {
		s.Members[i].OverallProgress = 0
		s.Members[i].CoursesCompleted = 0
		s.Members[i].TrailsCompleted = 0
	}
	for i := range s.Enrollments {
		s.Enrollments[i].Progress = 0
	}
}

func farFutureDueDates(s *domain.Snapshot, _ Flags, now time.Time) {
	due := domain.StartOfDay(now).AddDate(0, 0, farFutureDays)
	for i := range s.Enrollments {
		if s.Enrollments[i].DueDate != nil {
			d := due
			s.Enrollments[i].DueDate = &d
		}
	}
	for i := range s.Trails {
		if s.Trails[i].DueDate != nil {
			d := due
			s.Trails[i].DueDate = &d
		}
	}
}

func clearMemberContent(s *domain.Snapshot, f Flags, _ time.Time) {
	if len(f.ClearedMemberIDs) == 0 {
		return
	}
	cleared := domain.IDSet(f.ClearedMemberIDs)
	for i := range s.Members {
		m := &s.Members[i]
		if !cleared[m.ID] {
			continue
		}
		m.EnrollmentIDs = nil
		m.TrailIDs = nil
		m.EventIDs = nil
		m.ChannelIDs = nil
		m.PulseIDs = nil
		m.TotalCourses, m.CoursesCompleted = 0, 0
		m.TotalTrails, m.TrailsCompleted = 0, 0
		m.OverallProgress = 0
		m.ContentCleared = true
	}
	removeEnrollments(s, func(e domain.Enrollment) bool { return cleared[e.MemberID] })
}

func clearRanking(s *domain.Snapshot, _ Flags, _ time.Time) {
	s.Ranking = nil
}

// removeEnrollments drops matching enrollments and the member references to them.
func removeEnrollments(s *domain.Snapshot, drop func(domain.Enrollment) bool) {
	removed := make(map[string]bool)
	kept := s.Enrollments[:0]
	for _, e := range s.Enrollments {
		if drop(e) {
			removed[e.ID] = true
			continue
		}
		kept = append(kept, e)
	}
	s.Enrollments = kept
	if len(removed) == 0 {
		return
	}
	for i := range s.Members {
		ids := s.Members[i].EnrollmentIDs[:0]
		for _, id := range s.Members[i].EnrollmentIDs {
			if !removed[id] {
				ids = append(ids, id)
			}
		}
		s.Members[i].EnrollmentIDs = ids
	}
}

// EnabledNames lists the enabled transform names, sorted, for logging.
func (f Flags) EnabledNames() []string {
	var out []string
	for n, on := range f.Enabled {
		if on {
			out = append(out, string(n))
		}
	}
	sort.Strings(out)
	return out
}
