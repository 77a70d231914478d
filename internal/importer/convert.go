package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/teamlens/internal/domain"
)

// Convert turns a validated schema into a snapshot. Call ValidateImportSchema
// first; Convert assumes the schema is valid. Records without an id get a
// fresh UUID.
func Convert(schema *ImportSchema) domain.Snapshot {
	var snap domain.Snapshot

	for _, e := range schema.Enrollments {
		status := domain.EnrollmentStatus(domain.CoalesceStr(e.Status, string(domain.StatusEnrolled)))
		snap.Enrollments = append(snap.Enrollments, domain.Enrollment{
			ID:           idOrNew(e.ID),
			MemberID:     e.MemberID,
			CourseID:     e.CourseID,
			Type:         domain.EnrollmentType(e.Type),
			IsRegulatory: e.IsRegulatory,
			DueDate:      parseOptionalTime(e.DueDate),
			Progress:     e.Progress,
			Status:       status,
		})
	}
	byMember := domain.EnrollmentsByMember(snap.Enrollments)

	for _, m := range schema.Members {
		member := domain.Member{
			ID:              idOrNew(m.ID),
			Name:            m.Name,
			JobTitle:        m.JobTitle,
			OverallProgress: m.OverallProgress,
			EnrollmentIDs:   m.EnrollmentIDs,
			TrailIDs:        m.TrailIDs,
			EventIDs:        m.EventIDs,
			ChannelIDs:      m.ChannelIDs,
			PulseIDs:        m.PulseIDs,
		}
		if m.ManagerID != nil && *m.ManagerID != "" {
			id := *m.ManagerID
			member.ManagerID = &id
		}
		if t := parseOptionalTime(m.LastAccess); t != nil {
			member.LastAccess = *t
		}
		deriveMemberDefaults(&member, m, byMember[member.ID])
		snap.Members = append(snap.Members, member)
	}

	for _, c := range schema.Courses {
		snap.Courses = append(snap.Courses, domain.Course{ID: idOrNew(c.ID), Title: c.Title, Duration: c.Duration, Skills: c.Skills})
	}
	for _, t := range schema.Trails {
		snap.Trails = append(snap.Trails, domain.Trail{
			ID:          idOrNew(t.ID),
			Title:       t.Title,
			CourseIDs:   t.CourseIDs,
			PulseIDs:    t.PulseIDs,
			IsMandatory: t.IsMandatory,
			DueDate:     parseOptionalTime(t.DueDate),
			Skills:      t.Skills,
		})
	}
	for _, c := range schema.Channels {
		snap.Channels = append(snap.Channels, domain.Channel{ID: idOrNew(c.ID), Title: c.Title, PulseIDs: c.PulseIDs})
	}
	for _, p := range schema.Pulses {
		snap.Pulses = append(snap.Pulses, domain.Pulse{ID: idOrNew(p.ID), Title: p.Title, ChannelID: p.ChannelID, Duration: p.Duration})
	}
	for _, e := range schema.Events {
		ev := domain.Event{ID: idOrNew(e.ID), Title: e.Title, Duration: e.Duration, Capacity: e.Capacity}
		if t := parseOptionalTime(e.Date); t != nil {
			ev.Date = *t
		}
		snap.Events = append(snap.Events, ev)
	}
	for _, r := range schema.Ranking {
		snap.Ranking = append(snap.Ranking, domain.RankingEntry{MemberID: r.MemberID, Points: r.Points})
	}
	for _, p := range schema.Personas {
		snap.Personas = append(snap.Personas, domain.Persona{
			ID:               p.ID,
			Name:             p.Name,
			Role:             domain.Role(p.Role),
			ManagedLeaderIDs: p.ManagedLeaderIDs,
		})
	}
	return snap
}

// deriveMemberDefaults fills enrollment ids and counters the file left out.
func deriveMemberDefaults(member *domain.Member, in MemberImport, enrollments []domain.Enrollment) {
	if len(member.EnrollmentIDs) == 0 {
		for _, e := range enrollments {
			member.EnrollmentIDs = append(member.EnrollmentIDs, e.ID)
		}
	}

	member.TotalCourses = domain.FromPtrWithDefault(len(enrollments), in.TotalCourses)
	done := 0
	for _, e := range enrollments {
		if e.IsDone() {
			done++
		}
	}
	member.CoursesCompleted = domain.FromPtrWithDefault(done, in.CoursesCompleted)
	member.TotalTrails = domain.FromPtrWithDefault(len(member.TrailIDs), in.TotalTrails)
	member.TrailsCompleted = domain.FromPtrWithDefault(0, in.TrailsCompleted)
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func parseOptionalTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := ParseFlexibleTime(*s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
