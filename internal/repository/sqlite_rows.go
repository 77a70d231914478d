package repository

import (
	"database/sql"
	"fmt"

	"github.com/alexanderramin/teamlens/internal/domain"
)

// encodeAll encodes several id lists in order, stopping at the first failure.
func encodeAll(lists ...[]string) ([]any, error) {
	out := make([]any, len(lists))
	for i, ids := range lists {
		raw, err := encodeIDs(ids)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return out, nil
}

func memberValues(m domain.Member) ([]any, error) {
	lists, err := encodeAll(m.EnrollmentIDs, m.TrailIDs, m.EventIDs, m.ChannelIDs, m.PulseIDs)
	if err != nil {
		return nil, err
	}
	var manager any
	if m.ManagerID != nil && *m.ManagerID != "" {
		manager = *m.ManagerID
	}
	v := []any{m.ID, m.Name, m.JobTitle, manager, m.OverallProgress, timeToString(m.LastAccess)}
	v = append(v, lists...)
	return append(v, m.TotalCourses, m.CoursesCompleted, m.TotalTrails, m.TrailsCompleted), nil
}

func scanMember(rows *sql.Rows) (domain.Member, error) {
	var m domain.Member
	var manager, lastAccess sql.NullString
	var enrollments, trails, events, channels, pulses string
	err := rows.Scan(
		&m.ID, &m.Name, &m.JobTitle, &manager, &m.OverallProgress, &lastAccess,
		&enrollments, &trails, &events, &channels, &pulses,
		&m.TotalCourses, &m.CoursesCompleted, &m.TotalTrails, &m.TrailsCompleted,
	)
	if err != nil {
		return m, fmt.Errorf("scanning member: %w", err)
	}
	if manager.Valid {
		id := manager.String
		m.ManagerID = &id
	}
	m.LastAccess = parseTime(lastAccess)
	for _, f := range []struct {
		raw string
		dst *[]string
	}{
		{enrollments, &m.EnrollmentIDs},
		{trails, &m.TrailIDs},
		{events, &m.EventIDs},
		{channels, &m.ChannelIDs},
		{pulses, &m.PulseIDs},
	} {
		if *f.dst, err = decodeIDs(f.raw); err != nil {
			return m, fmt.Errorf("member %s: %w", m.ID, err)
		}
	}
	return m, nil
}

func enrollmentValues(e domain.Enrollment) ([]any, error) {
	return []any{
		e.ID, e.MemberID, e.CourseID, string(e.Type), boolToInt(e.IsRegulatory),
		nullableTimeToString(e.DueDate), e.Progress, string(e.Status),
	}, nil
}

func scanEnrollment(rows *sql.Rows) (domain.Enrollment, error) {
	var e domain.Enrollment
	var typ, status string
	var regulatory int
	var due sql.NullString
	if err := rows.Scan(&e.ID, &e.MemberID, &e.CourseID, &typ, &regulatory, &due, &e.Progress, &status); err != nil {
		return e, fmt.Errorf("scanning enrollment: %w", err)
	}
	e.Type = domain.EnrollmentType(typ)
	e.Status = domain.EnrollmentStatus(status)
	e.IsRegulatory = intToBool(regulatory)
	e.DueDate = parseNullableTime(due)
	return e, nil
}

func courseValues(c domain.Course) ([]any, error) {
	skills, err := encodeIDs(c.Skills)
	if err != nil {
		return nil, err
	}
	return []any{c.ID, c.Title, c.Duration, skills}, nil
}

func scanCourse(rows *sql.Rows) (domain.Course, error) {
	var c domain.Course
	var skills string
	if err := rows.Scan(&c.ID, &c.Title, &c.Duration, &skills); err != nil {
		return c, fmt.Errorf("scanning course: %w", err)
	}
	var err error
	c.Skills, err = decodeIDs(skills)
	return c, err
}

func trailValues(t domain.Trail) ([]any, error) {
	lists, err := encodeAll(t.CourseIDs, t.PulseIDs, t.Skills)
	if err != nil {
		return nil, err
	}
	return []any{t.ID, t.Title, lists[0], lists[1], boolToInt(t.IsMandatory), nullableTimeToString(t.DueDate), lists[2]}, nil
}

func scanTrail(rows *sql.Rows) (domain.Trail, error) {
	var t domain.Trail
	var courses, pulses, skills string
	var mandatory int
	var due sql.NullString
	if err := rows.Scan(&t.ID, &t.Title, &courses, &pulses, &mandatory, &due, &skills); err != nil {
		return t, fmt.Errorf("scanning trail: %w", err)
	}
	t.IsMandatory = intToBool(mandatory)
	t.DueDate = parseNullableTime(due)
	var err error
	if t.CourseIDs, err = decodeIDs(courses); err != nil {
		return t, err
	}
	if t.PulseIDs, err = decodeIDs(pulses); err != nil {
		return t, err
	}
	t.Skills, err = decodeIDs(skills)
	return t, err
}

func channelValues(c domain.Channel) ([]any, error) {
	pulses, err := encodeIDs(c.PulseIDs)
	if err != nil {
		return nil, err
	}
	return []any{c.ID, c.Title, pulses}, nil
}

func scanChannel(rows *sql.Rows) (domain.Channel, error) {
	var c domain.Channel
	var pulses string
	if err := rows.Scan(&c.ID, &c.Title, &pulses); err != nil {
		return c, fmt.Errorf("scanning channel: %w", err)
	}
	var err error
	c.PulseIDs, err = decodeIDs(pulses)
	return c, err
}

func pulseValues(p domain.Pulse) ([]any, error) {
	return []any{p.ID, p.Title, p.ChannelID, p.Duration}, nil
}

func scanPulse(rows *sql.Rows) (domain.Pulse, error) {
	var p domain.Pulse
	if err := rows.Scan(&p.ID, &p.Title, &p.ChannelID, &p.Duration); err != nil {
		return p, fmt.Errorf("scanning pulse: %w", err)
	}
	return p, nil
}

func eventValues(e domain.Event) ([]any, error) {
	return []any{e.ID, e.Title, timeToString(e.Date), e.Duration, e.Capacity}, nil
}

func scanEvent(rows *sql.Rows) (domain.Event, error) {
	var e domain.Event
	var date sql.NullString
	if err := rows.Scan(&e.ID, &e.Title, &date, &e.Duration, &e.Capacity); err != nil {
		return e, fmt.Errorf("scanning event: %w", err)
	}
	e.Date = parseTime(date)
	return e, nil
}

func rankingValues(r domain.RankingEntry) ([]any, error) {
	return []any{r.MemberID, r.Points}, nil
}

func scanRanking(rows *sql.Rows) (domain.RankingEntry, error) {
	var r domain.RankingEntry
	if err := rows.Scan(&r.MemberID, &r.Points); err != nil {
		return r, fmt.Errorf("scanning ranking entry: %w", err)
	}
	return r, nil
}
