package domain

import "time"

type Member struct {
	ID              string
	Name            string
	JobTitle        string
	ManagerID       *string
	OverallProgress float64
	LastAccess      time.Time

	EnrollmentIDs []string
	TrailIDs      []string
	EventIDs      []string
	ChannelIDs    []string
	PulseIDs      []string

	// Roster counters, maintained by the loading layer.
	TotalCourses     int
	CoursesCompleted int
	TotalTrails      int
	TrailsCompleted  int

	// ContentCleared is set when every content reference was removed from the member.
	ContentCleared bool
}

// IsLeader reports whether the member sits at the top of a team (no manager).
func (m *Member) IsLeader() bool {
	return m.ManagerID == nil || *m.ManagerID == ""
}

// Clone returns a deep copy of the member.
func (m Member) Clone() Member {
	if m.ManagerID != nil {
		id := *m.ManagerID
		m.ManagerID = &id
	}
	m.EnrollmentIDs = cloneIDs(m.EnrollmentIDs)
	m.TrailIDs = cloneIDs(m.TrailIDs)
	m.EventIDs = cloneIDs(m.EventIDs)
	m.ChannelIDs = cloneIDs(m.ChannelIDs)
	m.PulseIDs = cloneIDs(m.PulseIDs)
	return m
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
