package domain

// Snapshot is one immutable view of every entity collection the engine reads.
// Derivations never modify a Snapshot; transforms work on Clone().
type Snapshot struct {
	Members     []Member
	Enrollments []Enrollment
	Courses     []Course
	Trails      []Trail
	Events      []Event
	Channels    []Channel
	Pulses      []Pulse
	Ranking     []RankingEntry
	Personas    []Persona
}

// IsEmpty reports whether the snapshot has no members.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Members) == 0
}

// Clone returns a deep copy of the snapshot. Nil collections stay nil.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Members:     cloneEach(s.Members, Member.Clone),
		Enrollments: cloneEach(s.Enrollments, Enrollment.Clone),
		Courses: cloneEach(s.Courses, func(c Course) Course {
			c.Skills = cloneIDs(c.Skills)
			return c
		}),
		Trails: cloneEach(s.Trails, Trail.Clone),
		Events: cloneEach(s.Events, func(e Event) Event { return e }),
		Channels: cloneEach(s.Channels, func(c Channel) Channel {
			c.PulseIDs = cloneIDs(c.PulseIDs)
			return c
		}),
		Pulses:  cloneEach(s.Pulses, func(p Pulse) Pulse { return p }),
		Ranking: cloneEach(s.Ranking, func(r RankingEntry) RankingEntry { return r }),
		Personas: cloneEach(s.Personas, func(p Persona) Persona {
			p.ManagedLeaderIDs = cloneIDs(p.ManagedLeaderIDs)
			return p
		}),
	}
	return out
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// Persona looks up a persona by id.
func (s *Snapshot) Persona(id string) (Persona, bool) {
	for _, p := range s.Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// Leaders returns every member without a manager, in roster order.
func (s *Snapshot) Leaders() []Member {
	var out []Member
	for _, m := range s.Members {
		if m.IsLeader() {
			out = append(out, m)
		}
	}
	return out
}

// CourseIndex maps course id to course.
func CourseIndex(courses []Course) map[string]Course {
	idx := make(map[string]Course, len(courses))
	for _, c := range courses {
		idx[c.ID] = c
	}
	return idx
}

// PulseIndex maps pulse id to pulse.
func PulseIndex(pulses []Pulse) map[string]Pulse {
	idx := make(map[string]Pulse, len(pulses))
	for _, p := range pulses {
		idx[p.ID] = p
	}
	return idx
}

// TrailIndex maps trail id to trail.
func TrailIndex(trails []Trail) map[string]Trail {
	idx := make(map[string]Trail, len(trails))
	for _, t := range trails {
		idx[t.ID] = t
	}
	return idx
}

// EnrollmentsByMember groups enrollments by their member id.
func EnrollmentsByMember(enrollments []Enrollment) map[string][]Enrollment {
	idx := make(map[string][]Enrollment)
	for _, e := range enrollments {
		idx[e.MemberID] = append(idx[e.MemberID], e)
	}
	return idx
}

// ResolveTrails returns the trails referenced by ids that exist in idx.
// Dangling ids are skipped.
func ResolveTrails(ids []string, idx map[string]Trail) []Trail {
	out := make([]Trail, 0, len(ids))
	for _, id := range ids {
		if t, ok := idx[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// IDSet builds a lookup set from ids.
func IDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
