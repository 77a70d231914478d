// Package scope narrows a snapshot to the members a persona may see and
// cascades that selection through every dependent collection.
package scope

import (
	"time"

	"github.com/alexanderramin/teamlens/internal/cornercase"
	"github.com/alexanderramin/teamlens/internal/domain"
)

// Dataset is the visible working set for one computation pass.
type Dataset struct {
	Members     []domain.Member
	Courses     []domain.Course
	Trails      []domain.Trail
	Events      []domain.Event
	Channels    []domain.Channel
	Pulses      []domain.Pulse
	Enrollments []domain.Enrollment
	Ranking     []domain.RankingEntry

	// ActiveLeaderIDs is the hierarchy filter that produced Members; nil
	// means no filter was applied.
	ActiveLeaderIDs []string
}

// ResolveWithFlags applies the corner-case transforms and then scopes the result.
func ResolveWithFlags(raw domain.Snapshot, flags cornercase.Flags, persona domain.Persona, selected []string, now time.Time) Dataset {
	return Resolve(cornercase.Apply(raw, flags, now), persona, selected)
}

// Resolve computes the visible subset of snap for persona, optionally narrowed
// to the selected leaders' teams.
func Resolve(snap domain.Snapshot, persona domain.Persona, selected []string) Dataset {
	active, filtered := ActiveLeaders(persona, selected)

	members := snap.Members
	if filtered {
		set := domain.IDSet(active)
		members = nil
		for _, m := range snap.Members {
			if m.ManagerID != nil && set[*m.ManagerID] {
				members = append(members, m)
			}
		}
	}

	ds := cascade(snap, members)
	if filtered {
		ds.ActiveLeaderIDs = active
		if ds.ActiveLeaderIDs == nil {
			ds.ActiveLeaderIDs = []string{}
		}
	}
	return ds
}

// ActiveLeaders decides the hierarchy filter. The bool result reports whether
// a filter applies at all. A non-empty selection always filters, even when
// none of it survives the persona's impersonation rights.
func ActiveLeaders(persona domain.Persona, selected []string) ([]string, bool) {
	if len(selected) > 0 {
		var active []string
		for _, id := range selected {
			if persona.CanImpersonate(id) {
				active = append(active, id)
			}
		}
		return active, true
	}
	if persona.ManagesMultipleLeaders() {
		return append([]string(nil), persona.ManagedLeaderIDs...), true
	}
	return nil, false
}

func cascade(snap domain.Snapshot, members []domain.Member) Dataset {
	memberIDs := make(map[string]bool, len(members))
	trailIDs := make(map[string]bool)
	eventIDs := make(map[string]bool)
	channelIDs := make(map[string]bool)
	pulseIDs := make(map[string]bool)
	for _, m := range members {
		memberIDs[m.ID] = true
		markAll(trailIDs, m.TrailIDs)
		markAll(eventIDs, m.EventIDs)
		markAll(channelIDs, m.ChannelIDs)
		markAll(pulseIDs, m.PulseIDs)
	}

	ds := Dataset{Members: members}

	courseIDs := make(map[string]bool)
	for _, e := range snap.Enrollments {
		if memberIDs[e.MemberID] {
			ds.Enrollments = append(ds.Enrollments, e)
			courseIDs[e.CourseID] = true
		}
	}
	for _, c := range snap.Courses {
		if courseIDs[c.ID] {
			ds.Courses = append(ds.Courses, c)
		}
	}
	for _, t := range snap.Trails {
		if trailIDs[t.ID] {
			ds.Trails = append(ds.Trails, t)
		}
	}
	for _, e := range snap.Events {
		if eventIDs[e.ID] {
			ds.Events = append(ds.Events, e)
		}
	}
	for _, c := range snap.Channels {
		if channelIDs[c.ID] {
			ds.Channels = append(ds.Channels, c)
		}
	}
	for _, p := range snap.Pulses {
		if pulseIDs[p.ID] {
			ds.Pulses = append(ds.Pulses, p)
		}
	}
	for _, r := range snap.Ranking {
		if memberIDs[r.MemberID] {
			ds.Ranking = append(ds.Ranking, r)
		}
	}
	return ds
}

func markAll(set map[string]bool, ids []string) {
	for _, id := range ids {
		set[id] = true
	}
}
