package domain

import "time"

type Course struct {
	ID       string
	Title    string
	Duration string
	Skills   []string
}

type Trail struct {
	ID          string
	Title       string
	CourseIDs   []string
	PulseIDs    []string
	IsMandatory bool
	DueDate     *time.Time
	Skills      []string
}

// HasDeadline reports whether the trail is a mandatory item with a due date.
func (t *Trail) HasDeadline() bool {
	return t.IsMandatory && t.DueDate != nil
}

func (t Trail) Clone() Trail {
	t.CourseIDs = cloneIDs(t.CourseIDs)
	t.PulseIDs = cloneIDs(t.PulseIDs)
	t.Skills = cloneIDs(t.Skills)
	t.DueDate = cloneTime(t.DueDate)
	return t
}

type Channel struct {
	ID       string
	Title    string
	PulseIDs []string
}

type Pulse struct {
	ID        string
	Title     string
	ChannelID string
	Duration  string
}

type Event struct {
	ID       string
	Title    string
	Date     time.Time
	Duration string
	Capacity int
}

type RankingEntry struct {
	MemberID string
	Points   int
}
