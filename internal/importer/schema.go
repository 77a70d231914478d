package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a snapshot file.
type ImportSchema struct {
	Members     []MemberImport     `json:"members"`
	Enrollments []EnrollmentImport `json:"enrollments,omitempty"`
	Courses     []CourseImport     `json:"courses,omitempty"`
	Trails      []TrailImport      `json:"trails,omitempty"`
	Channels    []ChannelImport    `json:"channels,omitempty"`
	Pulses      []PulseImport      `json:"pulses,omitempty"`
	Events      []EventImport      `json:"events,omitempty"`
	Ranking     []RankingImport    `json:"ranking,omitempty"`
	Personas    []PersonaImport    `json:"personas,omitempty"`
}

// MemberImport defines a roster entry. Omitted counters and enrollment ids
// are derived from the enrollments section.
type MemberImport struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	JobTitle         string   `json:"job_title,omitempty"`
	ManagerID        *string  `json:"manager_id,omitempty"`
	OverallProgress  float64  `json:"overall_progress"`
	LastAccess       *string  `json:"last_access,omitempty"`
	EnrollmentIDs    []string `json:"enrollment_ids,omitempty"`
	TrailIDs         []string `json:"trail_ids,omitempty"`
	EventIDs         []string `json:"event_ids,omitempty"`
	ChannelIDs       []string `json:"channel_ids,omitempty"`
	PulseIDs         []string `json:"pulse_ids,omitempty"`
	TotalCourses     *int     `json:"total_courses,omitempty"`
	CoursesCompleted *int     `json:"courses_completed,omitempty"`
	TotalTrails      *int     `json:"total_trails,omitempty"`
	TrailsCompleted  *int     `json:"trails_completed,omitempty"`
}

type EnrollmentImport struct {
	ID           string  `json:"id,omitempty"`
	MemberID     string  `json:"member_id"`
	CourseID     string  `json:"course_id"`
	Type         string  `json:"type"`
	IsRegulatory bool    `json:"is_regulatory,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Progress     float64 `json:"progress"`
	Status       string  `json:"status,omitempty"`
}

type CourseImport struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Duration string   `json:"duration,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type TrailImport struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	CourseIDs   []string `json:"course_ids,omitempty"`
	PulseIDs    []string `json:"pulse_ids,omitempty"`
	IsMandatory bool     `json:"is_mandatory,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type ChannelImport struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	PulseIDs []string `json:"pulse_ids,omitempty"`
}

type PulseImport struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	ChannelID string `json:"channel_id,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type EventImport struct {
	ID       string  `json:"id,omitempty"`
	Title    string  `json:"title"`
	Date     *string `json:"date,omitempty"`
	Duration string  `json:"duration,omitempty"`
	Capacity int     `json:"capacity,omitempty"`
}

type RankingImport struct {
	MemberID string `json:"member_id"`
	Points   int    `json:"points"`
}

type PersonaImport struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	ManagedLeaderIDs []string `json:"managed_leader_ids,omitempty"`
}

// LoadImportSchema reads and parses a snapshot JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
