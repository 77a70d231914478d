package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseFlexibleTime accepts either a calendar date or an RFC 3339 timestamp.
func ParseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}

// ValidateImportSchema checks the schema before conversion and returns every
// problem found. Dangling content references are not errors; only rows the
// store cannot hold (enrollments and ranking entries of unknown members) are.
// Unparsable dates are not errors either; see DateWarnings.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	memberIDs := make(map[string]bool)
	errs = append(errs, validateMembers(schema.Members, memberIDs)...)
	errs = append(errs, validateEnrollments(schema.Enrollments, memberIDs)...)
	errs = append(errs, validateCatalog(schema)...)
	errs = append(errs, validateRanking(schema.Ranking, memberIDs)...)
	errs = append(errs, validatePersonas(schema.Personas)...)

	return errs
}

func validateMembers(members []MemberImport, ids map[string]bool) []error {
	var errs []error
	for i, m := range members {
		prefix := fmt.Sprintf("members[%d]", i)
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if m.ID != "" {
			if ids[m.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, m.ID))
			}
			ids[m.ID] = true
		}
		if m.OverallProgress < 0 || m.OverallProgress > 100 {
			errs = append(errs, fmt.Errorf("%s.overall_progress must be between 0 and 100, got %v", prefix, m.OverallProgress))
		}
		if m.ManagerID != nil && m.ID != "" && *m.ManagerID == m.ID {
			errs = append(errs, fmt.Errorf("%s: member cannot manage itself", prefix))
		}
		for _, c := range []struct {
			name string
			v    *int
		}{
			{"total_courses", m.TotalCourses},
			{"courses_completed", m.CoursesCompleted},
			{"total_trails", m.TotalTrails},
			{"trails_completed", m.TrailsCompleted},
		} {
			if c.v != nil && *c.v < 0 {
				errs = append(errs, fmt.Errorf("%s.%s must not be negative", prefix, c.name))
			}
		}
	}
	return errs
}

func validateEnrollments(enrollments []EnrollmentImport, memberIDs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, e := range enrollments {
		prefix := fmt.Sprintf("enrollments[%d]", i)
		if e.ID != "" {
			if seen[e.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, e.ID))
			}
			seen[e.ID] = true
		}
		if e.MemberID == "" {
			errs = append(errs, fmt.Errorf("%s.member_id is required", prefix))
		} else if !memberIDs[e.MemberID] {
			errs = append(errs, fmt.Errorf("%s.member_id %q not found in members", prefix, e.MemberID))
		}
		if e.CourseID == "" {
			errs = append(errs, fmt.Errorf("%s.course_id is required", prefix))
		}
		if !domain.ValidEnrollmentTypes[e.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, e.Type))
		}
		if e.IsRegulatory && e.Type != string(domain.EnrollmentMandatory) {
			errs = append(errs, fmt.Errorf("%s: is_regulatory requires type mandatory", prefix))
		}
		if e.Status != "" && !domain.ValidEnrollmentStatuses[e.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, e.Status))
		}
		if e.Progress < 0 || e.Progress > 100 {
			errs = append(errs, fmt.Errorf("%s.progress must be between 0 and 100, got %v", prefix, e.Progress))
		}
	}
	return errs
}

func validateCatalog(schema *ImportSchema) []error {
	var errs []error

	check := func(section string, i int, id, title string, seen map[string]bool) {
		prefix := fmt.Sprintf("%s[%d]", section, i)
		if title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if id == "" {
			return
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, id))
		}
		seen[id] = true
	}

	seen := make(map[string]bool)
	for i, c := range schema.Courses {
		check("courses", i, c.ID, c.Title, seen)
	}
	seen = make(map[string]bool)
	for i, t := range schema.Trails {
		check("trails", i, t.ID, t.Title, seen)
	}
	seen = make(map[string]bool)
	for i, c := range schema.Channels {
		check("channels", i, c.ID, c.Title, seen)
	}
	seen = make(map[string]bool)
	for i, p := range schema.Pulses {
		check("pulses", i, p.ID, p.Title, seen)
	}
	seen = make(map[string]bool)
	for i, e := range schema.Events {
		check("events", i, e.ID, e.Title, seen)
		if e.Capacity < 0 {
			errs = append(errs, fmt.Errorf("events[%d].capacity must not be negative", i))
		}
	}
	return errs
}

func validateRanking(ranking []RankingImport, memberIDs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, r := range ranking {
		prefix := fmt.Sprintf("ranking[%d]", i)
		if !memberIDs[r.MemberID] {
			errs = append(errs, fmt.Errorf("%s.member_id %q not found in members", prefix, r.MemberID))
		}
		if seen[r.MemberID] {
			errs = append(errs, fmt.Errorf("%s: duplicate entry for member %q", prefix, r.MemberID))
		}
		seen[r.MemberID] = true
	}
	return errs
}

func validatePersonas(personas []PersonaImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, p := range personas {
		prefix := fmt.Sprintf("personas[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, p.ID))
		}
		seen[p.ID] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !domain.ValidRoles[p.Role] {
			errs = append(errs, fmt.Errorf("%s.role: invalid value %q", prefix, p.Role))
		}
	}
	return errs
}

// DateWarnings lists every date that Convert will drop because it cannot be
// parsed. Such dates are treated as absent rather than failing the import.
func DateWarnings(schema *ImportSchema) []string {
	var warnings []string
	check := func(field string, v *string) {
		if v == nil || *v == "" {
			return
		}
		if _, err := ParseFlexibleTime(*v); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v, treated as absent", field, err))
		}
	}
	for i, m := range schema.Members {
		check(fmt.Sprintf("members[%d].last_access", i), m.LastAccess)
	}
	for i, e := range schema.Enrollments {
		check(fmt.Sprintf("enrollments[%d].due_date", i), e.DueDate)
	}
	for i, t := range schema.Trails {
		check(fmt.Sprintf("trails[%d].due_date", i), t.DueDate)
	}
	for i, e := range schema.Events {
		check(fmt.Sprintf("events[%d].date", i), e.Date)
	}
	return warnings
}
