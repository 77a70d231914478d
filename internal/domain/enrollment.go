package domain

import "time"

type Enrollment struct {
	ID           string
	MemberID     string
	CourseID     string
	Type         EnrollmentType
	IsRegulatory bool
	DueDate      *time.Time
	Progress     float64
	Status       EnrollmentStatus
}

// IsMandatory reports whether the enrollment carries a compliance deadline.
func (e *Enrollment) IsMandatory() bool {
	return e.Type == EnrollmentMandatory
}

// IsDone uses progress as the completion signal; status alone is not reliable.
func (e *Enrollment) IsDone() bool {
	return e.Progress >= 100
}

// IsFinished reports the lifecycle status, used by completion KPIs.
func (e *Enrollment) IsFinished() bool {
	return e.Status == StatusFinished
}

func (e Enrollment) Clone() Enrollment {
	e.DueDate = cloneTime(e.DueDate)
	return e
}
