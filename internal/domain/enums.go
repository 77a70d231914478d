package domain

type EnrollmentType string

const (
	EnrollmentFree      EnrollmentType = "free"
	EnrollmentMandatory EnrollmentType = "mandatory"
)

type EnrollmentStatus string

const (
	StatusEnrolled         EnrollmentStatus = "enrolled"
	StatusStarted          EnrollmentStatus = "started"
	StatusExpired          EnrollmentStatus = "expired"
	StatusNeedsNewDeadline EnrollmentStatus = "needs_new_deadline"
	StatusFinished         EnrollmentStatus = "finished"
	StatusPendingApproval  EnrollmentStatus = "pending_approval"
	StatusRejected         EnrollmentStatus = "rejected"
	StatusWithdrawn        EnrollmentStatus = "withdrawn"
	StatusInactive         EnrollmentStatus = "inactive"
)

// ValidEnrollmentStatuses is the canonical set of accepted enrollment status strings.
var ValidEnrollmentStatuses = map[string]bool{
	"enrolled": true, "started": true, "expired": true,
	"needs_new_deadline": true, "finished": true, "pending_approval": true,
	"rejected": true, "withdrawn": true, "inactive": true,
}

// ValidEnrollmentTypes is the canonical set of accepted enrollment type strings.
var ValidEnrollmentTypes = map[string]bool{
	"free": true, "mandatory": true,
}

type Role string

const (
	RoleLeader   Role = "leader"
	RoleManager  Role = "manager"
	RoleDirector Role = "director"
)

// ValidRoles is the canonical set of accepted persona roles.
var ValidRoles = map[string]bool{
	"leader": true, "manager": true, "director": true,
}
