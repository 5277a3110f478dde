package constant

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"

	AccountStatusVerified = "verified"
	AccountStatusPending  = "pending"

	AssignmentStatusActive    = "active"
	AssignmentStatusInactive  = "inactive"
	AssignmentStatusCompleted = "completed"

	// LocalsClaims is the fiber locals key the auth middleware stores the
	// verified token claims under.
	LocalsClaims = "claims"

	DefaultTokenExpiryMin    = 10080 // 7 days
	DefaultMaxFailedAttempts = 5
	DefaultLockoutMinutes    = 15
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleDoctor || role == RoleAdmin
}

// ValidAssignmentStatus reports whether status is a known assignment state.
func ValidAssignmentStatus(status string) bool {
	return status == AssignmentStatusActive ||
		status == AssignmentStatusInactive ||
		status == AssignmentStatusCompleted
}
