package domain

import "time"

// Assignment links one patient account to one doctor account. At most one
// assignment row exists per (patient, doctor) pair; re-assignment reactivates
// the existing row instead of creating a duplicate.
type Assignment struct {
	ID         string
	PatientID  string
	DoctorID   string
	Status     string
	Note       string
	AssignedBy string
	AssignedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
