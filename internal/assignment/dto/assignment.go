package dto

import "time"

type AssignInput struct {
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Notes     string `json:"notes"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}

// ParticipantOutput carries the display fields of one side of an assignment,
// assembled by the service from the referenced accounts.
type ParticipantOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type AssignmentOutput struct {
	ID         string            `json:"id"`
	Patient    ParticipantOutput `json:"patient"`
	Doctor     ParticipantOutput `json:"doctor"`
	Status     string            `json:"status"`
	Note       string            `json:"note"`
	AssignedBy string            `json:"assigned_by"`
	AssignedAt time.Time         `json:"assigned_at"`
}
