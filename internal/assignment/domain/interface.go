package domain

import "context"

type AssignmentRepository interface {
	// Upsert inserts the assignment or, when the (patient, doctor) pair
	// already exists, reactivates the stored row with the new note and actor.
	// The stored row is returned either way.
	Upsert(ctx context.Context, assignment *Assignment) (*Assignment, error)
	// GetByPair returns nil, nil when the pair has no assignment.
	GetByPair(ctx context.Context, patientID, doctorID string) (*Assignment, error)
	// GetByID returns nil, nil when no assignment has the given id.
	GetByID(ctx context.Context, id string) (*Assignment, error)
	ListActiveByPatient(ctx context.Context, patientID string) ([]Assignment, error)
	ListActiveByDoctor(ctx context.Context, doctorID string) ([]Assignment, error)
	ListAll(ctx context.Context) ([]Assignment, error)
	UpdateStatus(ctx context.Context, id, status string) (*Assignment, error)
	Delete(ctx context.Context, id string) error
}
