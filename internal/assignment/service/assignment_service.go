package service

//go:generate mockgen -destination=../../mocks/mock_assignment_repository.go -package=mocks github.com/Keshaini/MEDITRACK-sub000/internal/assignment/domain AssignmentRepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/dto"
	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	identitydomain "github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
	"github.com/Keshaini/MEDITRACK-sub000/pkg/constant"
)

type AssignmentService struct {
	repo     domain.AssignmentRepository
	accounts identitydomain.AccountRepository
	logger   logging.Logger
}

func NewAssignmentService(repo domain.AssignmentRepository, accounts identitydomain.AccountRepository,
	logger logging.Logger) *AssignmentService {
	return &AssignmentService{
		repo:     repo,
		accounts: accounts,
		logger:   logger,
	}
}

// Assign creates the assignment for the pair or reactivates the existing one.
// The returned bool is true when a new row was created. Repeated calls for the
// same pair never produce a second row.
func (s *AssignmentService) Assign(ctx context.Context, input dto.AssignInput, actorID string) (*dto.AssignmentOutput, bool, error) {
	if input.PatientID == "" || input.DoctorID == "" {
		return nil, false, fmt.Errorf("%w: patient_id and doctor_id are required", apperrors.ErrValidation)
	}

	patient, err := s.requireAccount(ctx, input.PatientID, constant.RolePatient)
	if err != nil {
		return nil, false, err
	}
	doctor, err := s.requireAccount(ctx, input.DoctorID, constant.RoleDoctor)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByPair(ctx, input.PatientID, input.DoctorID)
	if err != nil {
		return nil, false, err
	}

	assignment := &domain.Assignment{
		ID:         uuid.New().String(),
		PatientID:  input.PatientID,
		DoctorID:   input.DoctorID,
		Note:       input.Notes,
		AssignedBy: actorID,
	}

	// The upsert falls back to reactivating the stored row when the pair
	// already exists, so a concurrent creator cannot produce a duplicate.
	stored, err := s.repo.Upsert(ctx, assignment)
	if err != nil {
		return nil, false, err
	}

	// A kept id means our insert won the race; anything else was a
	// reactivation of an existing row.
	created := existing == nil && stored.ID == assignment.ID

	view := s.toOutput(stored, patient, doctor)
	return &view, created, nil
}

func (s *AssignmentService) ListForPatient(ctx context.Context, patientID string) ([]dto.AssignmentOutput, error) {
	assignments, err := s.repo.ListActiveByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return s.toOutputs(ctx, assignments), nil
}

func (s *AssignmentService) ListForDoctor(ctx context.Context, doctorID string) ([]dto.AssignmentOutput, error) {
	assignments, err := s.repo.ListActiveByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return s.toOutputs(ctx, assignments), nil
}

func (s *AssignmentService) ListAll(ctx context.Context) ([]dto.AssignmentOutput, error) {
	assignments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.toOutputs(ctx, assignments), nil
}

// GetByID enforces visibility: admins see any assignment, patients and
// doctors only the ones they are party to.
func (s *AssignmentService) GetByID(ctx context.Context, id, requesterID, requesterRole string) (*dto.AssignmentOutput, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperrors.ErrAssignmentNotFound
	}

	switch requesterRole {
	case constant.RoleAdmin:
	case constant.RolePatient:
		if assignment.PatientID != requesterID {
			return nil, apperrors.ErrForbidden
		}
	case constant.RoleDoctor:
		if assignment.DoctorID != requesterID {
			return nil, apperrors.ErrForbidden
		}
	default:
		return nil, apperrors.ErrForbidden
	}

	view := s.compose(ctx, assignment)
	return &view, nil
}

func (s *AssignmentService) UpdateStatus(ctx context.Context, id, status string) (*dto.AssignmentOutput, error) {
	// All transitions between the three states are permitted; there is no
	// terminal state.
	if !constant.ValidAssignmentStatus(status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAssignmentStatus, status)
	}

	assignment, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	view := s.compose(ctx, assignment)
	return &view, nil
}

func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AssignmentService) requireAccount(ctx context.Context, id, role string) (*identitydomain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Role != role {
		return nil, apperrors.ErrAccountNotFound
	}

	return account, nil
}

// compose assembles the denormalized view by fetching the referenced accounts
// explicitly. A participant that cannot be resolved is rendered with its id
// only rather than failing the whole read.
func (s *AssignmentService) compose(ctx context.Context, assignment *domain.Assignment) dto.AssignmentOutput {
	return s.toOutput(assignment, s.lookup(ctx, assignment.PatientID), s.lookup(ctx, assignment.DoctorID))
}

func (s *AssignmentService) toOutputs(ctx context.Context, assignments []domain.Assignment) []dto.AssignmentOutput {
	out := make([]dto.AssignmentOutput, 0, len(assignments))
	for i := range assignments {
		out = append(out, s.compose(ctx, &assignments[i]))
	}

	return out
}

func (s *AssignmentService) lookup(ctx context.Context, accountID string) *identitydomain.Account {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		s.logger.Warn(ctx, "failed to resolve assignment participant", "account_id", accountID, "error", err)
		return nil
	}

	return account
}

func (s *AssignmentService) toOutput(a *domain.Assignment, patient, doctor *identitydomain.Account) dto.AssignmentOutput {
	return dto.AssignmentOutput{
		ID:         a.ID,
		Patient:    toParticipant(a.PatientID, patient),
		Doctor:     toParticipant(a.DoctorID, doctor),
		Status:     a.Status,
		Note:       a.Note,
		AssignedBy: a.AssignedBy,
		AssignedAt: a.AssignedAt,
	}
}

func toParticipant(id string, account *identitydomain.Account) dto.ParticipantOutput {
	if account == nil {
		return dto.ParticipantOutput{ID: id}
	}

	return dto.ParticipantOutput{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
	}
}
