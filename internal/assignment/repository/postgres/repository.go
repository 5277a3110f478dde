package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/domain"
	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
)

// PgxIface is the subset of pgxpool.Pool the repository needs; pgxmock
// implements it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const assignmentColumns = `id, patient_id, doctor_id, status, note, assigned_by, assigned_at, created_at, updated_at`

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Status, &a.Note,
		&a.AssignedBy, &a.AssignedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert relies on the unique constraint on (patient_id, doctor_id): a
// concurrent insert for the same pair degrades to reactivation instead of
// failing.
func (r *PostgresRepository) Upsert(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	stored, err := scanAssignment(r.db.QueryRow(ctx, `
		INSERT INTO assignments (id, patient_id, doctor_id, status, note, assigned_by, assigned_at, created_at, updated_at)
		VALUES ($1, $2, $3, 'active', $4, $5, now(), now(), now())
		ON CONFLICT (patient_id, doctor_id)
		DO UPDATE SET
			status = 'active',
			note = EXCLUDED.note,
			assigned_by = EXCLUDED.assigned_by,
			assigned_at = now(),
			updated_at = now()
		RETURNING `+assignmentColumns,
		assignment.ID, assignment.PatientID, assignment.DoctorID, assignment.Note, assignment.AssignedBy))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert assignment: %w", err)
	}

	return stored, nil
}

func (r *PostgresRepository) GetByPair(ctx context.Context, patientID, doctorID string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE patient_id = $1 AND doctor_id = $2 LIMIT 1`

	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, patientID, doctorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment by pair: %w", err)
	}

	return assignment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1 LIMIT 1`

	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}

	return assignment, nil
}

func (r *PostgresRepository) ListActiveByPatient(ctx context.Context, patientID string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments
		WHERE patient_id = $1 AND status = 'active' ORDER BY assigned_at DESC`

	return r.list(ctx, query, patientID)
}

func (r *PostgresRepository) ListActiveByDoctor(ctx context.Context, doctorID string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments
		WHERE doctor_id = $1 AND status = 'active' ORDER BY assigned_at DESC`

	return r.list(ctx, query, doctorID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY assigned_at DESC`

	return r.list(ctx, query)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Status, &a.Note,
			&a.AssignedBy, &a.AssignedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Assignment, error) {
	assignment, err := scanAssignment(r.db.QueryRow(ctx, `
		UPDATE assignments SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+assignmentColumns, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to update assignment status: %w", err)
	}

	return assignment, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}
