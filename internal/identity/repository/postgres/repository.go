package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
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

const accountColumns = `id, name, email, password_hash, role, phone, date_of_birth, status, last_login, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.Phone,
		&a.DateOfBirth, &a.Status, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 LIMIT 1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 LIMIT 1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, name, email, password_hash, role, phone, date_of_birth, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, account.ID, account.Name, account.Email, account.PasswordHash, account.Role,
		account.Phone, account.DateOfBirth, account.Status, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Translate the uniqueness violation so no storage detail leaks.
			if pgErr.ConstraintName == "accounts_pkey" {
				return apperrors.ErrAccountIDConflict
			}
			return apperrors.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, account *domain.Account) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET name = $2, phone = $3, date_of_birth = $4, updated_at = now()
		WHERE id = $1
	`, account.ID, account.Name, account.Phone, account.DateOfBirth)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE accounts SET last_login = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, account_id, ip_address, user_agent, successful, attempt_time)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, now())
	`, attempt.AccountID, attempt.IPAddress, attempt.UserAgent, attempt.Successful)

	return err
}

// CountRecentFailures counts failed attempts newer than the window cutoff and
// newer than the most recent successful attempt, so one success resets the
// streak.
func (r *PostgresRepository) CountRecentFailures(ctx context.Context, accountID string, window time.Duration) (int, error) {
	cutoff := time.Now().Add(-window)

	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE account_id = $1
		  AND successful = false
		  AND attempt_time > $2
		  AND attempt_time > COALESCE(
			(SELECT MAX(attempt_time) FROM login_attempts WHERE account_id = $1 AND successful = true),
			'-infinity'::timestamptz)
	`, accountID, cutoff).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent failures: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) GetPolicy(ctx context.Context, role string) (*domain.LockoutPolicy, error) {
	var p domain.LockoutPolicy
	err := r.db.QueryRow(ctx, `
		SELECT role, max_attempts, lockout_minutes, updated_at FROM lockout_policies WHERE role = $1
	`, role).Scan(&p.Role, &p.MaxAttempts, &p.LockoutMinutes, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lockout policy: %w", err)
	}

	return &p, nil
}

func (r *PostgresRepository) ListPolicies(ctx context.Context) ([]domain.LockoutPolicy, error) {
	rows, err := r.db.Query(ctx, `
		SELECT role, max_attempts, lockout_minutes, updated_at FROM lockout_policies ORDER BY role
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lockout policies: %w", err)
	}
	defer rows.Close()

	var policies []domain.LockoutPolicy
	for rows.Next() {
		var p domain.LockoutPolicy
		if err := rows.Scan(&p.Role, &p.MaxAttempts, &p.LockoutMinutes, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lockout policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

func (r *PostgresRepository) UpsertPolicy(ctx context.Context, policy *domain.LockoutPolicy) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO lockout_policies (role, max_attempts, lockout_minutes, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (role)
		DO UPDATE SET
			max_attempts = EXCLUDED.max_attempts,
			lockout_minutes = EXCLUDED.lockout_minutes,
			updated_at = now()
	`, policy.Role, policy.MaxAttempts, policy.LockoutMinutes)
	if err != nil {
		return fmt.Errorf("failed to upsert lockout policy: %w", err)
	}

	return nil
}
