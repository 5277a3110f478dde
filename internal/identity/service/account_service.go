package service

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain AccountRepository,LockoutPolicyRepository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/dto"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
	"github.com/Keshaini/MEDITRACK-sub000/pkg/constant"
)

// dummyPasswordHash is compared against when the email is unknown, so the
// unknown-email and wrong-password paths take similar time and return the
// same error. Without it, response latency would reveal which emails exist.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

const dateOfBirthLayout = "2006-01-02"

type AccountService struct {
	repo    domain.AccountRepository
	tokens  TokenGenerator
	lockout *LockoutService
	logger  logging.Logger
}

func NewAccountService(repo domain.AccountRepository, tokens TokenGenerator,
	lockout *LockoutService, logger logging.Logger) *AccountService {
	return &AccountService{
		repo:    repo,
		tokens:  tokens,
		lockout: lockout,
		logger:  logger,
	}
}

func (s *AccountService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	email := normalizeEmail(input.Email)

	if input.Name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", apperrors.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = constant.RolePatient
	}
	if !constant.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, input.Role)
	}

	dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Doctor accounts need admin verification before they can be assigned.
	status := constant.AccountStatusVerified
	if role == constant.RoleDoctor {
		status = constant.AccountStatusPending
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Phone:        input.Phone,
		DateOfBirth:  dateOfBirth,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(ctx, account)
	if errors.Is(err, apperrors.ErrAccountIDConflict) {
		// Generated id collided; retry once with a fresh one. An email
		// conflict is surfaced as-is.
		account.ID = uuid.New().String()
		err = s.repo.Create(ctx, account)
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AccountService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	email := normalizeEmail(input.Email)

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if account == nil {
		// Equalize timing with the wrong-password path.
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(input.Password))
		return nil, apperrors.ErrInvalidCredentials
	}

	if s.lockout.IsLocked(ctx, account.ID, account.Role) {
		s.recordAttempt(ctx, account.ID, input, false)
		return nil, apperrors.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		s.recordAttempt(ctx, account.ID, input, false)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.recordAttempt(ctx, account.ID, input, true)

	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, account.ID, now); err != nil {
		s.logger.Warn(ctx, "failed to update last login", "account_id", account.ID, "error", err)
	}
	account.LastLogin = &now

	token, _, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:   token,
		Account: toAccountOutput(account),
	}, nil
}

func (s *AccountService) GetProfile(ctx context.Context, accountID string) (*dto.AccountOutput, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}

	out := toAccountOutput(account)
	return &out, nil
}

// UpdateProfile changes contact details only. Email, role and status are not
// editable through this path.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID string, input dto.UpdateProfileInput) (*dto.AccountOutput, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}

	if input.Name != "" {
		account.Name = input.Name
	}
	if input.Phone != "" {
		account.Phone = input.Phone
	}
	if input.DateOfBirth != "" {
		dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
		if err != nil {
			return nil, err
		}
		account.DateOfBirth = dateOfBirth
	}

	if err := s.repo.UpdateProfile(ctx, account); err != nil {
		return nil, err
	}

	out := toAccountOutput(account)
	return &out, nil
}

// recordAttempt appends to the login attempt ledger. A ledger write failure
// is logged but never fails the login flow.
func (s *AccountService) recordAttempt(ctx context.Context, accountID string, input dto.LoginInput, success bool) {
	attempt := &domain.LoginAttempt{
		AccountID:  accountID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Successful: success,
	}
	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		s.logger.Warn(ctx, "failed to record login attempt", "account_id", accountID, "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateOfBirthLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return &t, nil
}

func toAccountOutput(a *domain.Account) dto.AccountOutput {
	return dto.AccountOutput{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		Phone:     a.Phone,
		Status:    a.Status,
		LastLogin: a.LastLogin,
	}
}
