package service

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/dto"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
	"github.com/Keshaini/MEDITRACK-sub000/pkg/constant"
)

// LockoutService evaluates the per-role lockout policy against the login
// attempt ledger. The check runs before password comparison so a locked
// account reveals nothing about the supplied credential.
type LockoutService struct {
	accounts domain.AccountRepository
	policies domain.LockoutPolicyRepository
	fallback domain.LockoutPolicy
	logger   logging.Logger
}

func NewLockoutService(accounts domain.AccountRepository, policies domain.LockoutPolicyRepository,
	fallback domain.LockoutPolicy, logger logging.Logger) *LockoutService {
	return &LockoutService{
		accounts: accounts,
		policies: policies,
		fallback: fallback,
		logger:   logger,
	}
}

// IsLocked reports whether the account has reached its role's failure
// threshold within the lockout window. Read failures count as locked: the
// ledger is the only defence against credential stuffing, so a broken read
// must deny rather than permit.
func (s *LockoutService) IsLocked(ctx context.Context, accountID, role string) bool {
	policy, err := s.policies.GetPolicy(ctx, role)
	if err != nil {
		s.logger.Error(ctx, "failed to load lockout policy, denying login", "role", role, "error", err)
		return true
	}
	if policy == nil {
		policy = &s.fallback
	}

	window := time.Duration(policy.LockoutMinutes) * time.Minute
	failures, err := s.accounts.CountRecentFailures(ctx, accountID, window)
	if err != nil {
		s.logger.Error(ctx, "failed to count login failures, denying login", "account_id", accountID, "error", err)
		return true
	}

	return failures >= policy.MaxAttempts
}

func (s *LockoutService) ListPolicies(ctx context.Context) ([]dto.LockoutPolicyOutput, error) {
	policies, err := s.policies.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LockoutPolicyOutput, 0, len(policies))
	for _, p := range policies {
		out = append(out, toPolicyOutput(&p))
	}

	return out, nil
}

func (s *LockoutService) UpdatePolicy(ctx context.Context, role string, input dto.LockoutPolicyInput) (*dto.LockoutPolicyOutput, error) {
	if !constant.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidLockoutPolicy, role)
	}
	if input.MaxAttempts < 1 || input.LockoutMinutes < 1 {
		return nil, fmt.Errorf("%w: max_attempts and lockout_minutes must be positive", apperrors.ErrInvalidLockoutPolicy)
	}

	policy := &domain.LockoutPolicy{
		Role:           role,
		MaxAttempts:    input.MaxAttempts,
		LockoutMinutes: input.LockoutMinutes,
	}
	if err := s.policies.UpsertPolicy(ctx, policy); err != nil {
		return nil, err
	}

	out := toPolicyOutput(policy)
	return &out, nil
}

func toPolicyOutput(p *domain.LockoutPolicy) dto.LockoutPolicyOutput {
	return dto.LockoutPolicyOutput{
		Role:           p.Role,
		MaxAttempts:    p.MaxAttempts,
		LockoutMinutes: p.LockoutMinutes,
		UpdatedAt:      p.UpdatedAt,
	}
}
