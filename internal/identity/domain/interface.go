package domain

import (
	"context"
	"time"
)

type AccountRepository interface {
	// GetByEmail returns nil, nil when no account has the given email.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// GetByID returns nil, nil when no account has the given id.
	GetByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	UpdateProfile(ctx context.Context, account *Account) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// RecordLoginAttempt appends one immutable ledger entry.
	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error
	// CountRecentFailures counts consecutive failed attempts since the last
	// successful login, no older than the window.
	CountRecentFailures(ctx context.Context, accountID string, window time.Duration) (int, error)
}

type LockoutPolicyRepository interface {
	// GetPolicy returns nil, nil when the role has no configured policy.
	GetPolicy(ctx context.Context, role string) (*LockoutPolicy, error)
	ListPolicies(ctx context.Context) ([]LockoutPolicy, error)
	UpsertPolicy(ctx context.Context, policy *LockoutPolicy) error
}
