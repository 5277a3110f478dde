package domain

import "time"

type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	DateOfBirth  *time.Time
	Status       string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LoginAttempt struct {
	ID          string
	AccountID   string
	IPAddress   string
	UserAgent   string
	AttemptTime time.Time
	Successful  bool
}

// LockoutPolicy limits consecutive failed logins per role. MaxAttempts
// failures within LockoutMinutes lock the account until the window elapses.
type LockoutPolicy struct {
	Role           string
	MaxAttempts    int
	LockoutMinutes int
	UpdatedAt      time.Time
}
