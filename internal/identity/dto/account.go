package dto

import "time"

// AccountOutput is the non-sensitive projection returned to clients. The
// password hash never leaves the service layer.
type AccountOutput struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Phone     string     `json:"phone"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type TokenResponse struct {
	Token   string        `json:"token"`
	Account AccountOutput `json:"account"`
}

type UpdateProfileInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD, optional
}

type LockoutPolicyInput struct {
	MaxAttempts    int `json:"max_attempts"`
	LockoutMinutes int `json:"lockout_minutes"`
}

type LockoutPolicyOutput struct {
	Role           string    `json:"role"`
	MaxAttempts    int       `json:"max_attempts"`
	LockoutMinutes int       `json:"lockout_minutes"`
	UpdatedAt      time.Time `json:"updated_at"`
}
