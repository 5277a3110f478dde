package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account temporarily locked due to too many failed login attempts")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUnauthorized       = errors.New("missing or invalid authentication token")
	ErrForbidden          = errors.New("insufficient permissions")

	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrInvalidAssignmentStatus = errors.New("invalid assignment status")
	ErrLockoutPolicyNotFound   = errors.New("lockout policy not found")
	ErrInvalidLockoutPolicy    = errors.New("invalid lockout policy values")
	ErrAccountIDConflict       = errors.New("generated account id already exists")

	// ErrValidation is wrapped with a specific message, e.g.
	// fmt.Errorf("%w: password too short", ErrValidation).
	ErrValidation = errors.New("validation failed")
)

// StatusCode maps a domain error to its HTTP status. Unknown errors map to 500
// so handlers never leak internal detail by accident.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrAccountLocked):
		return fiber.StatusLocked
	case errors.Is(err, ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrAssignmentNotFound),
		errors.Is(err, ErrLockoutPolicyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidAssignmentStatus), errors.Is(err, ErrInvalidLockoutPolicy),
		errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// SafeMessage returns a client-facing message for err. Domain errors carry
// their own safe text; everything else collapses to a generic message.
func SafeMessage(err error) string {
	if StatusCode(err) == fiber.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
