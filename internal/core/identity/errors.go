package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileNotFound indicates the requested profile doesn't exist
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates the email/password pair doesn't match an account.
	// Deliberately does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken indicates a bearer token that failed verification or expired
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
