package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when a post doesn't exist, and also when an
	// unpublished post is requested by anyone but its author, so that draft
	// existence is never leaked
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthor is returned when the actor isn't the post's author
	ErrNotAuthor = errors.New("only the author may modify this post")
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
