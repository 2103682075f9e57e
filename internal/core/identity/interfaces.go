package identity

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for accounts and identity
type Service interface {
	// Signup creates a profile with a hashed password and returns it.
	// Returns ErrEmailTaken or ErrUsernameTaken on conflicts.
	Signup(ctx context.Context, req SignupRequest) (*Profile, error)

	// Login verifies an email/password pair and returns the resolved identity.
	// Returns ErrInvalidCredentials when the pair doesn't match.
	Login(ctx context.Context, req LoginRequest) (*Identity, error)

	// GetProfile retrieves a profile by id
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
}

// Repository defines the data access interface for profiles and credentials
type Repository interface {
	// Create inserts a profile row with its credentials. Email and password
	// hash are stored alongside the profile but never loaded into it.
	// Returns ErrEmailTaken / ErrUsernameTaken on unique violations.
	Create(ctx context.Context, profile *Profile, email, passwordHash string) error

	// GetByID retrieves a profile by id
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// GetCredentials retrieves the profile and stored password hash for an email.
	// Returns ErrProfileNotFound when the email is unknown.
	GetCredentials(ctx context.Context, email string) (*Profile, string, error)
}
