package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/core/identity"
)

type postgresProfileRepo struct {
	db *sql.DB
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *sql.DB) identity.Repository {
	return &postgresProfileRepo{db: db}
}

// Create inserts a profile row with its credentials
func (r *postgresProfileRepo) Create(ctx context.Context, profile *identity.Profile, email, passwordHash string) error {
	query := `
		INSERT INTO profiles (id, username, full_name, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Username, profile.FullName, email, passwordHash,
	).Scan(&profile.CreatedAt)

	if err != nil {
		// Map unique violations onto the conflicting field
		if strings.Contains(err.Error(), "profiles_email_key") {
			return identity.ErrEmailTaken
		}
		if strings.Contains(err.Error(), "profiles_username_key") {
			return identity.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by id
func (r *postgresProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*identity.Profile, error) {
	query := `
		SELECT id, username, full_name, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile identity.Profile

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID, &profile.Username, &profile.FullName, &profile.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, identity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return &profile, nil
}

// GetCredentials retrieves the profile and stored password hash for an email
func (r *postgresProfileRepo) GetCredentials(ctx context.Context, email string) (*identity.Profile, string, error) {
	query := `
		SELECT id, username, full_name, created_at, password_hash
		FROM profiles
		WHERE email = $1
	`

	var profile identity.Profile
	var hash string

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&profile.ID, &profile.Username, &profile.FullName,
		&profile.CreatedAt, &hash,
	)

	if err == sql.ErrNoRows {
		return nil, "", identity.ErrProfileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get credentials: %w", err)
	}

	return &profile, hash, nil
}
