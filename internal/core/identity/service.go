package identity

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 32
)

type identityService struct {
	repo Repository
}

// NewIdentityService creates a new identity service
func NewIdentityService(repo Repository) Service {
	return &identityService{repo: repo}
}

func (s *identityService) Signup(ctx context.Context, req SignupRequest) (*Profile, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	username := strings.TrimSpace(req.Username)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, NewValidationError("email", "invalid email address")
	}
	if username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	if len(username) > maxUsernameLength {
		return nil, NewValidationError("username", fmt.Sprintf("username must be at most %d characters", maxUsernameLength))
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &Profile{
		ID:       uuid.New(),
		Username: username,
		FullName: strings.TrimSpace(req.FullName),
	}

	if err := s.repo.Create(ctx, profile, email, string(hash)); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *identityService) Login(ctx context.Context, req LoginRequest) (*Identity, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	profile, hash, err := s.repo.GetCredentials(ctx, email)
	if err != nil {
		if err == ErrProfileNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{UserID: profile.ID, Username: profile.Username}, nil
}

func (s *identityService) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}
