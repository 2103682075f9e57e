package identity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the public face of an account. It is what gets joined
// into posts and comments and serialized to anonymous visitors, so it must
// never carry the email or any other credential field: those stay in the
// profiles row and are only read by the credential queries.
type Profile struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	FullName  string    `json:"fullName" db:"full_name"`
	ID        uuid.UUID `json:"id" db:"id"`
}

// DisplayName returns the name shown next to posts and comments,
// preferring the full name and falling back to the username
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}

// Identity is the authenticated actor for a single request.
// It is resolved per request from the session cookie or bearer token
// and never cached across requests.
type Identity struct {
	Username string    `json:"username"`
	UserID   uuid.UUID `json:"userId"`
}

// SignupRequest represents the input for creating a new account
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// LoginRequest represents the input for authenticating with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
