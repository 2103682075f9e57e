package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// MinTokenSecretLength is the minimum byte length for the HS256 signing secret
const MinTokenSecretLength = 32

const tokenIssuer = "inkwell"

// TokenIssuer mints and verifies HS256 bearer tokens carrying an identity.
// Tokens are the stateless counterpart to the session cookie: API callers
// that don't hold a cookie authenticate with one of these instead.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and token lifetime
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < MinTokenSecretLength {
		return nil, fmt.Errorf("token secret must be at least %d bytes", MinTokenSecretLength)
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Mint signs a token for the given identity
func (t *TokenIssuer) Mint(ident Identity) (string, error) {
	now := time.Now()

	tok, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(ident.UserID.String()).
		Claim("username", ident.Username).
		IssuedAt(now).
		Expiration(now.Add(t.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, t.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// Verify checks a token's signature and expiry and returns the identity it carries.
// Returns ErrInvalidToken for any token that fails verification.
func (t *TokenIssuer) Verify(token string) (*Identity, error) {
	tok, err := jwt.Parse(
		[]byte(token),
		jwt.WithKey(jwa.HS256, t.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(tok.Subject())
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := tok.Get("username")
	name, _ := username.(string)

	return &Identity{UserID: userID, Username: name}, nil
}
