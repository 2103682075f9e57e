package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenIssuer_RejectsShortSecret(t *testing.T) {
	_, err := NewTokenIssuer("too-short", time.Hour)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(testTokenSecret, time.Hour)
	require.NoError(t, err)

	ident := Identity{UserID: uuid.New(), Username: "alice"}

	token, err := issuer.Mint(ident)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ident.UserID, got.UserID)
	assert.Equal(t, "alice", got.Username)
}

func TestVerify_ExpiredToken(t *testing.T) {
	issuer, err := NewTokenIssuer(testTokenSecret, -time.Minute)
	require.NoError(t, err)

	token, err := issuer.Mint(Identity{UserID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer(testTokenSecret, time.Hour)
	require.NoError(t, err)

	other, err := NewTokenIssuer(strings.Repeat("x", MinTokenSecretLength), time.Hour)
	require.NoError(t, err)

	token, err := issuer.Mint(Identity{UserID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	issuer, err := NewTokenIssuer(testTokenSecret, time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
