package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/core/identity"
)

const (
	testSessionSecret = "0123456789abcdef0123456789abcdef"
	testTokenSecret   = "fedcba9876543210fedcba9876543210"
)

func newTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()
	manager, err := NewSessionManager(testSessionSecret, false)
	require.NoError(t, err)
	return manager
}

func newTestTokenIssuer(t *testing.T) *identity.TokenIssuer {
	t.Helper()
	issuer, err := identity.NewTokenIssuer(testTokenSecret, time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestNewSessionManager_RejectsShortSecret(t *testing.T) {
	_, err := NewSessionManager("too-short", false)
	assert.Error(t, err)
}

func TestSessionAuthenticate_RoundTrip(t *testing.T) {
	manager := newTestSessionManager(t)
	ident := identity.Identity{UserID: uuid.New(), Username: "alice"}

	// Sign in and capture the cookie the browser would hold
	rec := httptest.NewRecorder()
	signinReq := httptest.NewRequest("POST", "/auth/login", nil)
	require.NoError(t, manager.SignIn(rec, signinReq, ident))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	got := manager.Authenticate(req)
	require.NotNil(t, got)
	assert.Equal(t, ident.UserID, got.UserID)
	assert.Equal(t, "alice", got.Username)
}

func TestSessionAuthenticate_NoCookie(t *testing.T) {
	manager := newTestSessionManager(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	assert.Nil(t, manager.Authenticate(req))
}

func TestSessionSignOut_ClearsIdentity(t *testing.T) {
	manager := newTestSessionManager(t)
	ident := identity.Identity{UserID: uuid.New(), Username: "alice"}

	rec := httptest.NewRecorder()
	require.NoError(t, manager.SignIn(rec, httptest.NewRequest("POST", "/auth/login", nil), ident))

	signoutRec := httptest.NewRecorder()
	signoutReq := httptest.NewRequest("POST", "/auth/signout", nil)
	for _, c := range rec.Result().Cookies() {
		signoutReq.AddCookie(c)
	}
	require.NoError(t, manager.SignOut(signoutRec, signoutReq))

	// The replacement cookie must expire the session
	cleared := signoutRec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestTokenAuthenticate_ValidBearer(t *testing.T) {
	issuer := newTestTokenIssuer(t)
	auth := NewTokenAuthenticator(issuer)

	ident := identity.Identity{UserID: uuid.New(), Username: "alice"}
	token, err := issuer.Mint(ident)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	got := auth.Authenticate(req)
	require.NotNil(t, got)
	assert.Equal(t, ident.UserID, got.UserID)
}

func TestTokenAuthenticate_MissingOrInvalid(t *testing.T) {
	auth := NewTokenAuthenticator(newTestTokenIssuer(t))

	req := httptest.NewRequest("GET", "/api/posts", nil)
	assert.Nil(t, auth.Authenticate(req))

	req.Header.Set("Authorization", "Bearer garbage")
	assert.Nil(t, auth.Authenticate(req))

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Nil(t, auth.Authenticate(req))
}

func TestRequireAuth_Anonymous(t *testing.T) {
	mw := NewAuthMiddleware(newTestSessionManager(t))

	called := false
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/posts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "AuthenticationRequired")
}

func TestRequireAuth_TokenFallback(t *testing.T) {
	issuer := newTestTokenIssuer(t)
	mw := NewAuthMiddleware(newTestSessionManager(t), NewTokenAuthenticator(issuer))

	ident := identity.Identity{UserID: uuid.New(), Username: "alice"}
	token, err := issuer.Mint(ident)
	require.NoError(t, err)

	var got *identity.Identity
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r.Context())
	}))

	req := httptest.NewRequest("POST", "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, ident.UserID, got.UserID)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	mw := NewAuthMiddleware(newTestSessionManager(t))

	var got *identity.Identity
	handler := mw.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)
}

func TestRequirePageAuth_RedirectsToLogin(t *testing.T) {
	mw := NewAuthMiddleware(newTestSessionManager(t))

	handler := mw.RequirePageAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for anonymous request")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/login"))
}
