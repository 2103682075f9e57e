package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"Inkwell/internal/core/identity"
)

const (
	// SessionName is the cookie carrying the authenticated session
	SessionName = "inkwell_session"

	// MinCookieSecretLength is the minimum byte length for the cookie signing secret
	MinCookieSecretLength = 32

	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
)

// SessionManager owns the cookie session store. It is the request-bound
// identity source: the identity is rederived from the inbound cookie on
// every request and never cached between requests.
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager creates a session manager backed by an HMAC-authenticated
// cookie store. The secret must be long enough to resist brute force.
func NewSessionManager(secret string, secure bool) (*SessionManager, error) {
	if len(secret) < MinCookieSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinCookieSecretLength)
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}, nil
}

// SignIn writes the identity into a fresh session cookie
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, ident identity.Identity) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values[sessionKeyUserID] = ident.UserID.String()
	session.Values[sessionKeyUsername] = ident.Username

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut clears the session cookie
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	session.Values = make(map[interface{}]interface{})

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
