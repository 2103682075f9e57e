package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/core/identity"
)

// Context key for the resolved identity
type contextKey string

const identityKey contextKey = "identity"

// Authenticator resolves the identity carried by a request, if any.
// The two implementations cover the two execution contexts: SessionManager
// reads the inbound session cookie, TokenAuthenticator reads a bearer token.
// Returning nil means the request is anonymous; it is never an error.
type Authenticator interface {
	Authenticate(r *http.Request) *identity.Identity
}

// Authenticate resolves the identity from the session cookie.
// Invalid or absent cookies yield an anonymous request.
func (m *SessionManager) Authenticate(r *http.Request) *identity.Identity {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// Tampered or stale cookie: treat as anonymous
		return nil
	}

	rawID, _ := session.Values[sessionKeyUserID].(string)
	if rawID == "" {
		return nil
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil
	}

	username, _ := session.Values[sessionKeyUsername].(string)
	return &identity.Identity{UserID: userID, Username: username}
}

// TokenAuthenticator resolves the identity from an Authorization: Bearer
// access token. This is the token-bound counterpart to the session cookie,
// for callers that hold a token instead of a cookie.
type TokenAuthenticator struct {
	issuer *identity.TokenIssuer
}

// NewTokenAuthenticator creates a bearer token authenticator
func NewTokenAuthenticator(issuer *identity.TokenIssuer) *TokenAuthenticator {
	return &TokenAuthenticator{issuer: issuer}
}

// Authenticate resolves the identity from the Authorization header.
// Invalid or absent tokens yield an anonymous request.
func (a *TokenAuthenticator) Authenticate(r *http.Request) *identity.Identity {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	ident, err := a.issuer.Verify(token)
	if err != nil {
		log.Printf("[AUTH_FAILURE] type=token_verification ip=%s method=%s path=%s error=%v",
			r.RemoteAddr, r.Method, r.URL.Path, err)
		return nil
	}

	return ident
}

// AuthMiddleware guards routes with a chain of authenticators tried in order.
// The first identity found wins.
type AuthMiddleware struct {
	authenticators []Authenticator
}

// NewAuthMiddleware creates auth middleware over the given authenticators
func NewAuthMiddleware(authenticators ...Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticators: authenticators}
}

func (m *AuthMiddleware) resolve(r *http.Request) *identity.Identity {
	for _, a := range m.authenticators {
		if ident := a.Authenticate(r); ident != nil {
			return ident
		}
	}
	return nil
}

// RequireAuth ensures the request carries an identity.
// Anonymous requests get a 401 without reaching the handler, so an
// unauthenticated action never issues a write.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := m.resolve(r)
		if ident == nil {
			writeAuthError(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
	})
}

// OptionalAuth loads the identity if present but lets anonymous requests through.
// Used by views that render for both visitors and signed-in users.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ident := m.resolve(r); ident != nil {
			r = r.WithContext(WithIdentity(r.Context(), ident))
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePageAuth is RequireAuth for server-rendered pages: anonymous
// requests are redirected to the login view instead of receiving JSON.
func (m *AuthMiddleware) RequirePageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := m.resolve(r)
		if ident == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
	})
}

// WithIdentity returns a context carrying the identity
func WithIdentity(ctx context.Context, ident *identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// GetIdentity extracts the request identity from the context.
// Returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *identity.Identity {
	ident, _ := ctx.Value(identityKey).(*identity.Identity)
	return ident
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
