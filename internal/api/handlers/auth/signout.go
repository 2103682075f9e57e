package auth

import (
	"log/slog"
	"net/http"

	"Inkwell/internal/api/middleware"
)

// SignOutHandler handles session termination
type SignOutHandler struct {
	sessions *middleware.SessionManager
}

// NewSignOutHandler creates a new sign-out handler
func NewSignOutHandler(sessions *middleware.SessionManager) *SignOutHandler {
	return &SignOutHandler{sessions: sessions}
}

// HandleSignOut handles POST /auth/signout
// Clears the session and redirects to the login view with a 302.
// Safe to call without a session: clearing is idempotent.
func (h *SignOutHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		slog.Error("failed to clear session on signout", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}
