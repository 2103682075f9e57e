package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/identity"
)

// LoginHandler handles form-based session login
type LoginHandler struct {
	identityService identity.Service
	sessions        *middleware.SessionManager
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(identityService identity.Service, sessions *middleware.SessionManager) *LoginHandler {
	return &LoginHandler{identityService: identityService, sessions: sessions}
}

// HandleLogin handles POST /auth/login
// On success, writes the session cookie and redirects to the dashboard.
// On failure, redirects back to the login view carrying the error message.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	ident, err := h.identityService.Login(r.Context(), identity.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			redirectWithError(w, r, "/login", err.Error())
			return
		}
		slog.Error("login failed", "error", err)
		redirectWithError(w, r, "/login", "Something went wrong, please try again")
		return
	}

	if err := h.sessions.SignIn(w, r, *ident); err != nil {
		slog.Error("failed to write session on login", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// redirectWithError sends the user back to a form page with the error
// message in the query string, where the template displays it verbatim
func redirectWithError(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(message), http.StatusFound)
}
