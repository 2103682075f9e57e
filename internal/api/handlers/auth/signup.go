package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/identity"
)

// SignupHandler handles account creation
type SignupHandler struct {
	identityService identity.Service
	sessions        *middleware.SessionManager
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(identityService identity.Service, sessions *middleware.SessionManager) *SignupHandler {
	return &SignupHandler{identityService: identityService, sessions: sessions}
}

// HandleSignup handles POST /auth/signup
// Creates the profile, signs the new user in, and redirects to the dashboard.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	profile, err := h.identityService.Signup(r.Context(), identity.SignupRequest{
		Email:    r.FormValue("email"),
		Username: r.FormValue("username"),
		FullName: r.FormValue("fullName"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailTaken),
			errors.Is(err, identity.ErrUsernameTaken),
			identity.IsValidationError(err):
			redirectWithError(w, r, "/signup", err.Error())
		default:
			slog.Error("signup failed", "error", err)
			redirectWithError(w, r, "/signup", "Something went wrong, please try again")
		}
		return
	}

	ident := identity.Identity{UserID: profile.ID, Username: profile.Username}
	if err := h.sessions.SignIn(w, r, ident); err != nil {
		slog.Error("failed to write session on signup", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
