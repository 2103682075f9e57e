package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/auth"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/identity"
)

// RegisterAuthRoutes registers session and token endpoints on the router
func RegisterAuthRoutes(r chi.Router, identityService identity.Service, sessions *middleware.SessionManager, issuer *identity.TokenIssuer) {
	loginHandler := auth.NewLoginHandler(identityService, sessions)
	signupHandler := auth.NewSignupHandler(identityService, sessions)
	signOutHandler := auth.NewSignOutHandler(sessions)
	tokenHandler := auth.NewTokenHandler(identityService, issuer)

	r.Post("/auth/login", loginHandler.HandleLogin)
	r.Post("/auth/signup", signupHandler.HandleSignup)

	// Clears the session and redirects to /login with a 302
	r.Post("/auth/signout", signOutHandler.HandleSignOut)

	// Bearer tokens for API callers without a cookie
	r.Post("/api/auth/token", tokenHandler.HandleToken)
}
