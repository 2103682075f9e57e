package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/likes"
	"Inkwell/internal/core/posts"
	"Inkwell/internal/web"
)

// RegisterWebRoutes registers all server-rendered page routes.
func RegisterWebRoutes(
	r chi.Router,
	postService posts.Service,
	likeService likes.Service,
	commentService comments.Service,
	identityService identity.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	templates, err := web.NewTemplates()
	if err != nil {
		panic("failed to load web templates: " + err.Error())
	}

	handlers := web.NewHandlers(templates, postService, likeService, commentService, identityService)

	// Public pages render for visitors and signed-in users alike
	r.With(authMiddleware.OptionalAuth).Get("/", handlers.HomeHandler)
	r.With(authMiddleware.OptionalAuth).Get("/posts/{postID}", handlers.PostDetailHandler)

	r.Get("/login", handlers.LoginPageHandler)
	r.Get("/signup", handlers.SignupPageHandler)

	// Author pages bounce anonymous visitors to the login view
	r.With(authMiddleware.RequirePageAuth).Get("/dashboard", handlers.DashboardHandler)
	r.With(authMiddleware.RequirePageAuth).Get("/posts/new", handlers.NewPostPageHandler)
	r.With(authMiddleware.RequirePageAuth).Get("/posts/{postID}/edit", handlers.EditPostPageHandler)

	// Static assets (stylesheet)
	staticServer := http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	r.Get("/static/*", staticServer.ServeHTTP)

	r.NotFound(handlers.NotFoundHandler)
}
