package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/like"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/likes"
)

// RegisterLikeRoutes registers like endpoints on the router.
// Both operations require authentication: an anonymous toggle is refused
// with a 401 before any write is attempted.
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := like.NewCreateLikeHandler(service)
	deleteHandler := like.NewDeleteLikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/like", createHandler.HandleCreateLike)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{postID}/like", deleteHandler.HandleDeleteLike)
}
