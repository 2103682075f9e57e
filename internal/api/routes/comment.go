package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/comment"
	"Inkwell/internal/api/middleware"
	commentsCore "Inkwell/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the router.
// Listing is open to anonymous visitors; all writes require authentication.
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	getHandler := comment.NewGetCommentsHandler(service)
	createHandler := comment.NewCreateCommentHandler(service)
	updateHandler := comment.NewUpdateCommentHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)

	r.Get("/api/posts/{postID}/comments", getHandler.HandleGetComments)
	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/comments", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/api/comments/{commentID}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/api/comments/{commentID}", deleteHandler.HandleDelete)
}
