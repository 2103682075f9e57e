package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/likes"
	"Inkwell/internal/core/posts"
)

// PostPageData holds data for the post detail template. LikeState and
// Comments seed the interactive widgets' initial state; the widgets then
// talk to the JSON API directly.
type PostPageData struct {
	Identity  *identity.Identity
	Post      *posts.Post
	LikeState *likes.State
	Comments  []*comments.Comment
	IsAuthor  bool
}

// PostDetailHandler handles GET /posts/{postID}.
// Unpublished posts render as not found for everyone but their author.
func (h *Handlers) PostDetailHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		h.NotFoundHandler(w, r)
		return
	}

	ident := middleware.GetIdentity(r.Context())
	viewerID := uuid.Nil
	if ident != nil {
		viewerID = ident.UserID
	}

	post, err := h.postService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			h.NotFoundHandler(w, r)
			return
		}
		slog.Error("failed to load post", "postId", postID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	likeState, err := h.likeService.GetState(r.Context(), postID, viewerID)
	if err != nil {
		slog.Error("failed to load like state", "postId", postID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	commentList, err := h.commentService.ListForPost(r.Context(), postID)
	if err != nil {
		slog.Error("failed to load comments", "postId", postID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := PostPageData{
		Identity:  ident,
		Post:      post,
		LikeState: likeState,
		Comments:  commentList,
		// Display gating only: edit controls are hidden for non-authors,
		// while the service layer enforces actual ownership
		IsAuthor: ident != nil && ident.UserID == post.AuthorID,
	}

	if err := h.templates.Render(w, "post.html", data); err != nil {
		slog.Error("failed to render post template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// DashboardPageData holds data for the dashboard template.
type DashboardPageData struct {
	Profile *identity.Profile
	Posts   []*posts.DashboardPost
}

// DashboardHandler handles GET /dashboard.
// Lists every post by the signed-in author, drafts included, with
// like and comment counts. Route requires authentication.
func (h *Handlers) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	profile, err := h.identityService.GetProfile(r.Context(), ident.UserID)
	if err != nil {
		slog.Error("failed to load profile", "userId", ident.UserID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	listing, err := h.postService.ListByAuthor(r.Context(), ident.UserID)
	if err != nil {
		slog.Error("failed to load dashboard listing", "userId", ident.UserID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := DashboardPageData{Profile: profile, Posts: listing}

	if err := h.templates.Render(w, "dashboard.html", data); err != nil {
		slog.Error("failed to render dashboard template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// PostFormData holds data for the shared new/edit post form template.
type PostFormData struct {
	// Post is nil for the new-post form and set when editing
	Post *posts.Post
}

// NewPostPageHandler handles GET /posts/new. Route requires authentication.
func (h *Handlers) NewPostPageHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.Render(w, "post_form.html", PostFormData{}); err != nil {
		slog.Error("failed to render post form template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// EditPostPageHandler handles GET /posts/{postID}/edit.
// Loads the existing post into the form. Author only; anyone else gets
// the not-found page, same as the detail view's draft handling.
func (h *Handlers) EditPostPageHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		h.NotFoundHandler(w, r)
		return
	}

	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID, ident.UserID)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			h.NotFoundHandler(w, r)
			return
		}
		slog.Error("failed to load post for editing", "postId", postID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if post.AuthorID != ident.UserID {
		h.NotFoundHandler(w, r)
		return
	}

	if err := h.templates.Render(w, "post_form.html", PostFormData{Post: post}); err != nil {
		slog.Error("failed to render post form template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
