package web

import (
	"log/slog"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/likes"
	"Inkwell/internal/core/posts"
)

// Handlers provides HTTP handlers for the blog's server-rendered pages.
type Handlers struct {
	templates       *Templates
	postService     posts.Service
	likeService     likes.Service
	commentService  comments.Service
	identityService identity.Service
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(
	templates *Templates,
	postService posts.Service,
	likeService likes.Service,
	commentService comments.Service,
	identityService identity.Service,
) *Handlers {
	return &Handlers{
		templates:       templates,
		postService:     postService,
		likeService:     likeService,
		commentService:  commentService,
		identityService: identityService,
	}
}

// HomePageData holds data for the home listing template.
type HomePageData struct {
	Identity *identity.Identity
	Posts    []*posts.Post
}

// HomeHandler handles GET / and renders the published-post listing.
func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	// Only handle exact root path - let other routes handle their own paths
	if r.URL.Path != "/" {
		h.NotFoundHandler(w, r)
		return
	}

	listing, err := h.postService.ListPublished(r.Context())
	if err != nil {
		slog.Error("failed to load home listing", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := HomePageData{
		Identity: middleware.GetIdentity(r.Context()),
		Posts:    listing,
	}

	if err := h.templates.Render(w, "home.html", data); err != nil {
		slog.Error("failed to render home template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// LoginPageData holds data for the login and signup templates.
type LoginPageData struct {
	// Error is a message carried over from a failed form submission,
	// shown verbatim
	Error string
}

// LoginPageHandler handles GET /login.
func (h *Handlers) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	data := LoginPageData{Error: r.URL.Query().Get("error")}
	if err := h.templates.Render(w, "login.html", data); err != nil {
		slog.Error("failed to render login template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// SignupPageHandler handles GET /signup.
func (h *Handlers) SignupPageHandler(w http.ResponseWriter, r *http.Request) {
	data := LoginPageData{Error: r.URL.Query().Get("error")}
	if err := h.templates.Render(w, "signup.html", data); err != nil {
		slog.Error("failed to render signup template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// NotFoundHandler renders the 404 page.
func (h *Handlers) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.Render(w, "notfound.html", nil); err != nil {
		slog.Error("failed to render not-found template", "error", err)
	}
}
