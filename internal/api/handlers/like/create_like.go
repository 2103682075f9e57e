package like

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/likes"
)

// CreateLikeHandler handles like creation requests
type CreateLikeHandler struct {
	service likes.Service
}

// NewCreateLikeHandler creates a new like handler
func NewCreateLikeHandler(service likes.Service) *CreateLikeHandler {
	return &CreateLikeHandler{service: service}
}

// HandleCreateLike handles POST /api/posts/{postID}/like
// Inserts the (post, user) pair and returns the fresh like state.
// A duplicate pair is a 409, never a silent second row.
func (h *CreateLikeHandler) HandleCreateLike(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.LikePost(r.Context(), postID, ident.UserID); err != nil {
		handleServiceError(w, err)
		return
	}

	state, err := h.service.GetState(r.Context(), postID, ident.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		log.Printf("Failed to encode like state response: %v", err)
	}
}
