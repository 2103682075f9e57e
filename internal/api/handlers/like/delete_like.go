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

// DeleteLikeHandler handles unlike requests
type DeleteLikeHandler struct {
	service likes.Service
}

// NewDeleteLikeHandler creates a new unlike handler
func NewDeleteLikeHandler(service likes.Service) *DeleteLikeHandler {
	return &DeleteLikeHandler{service: service}
}

// HandleDeleteLike handles DELETE /api/posts/{postID}/like
// Removes the (post, user) pair and returns the fresh like state.
func (h *DeleteLikeHandler) HandleDeleteLike(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.UnlikePost(r.Context(), postID, ident.UserID); err != nil {
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
