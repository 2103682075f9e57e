package comment

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Inkwell/internal/core/comments"
)

// GetCommentsHandler handles comment listing requests
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new comment listing handler
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// commentsOutput wraps the listing so the shape can grow without breaking callers
type commentsOutput struct {
	Comments []*comments.Comment `json:"comments"`
}

// HandleGetComments handles GET /api/posts/{postID}/comments
// Open to anonymous visitors; most recent first.
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	list, err := h.service.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if list == nil {
		list = []*comments.Comment{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(commentsOutput{Comments: list}); err != nil {
		log.Printf("Failed to encode comments response: %v", err)
	}
}
