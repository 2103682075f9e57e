package like

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/core/likes"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrAlreadyLiked):
		writeError(w, http.StatusConflict, "AlreadyLiked", "Post already liked")

	case errors.Is(err, likes.ErrNotLiked):
		writeError(w, http.StatusConflict, "NotLiked", "Post not liked")

	case errors.Is(err, likes.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	default:
		log.Printf("Unexpected error in like handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
